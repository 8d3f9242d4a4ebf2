package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/game"
	"github.com/decker502/keepsake/pkg/timing"
	"github.com/decker502/keepsake/pkg/utils"
)

// introLines are the opening beats, one per phase in
// config.IntroPhases.
var introLines = []string{
	"",
	"Hey. It's me.",
	"I made you a few small things.",
	"Take them one at a time.",
}

// IntroScene is the entry scene: a short scripted text sequence, then
// a begin control that leads to the gift menu.
type IntroScene struct {
	director *game.SceneDirector

	sched     *timing.Scheduler
	seq       *timing.Sequencer
	phase     int     // index of the beat currently on stage, -1 before the first
	phaseTime float64 // seconds since the current beat entered
	revealed  bool
	elapsed   float64
}

// NewIntroScene creates the intro and starts its beat sequence
// immediately; the first beat lands on the next update.
func NewIntroScene(director *game.SceneDirector, settings *game.SettingsManager) *IntroScene {
	s := &IntroScene{
		director: director,
		sched:    timing.NewScheduler(),
		phase:    -1,
	}
	s.seq = timing.NewSequencer(s.sched)

	viewer := settings.GetSettings()
	phases := config.ScaleDurations(config.IntroPhases,
		config.MotionFactor(viewer.TextSpeed, viewer.ReducedMotion))
	s.seq.Start(phases, 0,
		func(i int) {
			s.phase = i
			s.phaseTime = 0
		},
		func() {
			s.revealed = true
		})
	return s
}

// Update advances the beat clock and, once the sequence has completed,
// waits for the begin control.
func (s *IntroScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.phaseTime += deltaTime
	s.sched.Advance(deltaTime)

	if s.revealed && continueActivated() {
		s.director.GoTo(game.SceneGiftMenu)
	}
}

// Draw renders the beats seen so far, each fading in on entry.
func (s *IntroScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 16, B: 32, A: 255})

	centerX := float64(config.GameWindowWidth) / 2
	for i := 1; i <= s.phase; i++ {
		alpha := 1.0
		if i == s.phase {
			alpha = utils.EaseInOutCubic(utils.Clamp01(s.phaseTime / 0.6))
		}
		y := 180 + float64(i-1)*72
		drawCenteredText(screen, introLines[i], 26, centerX, y,
			color.RGBA{R: 236, G: 226, B: 240, A: 255}, alpha)
	}

	if s.revealed {
		drawContinuePrompt(screen, "— begin —", s.elapsed)
	}
}

// Dispose cancels the beat sequence if the viewer leaves early.
func (s *IntroScene) Dispose() {
	s.seq.Cancel()
}

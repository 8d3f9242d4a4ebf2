package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/keepsake/internal/confetti"
	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/game"
	"github.com/decker502/keepsake/pkg/timing"
	"github.com/decker502/keepsake/pkg/utils"
)

// finaleLines accompany the beats in config.FinalePhases.
var finaleLines = []string{
	"",
	"That's all of them.",
	"Thank you for opening every single one.",
	"",
}

// confettiPalette maps particle palette indices to colors.
var confettiPalette = []color.RGBA{
	{R: 244, G: 114, B: 140, A: 255},
	{R: 250, G: 208, B: 110, A: 255},
	{R: 130, G: 200, B: 240, A: 255},
	{R: 170, G: 230, B: 160, A: 255},
	{R: 220, G: 170, B: 245, A: 255},
}

// FinaleScene plays the closing beats and rains confetti from its
// last beat onward. It only mounts through the gated menu transition.
// The replay control (revealed on completion) routes back to the hub.
type FinaleScene struct {
	director *game.SceneDirector

	sched     *timing.Scheduler
	seq       *timing.Sequencer
	field     *confetti.Field
	raining   bool
	phase     int
	phaseTime float64
	revealed  bool
	elapsed   float64
}

// NewFinaleScene starts the closing sequence.
func NewFinaleScene(director *game.SceneDirector, settings *game.SettingsManager) *FinaleScene {
	s := &FinaleScene{
		director: director,
		sched:    timing.NewScheduler(),
		phase:    -1,
		field:    confetti.NewField(120, config.GameWindowWidth, config.GameWindowHeight, 20240214),
	}
	s.seq = timing.NewSequencer(s.sched)

	viewer := settings.GetSettings()
	phases := config.ScaleDurations(config.FinalePhases,
		config.MotionFactor(viewer.TextSpeed, viewer.ReducedMotion))
	s.seq.Start(phases, 0,
		func(i int) {
			s.phase = i
			s.phaseTime = 0
			if config.FinalePhases[i].Name == "confetti" {
				s.raining = true
			}
		},
		func() {
			s.revealed = true
		})
	return s
}

// Update pumps the scheduler, advances the confetti field, and waits
// for the replay control once revealed.
func (s *FinaleScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.phaseTime += deltaTime
	s.sched.Advance(deltaTime)
	if s.raining {
		s.field.Advance(deltaTime)
	}

	if s.revealed && continueActivated() {
		s.director.GoTo(game.SceneGiftMenu)
	}
}

// Draw renders the closing beats and the confetti field.
func (s *FinaleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 12, B: 26, A: 255})

	centerX := float64(config.GameWindowWidth) / 2
	for i := 1; i <= s.phase && i < len(finaleLines); i++ {
		if finaleLines[i] == "" {
			continue
		}
		alpha := 1.0
		if i == s.phase {
			alpha = utils.EaseInOutCubic(utils.Clamp01(s.phaseTime / 0.6))
		}
		drawCenteredText(screen, finaleLines[i], 26, centerX, 220+float64(i-1)*60,
			color.RGBA{R: 248, G: 238, B: 246, A: 255}, alpha)
	}

	if s.raining {
		for _, p := range s.field.Particles() {
			clr := confettiPalette[p.Palette%len(confettiPalette)]
			vector.DrawFilledRect(screen,
				float32(p.X-p.Size/2), float32(p.Y-p.Size/2),
				float32(p.Size), float32(p.Size), clr, true)
		}
	}

	if s.revealed {
		drawContinuePrompt(screen, "— once more, from the top —", s.elapsed)
	}
}

// Dispose cancels the closing sequence.
func (s *FinaleScene) Dispose() {
	s.seq.Cancel()
}

package scenes

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/game"
	"github.com/decker502/keepsake/pkg/timing"
	"github.com/decker502/keepsake/pkg/utils"
)

// musicBoxLines accompany the beats in config.MusicBoxPhases.
var musicBoxLines = []string{
	"",
	"wind it up...",
	"there it goes",
	"this one played at the place we met",
}

// MusicBoxScene is a phase-only scene: the box opens, winds up and
// turns. The turning dancer and orbiting notes are idle motion driven
// by elapsed time; only the beats run on the sequencer.
type MusicBoxScene struct {
	director *game.SceneDirector

	sched     *timing.Scheduler
	seq       *timing.Sequencer
	phase     int
	phaseTime float64
	revealed  bool
	elapsed   float64
}

// NewMusicBoxScene starts the beat sequence.
func NewMusicBoxScene(director *game.SceneDirector, settings *game.SettingsManager) *MusicBoxScene {
	s := &MusicBoxScene{
		director: director,
		sched:    timing.NewScheduler(),
		phase:    -1,
	}
	s.seq = timing.NewSequencer(s.sched)

	viewer := settings.GetSettings()
	phases := config.ScaleDurations(config.MusicBoxPhases,
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

// Update pumps the scheduler and handles navigation.
func (s *MusicBoxScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.phaseTime += deltaTime
	s.sched.Advance(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.director.GoTo(game.SceneGiftMenu)
		return
	}
	if s.revealed && continueActivated() {
		s.director.GoTo(game.SceneGiftMenu)
	}
}

// Draw renders the box, its lid angle per beat, and the turning
// figure once the melody beats begin.
func (s *MusicBoxScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 20, G: 18, B: 30, A: 255})

	centerX := float64(config.GameWindowWidth) / 2
	boxY := 380.0

	// Box body.
	vector.DrawFilledRect(screen, float32(centerX-110), float32(boxY),
		220, 90, color.RGBA{R: 122, G: 82, B: 56, A: 255}, true)

	// Lid: closed before the first beat, easing open during it.
	lidLift := 0.0
	switch {
	case s.phase == 0:
		lidLift = 60 * utils.EaseOutCubic(utils.Clamp01(s.phaseTime/0.8))
	case s.phase > 0:
		lidLift = 60
	}
	vector.DrawFilledRect(screen, float32(centerX-110), float32(boxY-14-lidLift),
		220, 14, color.RGBA{R: 142, G: 98, B: 66, A: 255}, true)

	// The dancer turns from the first-turn beat onward, faster during
	// the melody beat.
	if s.phase >= 2 {
		speed := 1.2
		if s.phase >= 3 {
			speed = 2.4
		}
		angle := s.elapsed * speed
		vector.DrawFilledCircle(screen, float32(centerX), float32(boxY-46),
			12, color.RGBA{R: 240, G: 214, B: 230, A: 255}, true)
		// Orbiting notes.
		for i := 0; i < 3; i++ {
			a := angle + float64(i)*2.0944
			nx := centerX + 70*math.Cos(a)
			ny := boxY - 46 + 24*math.Sin(a)
			vector.DrawFilledCircle(screen, float32(nx), float32(ny),
				5, color.RGBA{R: 180, G: 190, B: 250, A: 230}, true)
		}
	}

	if s.phase >= 1 && s.phase < len(musicBoxLines) {
		alpha := utils.EaseInOutCubic(utils.Clamp01(s.phaseTime / 0.6))
		drawCenteredText(screen, musicBoxLines[s.phase], 20, centerX, 140,
			color.RGBA{R: 234, G: 226, B: 240, A: 255}, alpha)
	}

	if s.revealed {
		drawContinuePrompt(screen, "— back to the gifts —", s.elapsed)
	}
}

// Dispose cancels the beat sequence.
func (s *MusicBoxScene) Dispose() {
	s.seq.Cancel()
}

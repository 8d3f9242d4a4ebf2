package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/game"
	"github.com/decker502/keepsake/pkg/timing"
	"github.com/decker502/keepsake/pkg/utils"
)

// letterParagraphs accompany the beats in config.LetterPhases: the
// unfold beat shows the blank page, then one paragraph per beat.
var letterParagraphs = []string{
	"",
	"I never know how to say these things out loud,",
	"so I'm hiding them in here, where you found them.",
	"Thank you for every ordinary day. They add up.",
	"— yours, always",
}

// LetterScene is a phase-only scene: the letter unfolds and reveals a
// paragraph per beat. The continue control appears on completion.
type LetterScene struct {
	director *game.SceneDirector

	sched     *timing.Scheduler
	seq       *timing.Sequencer
	phase     int
	phaseTime float64
	revealed  bool
	elapsed   float64
}

// NewLetterScene starts the paragraph sequence.
func NewLetterScene(director *game.SceneDirector, settings *game.SettingsManager) *LetterScene {
	s := &LetterScene{
		director: director,
		sched:    timing.NewScheduler(),
		phase:    -1,
	}
	s.seq = timing.NewSequencer(s.sched)

	viewer := settings.GetSettings()
	phases := config.ScaleDurations(config.LetterPhases,
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
func (s *LetterScene) Update(deltaTime float64) {
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

// Draw renders the page and every paragraph revealed so far.
func (s *LetterScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 30, G: 24, B: 38, A: 255})

	centerX := float64(config.GameWindowWidth) / 2

	// The page unfolds during the first beat.
	pageHeight := 420.0
	if s.phase == 0 {
		pageHeight *= utils.EaseOutCubic(utils.Clamp01(s.phaseTime / 0.8))
	} else if s.phase < 0 {
		pageHeight = 0
	}
	vector.DrawFilledRect(screen,
		float32(centerX-250), float32(300-pageHeight/2),
		500, float32(pageHeight),
		color.RGBA{R: 246, G: 240, B: 226, A: 255}, true)

	for i := 1; i <= s.phase && i < len(letterParagraphs); i++ {
		alpha := 1.0
		if i == s.phase {
			alpha = utils.EaseInOutCubic(utils.Clamp01(s.phaseTime / 0.6))
		}
		size := 18.0
		if i == len(letterParagraphs)-1 {
			size = 20 // the signature sits a little larger
		}
		drawCenteredText(screen, letterParagraphs[i], size, centerX, 170+float64(i-1)*64,
			color.RGBA{R: 64, G: 52, B: 60, A: 255}, alpha)
	}

	if s.revealed {
		drawContinuePrompt(screen, "— back to the gifts —", s.elapsed)
	}
}

// Dispose cancels the paragraph sequence.
func (s *LetterScene) Dispose() {
	s.seq.Cancel()
}

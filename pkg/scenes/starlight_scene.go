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

// StarlightScene is an assembly-only scene: nine stars light up one by
// one and the constellation's lines follow the lit prefix.
type StarlightScene struct {
	director *game.SceneDirector

	sched     *timing.Scheduler
	asm       *timing.Assembler
	placed    int
	placeTime float64
	revealed  bool
	elapsed   float64
}

// NewStarlightScene starts the star run after the configured entry
// delay.
func NewStarlightScene(director *game.SceneDirector, settings *game.SettingsManager) *StarlightScene {
	s := &StarlightScene{
		director: director,
		sched:    timing.NewScheduler(),
	}
	s.asm = timing.NewAssembler(s.sched)

	viewer := settings.GetSettings()
	factor := config.MotionFactor(viewer.TextSpeed, viewer.ReducedMotion)
	s.asm.Start(len(config.StarlightTable),
		config.StarlightAssemblyTick*factor,
		config.StarlightEntryDelay*factor,
		func(placed int) {
			s.placed = placed
			s.placeTime = 0
		},
		func() {
			s.revealed = true
		})
	return s
}

// Update pumps the scheduler and handles navigation.
func (s *StarlightScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.placeTime += deltaTime
	s.sched.Advance(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.director.GoTo(game.SceneGiftMenu)
		return
	}
	if s.revealed && continueActivated() {
		s.director.GoTo(game.SceneGiftMenu)
	}
}

// Draw renders the lit prefix of the constellation: stars first, lines
// trailing one star behind so each segment appears fully anchored.
func (s *StarlightScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 24, A: 255})

	centerX := float64(config.GameWindowWidth) / 2
	centerY := 300.0

	// Connect consecutive lit stars.
	for i := 1; i < s.placed; i++ {
		a := config.StarlightTable[i-1].Anchor
		b := config.StarlightTable[i].Anchor
		vector.StrokeLine(screen,
			float32(centerX+a.X), float32(centerY+a.Y),
			float32(centerX+b.X), float32(centerY+b.Y),
			1.5, color.RGBA{R: 110, G: 130, B: 200, A: 160}, true)
	}

	for i := 0; i < s.placed; i++ {
		star := config.StarlightTable[i].Anchor
		radius := 5.0
		if i == s.placed-1 {
			radius = 5 + 4*(1-utils.EaseOutCubic(utils.Clamp01(s.placeTime/0.4)))
		}
		twinkle := 0.8 + 0.2*utils.Pulse(s.elapsed+float64(i), 2.0)
		vector.DrawFilledCircle(screen,
			float32(centerX+star.X), float32(centerY+star.Y),
			float32(radius), color.RGBA{R: 250, G: 248, B: 220, A: uint8(255 * twinkle)}, true)
	}

	if s.revealed {
		drawCenteredText(screen, "I'd rearrange these for you if I could.",
			20, centerX, 80, color.RGBA{R: 226, G: 230, B: 246, A: 255}, 1)
		drawContinuePrompt(screen, "— back to the gifts —", s.elapsed)
	}
}

// Dispose cancels the star run.
func (s *StarlightScene) Dispose() {
	s.asm.Cancel()
}

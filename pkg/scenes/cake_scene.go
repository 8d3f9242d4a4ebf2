package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/game"
	"github.com/decker502/keepsake/pkg/timing"
)

// cakePalette colors the cake table by element kind.
var cakePalette = map[string]color.RGBA{
	"plate":  {R: 210, G: 210, B: 220, A: 255},
	"sponge": {R: 226, G: 178, B: 130, A: 255},
	"icing":  {R: 248, G: 226, B: 236, A: 255},
	"candle": {R: 120, G: 160, B: 220, A: 255},
	"flame":  {R: 255, G: 200, B: 90, A: 255},
}

// CakeScene is an assembly-only scene: no beat sequence, just a fixed
// scene-entry delay before the cake builds itself tier by tier.
type CakeScene struct {
	director *game.SceneDirector

	sched     *timing.Scheduler
	asm       *timing.Assembler
	placed    int
	placeTime float64
	revealed  bool
	elapsed   float64
}

// NewCakeScene starts the assembly run after the configured entry
// delay.
func NewCakeScene(director *game.SceneDirector, settings *game.SettingsManager) *CakeScene {
	s := &CakeScene{
		director: director,
		sched:    timing.NewScheduler(),
	}
	s.asm = timing.NewAssembler(s.sched)

	viewer := settings.GetSettings()
	factor := config.MotionFactor(viewer.TextSpeed, viewer.ReducedMotion)
	s.asm.Start(len(config.CakeTable),
		config.CakeAssemblyTick*factor,
		config.CakeEntryDelay*factor,
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
func (s *CakeScene) Update(deltaTime float64) {
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

// Draw renders the cake prefix on its stand.
func (s *CakeScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 26, G: 20, B: 34, A: 255})

	centerX := float64(config.GameWindowWidth) / 2
	drawAssemblyPrefix(screen, config.CakeTable, s.placed,
		config.CakeCellSize, centerX, 440, cakePalette, s.placeTime)

	if s.revealed {
		drawCenteredText(screen, "It isn't your birthday. I just felt like it.",
			20, centerX, 120, color.RGBA{R: 240, G: 228, B: 238, A: 255}, 1)
		drawContinuePrompt(screen, "— back to the gifts —", s.elapsed)
	}
}

// Dispose cancels the assembly run.
func (s *CakeScene) Dispose() {
	s.asm.Cancel()
}

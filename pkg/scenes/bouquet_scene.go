package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/game"
	"github.com/decker502/keepsake/pkg/timing"
	"github.com/decker502/keepsake/pkg/utils"
)

// bouquetLines accompany the beats in config.BouquetPhases.
var bouquetLines = []string{
	"",
	"Real ones would wilt by Tuesday,",
	"so I grew you some that won't.",
}

// bouquetPalette colors the assembly table by element kind.
var bouquetPalette = map[string]color.RGBA{
	"wrap":   {R: 222, G: 184, B: 135, A: 255},
	"stem":   {R: 74, G: 122, B: 74, A: 255},
	"leaf":   {R: 98, G: 158, B: 88, A: 255},
	"rose":   {R: 214, G: 72, B: 100, A: 255},
	"bud":    {R: 236, G: 130, B: 150, A: 255},
	"gyp":    {R: 240, G: 238, B: 228, A: 255},
	"ribbon": {R: 196, G: 54, B: 76, A: 255},
}

// BouquetScene is the composite-choreography scene: a short beat
// sequence sets the stage, then the bouquet assembles element by
// element from the static layout table. The continue control appears
// only after the last element lands.
type BouquetScene struct {
	director *game.SceneDirector

	sched *timing.Scheduler
	seq   *timing.Sequencer
	asm   *timing.Assembler

	phase     int
	phaseTime float64
	placed    int
	placeTime float64 // seconds since the latest element landed
	revealed  bool
	elapsed   float64
}

// NewBouquetScene starts the beat sequence; the assembler starts from
// the sequence's completion callback, never in parallel with it.
func NewBouquetScene(director *game.SceneDirector, settings *game.SettingsManager) *BouquetScene {
	s := &BouquetScene{
		director: director,
		sched:    timing.NewScheduler(),
		phase:    -1,
	}
	s.seq = timing.NewSequencer(s.sched)
	s.asm = timing.NewAssembler(s.sched)

	viewer := settings.GetSettings()
	factor := config.MotionFactor(viewer.TextSpeed, viewer.ReducedMotion)
	phases := config.ScaleDurations(config.BouquetPhases, factor)

	s.seq.Start(phases, 0,
		func(i int) {
			s.phase = i
			s.phaseTime = 0
		},
		func() {
			s.asm.Start(len(config.BouquetTable),
				config.BouquetAssemblyTick*factor,
				config.BouquetAssemblyDelay*factor,
				func(placed int) {
					s.placed = placed
					s.placeTime = 0
				},
				func() {
					s.revealed = true
				})
		})
	return s
}

// Update pumps the scene's scheduler and handles navigation. Escape
// always returns to the menu (the director disposes this scene, which
// cancels whatever is still pending); the continue control only works
// once revealed.
func (s *BouquetScene) Update(deltaTime float64) {
	s.elapsed += deltaTime
	s.phaseTime += deltaTime
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

// Draw renders the stage beats and the assembled bouquet prefix.
func (s *BouquetScene) Draw(screen *ebiten.Image) {
	// The "dim" beat darkens the room before the lines appear.
	bg := color.RGBA{R: 38, G: 28, B: 44, A: 255}
	if s.phase >= 0 {
		bg = color.RGBA{R: 22, G: 16, B: 28, A: 255}
	}
	screen.Fill(bg)

	centerX := float64(config.GameWindowWidth) / 2
	for i := 1; i <= s.phase && i < len(bouquetLines); i++ {
		alpha := 1.0
		if i == s.phase {
			alpha = utils.EaseInOutCubic(utils.Clamp01(s.phaseTime / 0.5))
		}
		drawCenteredText(screen, bouquetLines[i], 22, centerX, 90+float64(i-1)*36,
			color.RGBA{R: 238, G: 224, B: 234, A: 255}, alpha)
	}

	drawAssemblyPrefix(screen, config.BouquetTable, s.placed,
		config.BouquetCellSize, centerX, 470, bouquetPalette, s.placeTime)

	if s.revealed {
		drawContinuePrompt(screen, "— back to the gifts —", s.elapsed)
	}
}

// Dispose cancels both the beat sequence and the assembly run.
func (s *BouquetScene) Dispose() {
	s.seq.Cancel()
	s.asm.Cancel()
}

package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/utils"
)

// Shared drawing helpers for the scene package. Everything here is
// presentational; none of it touches narrative or timer state.

// drawCenteredText draws str horizontally centered at (x, y) with the
// given alpha (0..1).
func drawCenteredText(screen *ebiten.Image, str string, size, x, y float64, clr color.RGBA, alpha float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(utils.Clamp01(alpha)))
	text.Draw(screen, str, fontFace(size), op)
}

// drawAssemblyPrefix renders the placed prefix of an assembly table.
// Each element's cells are filled squares of cellSize around the
// element anchor, colored by the palette entry for its kind. The most
// recently placed element scales in with an ease-out pop driven by
// sincePlace (seconds since its tick).
func drawAssemblyPrefix(screen *ebiten.Image, table []config.AssemblyElement, prefix int,
	cellSize, originX, originY float64, palette map[string]color.RGBA, sincePlace float64) {
	if prefix > len(table) {
		prefix = len(table)
	}
	for i := 0; i < prefix; i++ {
		element := table[i]
		clr, ok := palette[element.Kind]
		if !ok {
			clr = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		scale := 1.0
		if i == prefix-1 {
			scale = utils.EaseOutCubic(utils.Clamp01(sincePlace / 0.25))
		}
		size := cellSize * scale
		for _, cell := range element.Cells {
			cx := originX + element.Anchor.X + float64(cell.DX)*cellSize
			cy := originY + element.Anchor.Y + float64(cell.DY)*cellSize
			vector.DrawFilledRect(screen,
				float32(cx-size/2), float32(cy-size/2),
				float32(size), float32(size), clr, true)
		}
	}
}

// drawContinuePrompt draws the breathing "continue" control at the
// bottom of a revealed scene.
func drawContinuePrompt(screen *ebiten.Image, label string, elapsed float64) {
	alpha := 0.55 + 0.45*utils.Pulse(elapsed, config.RevealPromptDelay)
	drawCenteredText(screen, label, 20,
		float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)-44,
		color.RGBA{R: 255, G: 244, B: 214, A: 255}, alpha)
}

// continueActivated reports whether the viewer triggered the continue
// control this frame: the activate key, or a click in the bottom strip
// where the prompt sits.
func continueActivated() bool {
	if utils.IsActivateKeyJustPressed() {
		return true
	}
	clicked, x, y := utils.IsJustTouchedOrClicked()
	return clicked && utils.InRect(x, y,
		float64(config.GameWindowWidth)/2, float64(config.GameWindowHeight)-44, 360, 64)
}

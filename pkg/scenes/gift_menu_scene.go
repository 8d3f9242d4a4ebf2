package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/game"
	"github.com/decker502/keepsake/pkg/utils"
)

// menuEntry is one gift button on the hub, bound to its layout slot.
type menuEntry struct {
	gift  config.GiftDef
	scene game.SceneID
	slot  config.MenuSlot
}

// GiftMenuScene is the hub: every gift scene routes back here, and the
// finale door at the bottom only becomes actionable once the tracker
// reports all gifts opened. The scene runs no choreography of its own;
// its little idle motion is driven straight from elapsed time.
type GiftMenuScene struct {
	director *game.SceneDirector
	entries  []menuEntry
	elapsed  float64
}

// NewGiftMenuScene builds the hub from the gift manifest. Manifest
// scene names were validated at app assembly, so a parse failure here
// is a programming error.
func NewGiftMenuScene(director *game.SceneDirector, manifest *config.GiftManifest) *GiftMenuScene {
	if len(manifest.Gifts) > len(config.MenuGiftSlots) {
		log.Panicf("[GiftMenu] manifest has %d gifts but only %d menu slots",
			len(manifest.Gifts), len(config.MenuGiftSlots))
	}
	s := &GiftMenuScene{director: director}
	for i, gift := range manifest.Gifts {
		sceneID, err := game.ParseSceneID(gift.Scene)
		if err != nil {
			log.Panicf("[GiftMenu] %v", err)
		}
		s.entries = append(s.entries, menuEntry{
			gift:  gift,
			scene: sceneID,
			slot:  config.MenuGiftSlots[i],
		})
	}
	return s
}

// Update handles gift and finale-door activation.
func (s *GiftMenuScene) Update(deltaTime float64) {
	s.elapsed += deltaTime

	clicked, x, y := utils.IsJustTouchedOrClicked()
	if !clicked {
		return
	}

	for _, entry := range s.entries {
		if utils.InCircle(x, y, entry.slot.X, entry.slot.Y, config.MenuGiftRadius) {
			s.director.GoTo(entry.scene)
			return
		}
	}

	// The door is only presented as actionable when unlocked; the
	// director's guard makes a stray request harmless anyway.
	if s.allOpened() && utils.InRect(x, y,
		config.MenuFinaleDoorX, config.MenuFinaleDoorY,
		config.MenuFinaleDoorWidth, config.MenuFinaleDoorHeight) {
		s.director.GoTo(game.SceneFinale)
	}
}

func (s *GiftMenuScene) allOpened() bool {
	return s.director.Tracker().AllOpened()
}

// Draw renders the gift ring and the finale door.
func (s *GiftMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 28, G: 22, B: 40, A: 255})

	drawCenteredText(screen, "A few small gifts, just for you",
		28, float64(config.GameWindowWidth)/2, config.MenuTitleY,
		color.RGBA{R: 244, G: 234, B: 246, A: 255}, 1)

	px, py := utils.GetPointerPosition()
	tracker := s.director.Tracker()

	for _, entry := range s.entries {
		opened := tracker.IsOpened(entry.gift.ID)
		hovered := utils.InCircle(px, py, entry.slot.X, entry.slot.Y, config.MenuGiftRadius)

		fill := color.RGBA{R: 58, G: 46, B: 84, A: 255}
		if opened {
			fill = color.RGBA{R: 84, G: 64, B: 110, A: 255}
		}
		radius := config.MenuGiftRadius
		if !opened {
			// Unopened gifts breathe to invite a click.
			radius += 3 * utils.Pulse(s.elapsed, 2.4)
		}
		if hovered {
			vector.DrawFilledCircle(screen, float32(entry.slot.X), float32(entry.slot.Y),
				float32(radius+5), color.RGBA{R: 255, G: 214, B: 140, A: 90}, true)
		}
		vector.DrawFilledCircle(screen, float32(entry.slot.X), float32(entry.slot.Y),
			float32(radius), fill, true)

		drawCenteredText(screen, entry.gift.Name, 18,
			entry.slot.X, entry.slot.Y, color.RGBA{R: 240, G: 232, B: 244, A: 255}, 1)
		if opened {
			drawCenteredText(screen, "opened", 13,
				entry.slot.X, entry.slot.Y+config.MenuGiftRadius-12,
				color.RGBA{R: 170, G: 240, B: 170, A: 255}, 1)
		} else if hovered && entry.gift.Hint != "" {
			drawCenteredText(screen, entry.gift.Hint, 14,
				entry.slot.X, entry.slot.Y+config.MenuGiftRadius+20,
				color.RGBA{R: 210, G: 196, B: 220, A: 255}, 0.9)
		}
	}

	s.drawFinaleDoor(screen, tracker)
}

// drawFinaleDoor renders the gated bottom door: dimmed with a progress
// count while locked, glowing once all gifts are opened.
func (s *GiftMenuScene) drawFinaleDoor(screen *ebiten.Image, tracker *game.GiftTracker) {
	x := config.MenuFinaleDoorX - config.MenuFinaleDoorWidth/2
	y := config.MenuFinaleDoorY - config.MenuFinaleDoorHeight/2

	if s.allOpened() {
		glow := 0.5 + 0.5*utils.Pulse(s.elapsed, 1.8)
		vector.DrawFilledRect(screen,
			float32(x-4), float32(y-4),
			float32(config.MenuFinaleDoorWidth+8), float32(config.MenuFinaleDoorHeight+8),
			color.RGBA{R: 255, G: 212, B: 120, A: uint8(60 + 80*glow)}, true)
		vector.DrawFilledRect(screen, float32(x), float32(y),
			float32(config.MenuFinaleDoorWidth), float32(config.MenuFinaleDoorHeight),
			color.RGBA{R: 116, G: 84, B: 140, A: 255}, true)
		drawCenteredText(screen, "the last door", 20,
			config.MenuFinaleDoorX, config.MenuFinaleDoorY,
			color.RGBA{R: 255, G: 240, B: 200, A: 255}, 1)
		return
	}

	vector.DrawFilledRect(screen, float32(x), float32(y),
		float32(config.MenuFinaleDoorWidth), float32(config.MenuFinaleDoorHeight),
		color.RGBA{R: 44, G: 38, B: 56, A: 255}, true)
	progress := fmt.Sprintf("%d / %d", tracker.OpenedCount(), tracker.TotalCount())
	drawCenteredText(screen, progress, 18,
		config.MenuFinaleDoorX, config.MenuFinaleDoorY,
		color.RGBA{R: 150, G: 140, B: 160, A: 255}, 1)
}

package scenes

import (
	"log"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/game"
)

// NewScene is the scene factory: it builds the scene for any id in the
// closed scene set. The set is closed at compile time, so an
// unrecognized id is a programming error and panics rather than being
// recovered at runtime.
func NewScene(id game.SceneID, director *game.SceneDirector,
	settings *game.SettingsManager, manifest *config.GiftManifest) game.Scene {
	switch id {
	case game.SceneIntro:
		return NewIntroScene(director, settings)
	case game.SceneGiftMenu:
		return NewGiftMenuScene(director, manifest)
	case game.SceneBouquet:
		return NewBouquetScene(director, settings)
	case game.SceneLetter:
		return NewLetterScene(director, settings)
	case game.SceneCake:
		return NewCakeScene(director, settings)
	case game.SceneMusicBox:
		return NewMusicBoxScene(director, settings)
	case game.SceneStarlight:
		return NewStarlightScene(director, settings)
	case game.SceneFinale:
		return NewFinaleScene(director, settings)
	default:
		log.Panicf("[Scenes] no scene registered for %s", id)
		return nil
	}
}

package game

import "fmt"

// SceneID identifies one scene in the fixed, closed scene set. The
// running program holds exactly one current SceneID at a time, owned by
// the SceneDirector.
type SceneID int

const (
	// SceneIntro is the designated entry scene.
	SceneIntro SceneID = iota
	// SceneGiftMenu is the hub every gift scene routes back to.
	SceneGiftMenu
	// SceneBouquet is the flower-assembly gift scene.
	SceneBouquet
	// SceneLetter is the letter gift scene.
	SceneLetter
	// SceneCake is the cake-assembly gift scene.
	SceneCake
	// SceneMusicBox is the music box gift scene.
	SceneMusicBox
	// SceneStarlight is the constellation gift scene.
	SceneStarlight
	// SceneFinale is gated behind all gifts being opened.
	SceneFinale
)

var sceneNames = map[SceneID]string{
	SceneIntro:     "Intro",
	SceneGiftMenu:  "GiftMenu",
	SceneBouquet:   "Bouquet",
	SceneLetter:    "Letter",
	SceneCake:      "Cake",
	SceneMusicBox:  "MusicBox",
	SceneStarlight: "Starlight",
	SceneFinale:    "Finale",
}

// String returns the scene's name as used in logs and the gift manifest.
func (id SceneID) String() string {
	if name, ok := sceneNames[id]; ok {
		return name
	}
	return fmt.Sprintf("SceneID(%d)", int(id))
}

// ParseSceneID resolves a manifest scene name to its SceneID. The scene
// set is closed; an unknown name is a configuration error.
func ParseSceneID(name string) (SceneID, error) {
	for id, n := range sceneNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown scene name: %q", name)
}

// AllSceneIDs returns every defined SceneID in declaration order.
func AllSceneIDs() []SceneID {
	return []SceneID{
		SceneIntro, SceneGiftMenu, SceneBouquet, SceneLetter,
		SceneCake, SceneMusicBox, SceneStarlight, SceneFinale,
	}
}

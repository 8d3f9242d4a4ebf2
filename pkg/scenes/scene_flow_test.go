package scenes

import (
	"testing"

	"github.com/decker502/keepsake/pkg/game"
)

// TestFullGiftFlowUnlocksFinale walks the whole experience through the
// director the way the app wires it: visit every gift from the hub,
// then take the finale door.
func TestFullGiftFlowUnlocksFinale(t *testing.T) {
	director, _ := newTestDirector(t)

	director.GoTo(game.SceneIntro)
	director.GoTo(game.SceneGiftMenu)

	giftScenes := []game.SceneID{
		game.SceneBouquet, game.SceneLetter, game.SceneCake,
		game.SceneMusicBox, game.SceneStarlight,
	}
	for i, id := range giftScenes {
		// The door stays shut until the last gift is opened.
		director.GoTo(game.SceneFinale)
		if director.Current() != game.SceneGiftMenu {
			t.Fatalf("finale gate opened after %d of %d gifts", i, len(giftScenes))
		}

		director.GoTo(id)
		if director.Current() != id {
			t.Fatalf("GoTo(%s) did not mount the scene", id)
		}
		// Leave mid-animation: the director must dispose the scene.
		director.GoTo(game.SceneGiftMenu)
	}

	if !director.Tracker().AllOpened() {
		t.Fatal("visiting every gift scene did not open every gift")
	}
	director.GoTo(game.SceneFinale)
	if director.Current() != game.SceneFinale {
		t.Error("finale door shut after all gifts were opened")
	}
}

// TestLeavingSceneMidAnimationFreezesIt verifies the director's
// dispose hook actually cancels a live scene's pending work: a scene
// left mid-run observes no further callbacks even if someone keeps
// updating it.
func TestLeavingSceneMidAnimationFreezesIt(t *testing.T) {
	director, settings := newTestDirector(t)

	scene := NewCakeScene(director, settings)
	pump(scene, 1.5) // past the entry delay, a few elements placed
	placed := scene.placed
	if placed == 0 {
		t.Fatal("precondition: nothing placed before leaving")
	}

	// Simulate the director's teardown on navigation.
	scene.Dispose()
	pump(scene, 30)

	if scene.placed != placed {
		t.Errorf("placed advanced after leaving: %d -> %d", placed, scene.placed)
	}
	if scene.revealed {
		t.Error("continue control revealed after leaving")
	}
}

// TestSceneFactoryCoversClosedSet verifies every SceneID builds, and
// that every timed scene participates in the dispose protocol.
func TestSceneFactoryCoversClosedSet(t *testing.T) {
	director, settings := newTestDirector(t)

	for _, id := range game.AllSceneIDs() {
		scene := NewScene(id, director, settings, testManifest(t))
		if scene == nil {
			t.Errorf("NewScene(%s) returned nil", id)
			continue
		}
		if id == game.SceneGiftMenu {
			continue // the hub owns no timers
		}
		if _, ok := scene.(game.Disposable); !ok {
			t.Errorf("%s does not implement Disposable", id)
		}
	}
}

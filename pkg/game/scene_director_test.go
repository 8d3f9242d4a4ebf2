package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	id            SceneID
	updateCalled  bool
	deltaTime     float64
	disposeCalled int
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw is a no-op for the mock.
func (m *MockScene) Draw(screen *ebiten.Image) {}

// Dispose records how many times the director disposed this scene.
func (m *MockScene) Dispose() {
	m.disposeCalled++
}

// testDirector builds a director over the given gift ids with a factory
// that records every created mock scene.
func testDirector(giftIDs []string) (*SceneDirector, map[SceneID]*MockScene) {
	created := make(map[SceneID]*MockScene)
	d := NewSceneDirector(NewGiftTracker(giftIDs))
	d.SetSceneFactory(func(id SceneID) Scene {
		scene := &MockScene{id: id}
		created[id] = scene
		return scene
	})
	return d, created
}

// TestDirectorGoToSwitchesScene verifies GoTo mounts the target scene
// and updates Current.
func TestDirectorGoToSwitchesScene(t *testing.T) {
	d, created := testDirector([]string{"bouquet"})
	d.BindGiftScene(SceneBouquet, "bouquet")

	d.GoTo(SceneIntro)
	if d.Current() != SceneIntro {
		t.Errorf("Current() = %s, want Intro", d.Current())
	}
	if created[SceneIntro] == nil {
		t.Fatal("factory was not invoked for Intro")
	}

	d.GoTo(SceneGiftMenu)
	if d.Current() != SceneGiftMenu {
		t.Errorf("Current() = %s, want GiftMenu", d.Current())
	}
}

// TestDirectorFinaleGate verifies the menu→finale transition never
// succeeds while gifts remain unopened, for any interleaving of
// MarkOpened and GoTo calls, and succeeds once all are opened.
func TestDirectorFinaleGate(t *testing.T) {
	d, _ := testDirector([]string{"bouquet", "letter", "cake"})
	d.BindGiftScene(SceneBouquet, "bouquet")
	d.BindGiftScene(SceneLetter, "letter")
	d.BindGiftScene(SceneCake, "cake")

	d.GoTo(SceneGiftMenu)

	// Gate closed: request is silently ignored, no state change.
	d.GoTo(SceneFinale)
	if d.Current() != SceneGiftMenu {
		t.Fatalf("gated GoTo(Finale) changed scene to %s", d.Current())
	}

	// Interleave gift visits with gate probes.
	for _, id := range []SceneID{SceneBouquet, SceneLetter} {
		d.GoTo(id)
		d.GoTo(SceneGiftMenu)
		d.GoTo(SceneFinale)
		if d.Current() != SceneGiftMenu {
			t.Fatalf("finale gate opened after visiting only %s", id)
		}
	}

	d.GoTo(SceneCake)
	d.GoTo(SceneGiftMenu)
	d.GoTo(SceneFinale)
	if d.Current() != SceneFinale {
		t.Errorf("Current() = %s after all gifts opened, want Finale", d.Current())
	}
}

// TestDirectorMarksGiftOnEntry verifies entering a gift-bound scene
// marks its gift opened, and re-entering is a tracker no-op.
func TestDirectorMarksGiftOnEntry(t *testing.T) {
	d, _ := testDirector([]string{"bouquet", "letter"})
	d.BindGiftScene(SceneBouquet, "bouquet")
	d.BindGiftScene(SceneLetter, "letter")

	d.GoTo(SceneGiftMenu)
	if d.Tracker().OpenedCount() != 0 {
		t.Fatal("entering the menu opened a gift")
	}

	d.GoTo(SceneBouquet)
	if !d.Tracker().IsOpened("bouquet") {
		t.Error("entering Bouquet did not mark its gift opened")
	}

	d.GoTo(SceneGiftMenu)
	d.GoTo(SceneBouquet)
	if d.Tracker().OpenedCount() != 1 {
		t.Errorf("OpenedCount() = %d after re-entry, want 1", d.Tracker().OpenedCount())
	}
}

// TestDirectorDisposesOutgoingScene verifies the outgoing scene's
// Dispose runs on every transition away from it, before the new scene
// mounts. Stale timers cancelled here must never outlive their scene.
func TestDirectorDisposesOutgoingScene(t *testing.T) {
	d, created := testDirector([]string{"bouquet"})
	d.BindGiftScene(SceneBouquet, "bouquet")

	d.GoTo(SceneBouquet)
	bouquet := created[SceneBouquet]
	if bouquet.disposeCalled != 0 {
		t.Fatal("scene disposed at mount time")
	}

	d.GoTo(SceneGiftMenu)
	if bouquet.disposeCalled != 1 {
		t.Errorf("outgoing scene disposed %d times, want 1", bouquet.disposeCalled)
	}

	// A gated, ignored request must not dispose anything either.
	d2, created2 := testDirector([]string{"never-opened"})
	d2.GoTo(SceneGiftMenu)
	d2.GoTo(SceneFinale)
	if created2[SceneGiftMenu].disposeCalled != 0 {
		t.Error("ignored gated request disposed the current scene")
	}
}

// TestDirectorUpdateDelegates verifies Update reaches the current scene
// with the given deltaTime and tolerates having no scene.
func TestDirectorUpdateDelegates(t *testing.T) {
	d, created := testDirector(nil)

	d.Update(0.016) // no scene yet, must not panic

	d.GoTo(SceneIntro)
	d.Update(0.016)
	scene := created[SceneIntro]
	if !scene.updateCalled {
		t.Error("scene Update was not called")
	}
	if scene.deltaTime != 0.016 {
		t.Errorf("deltaTime = %v, want 0.016", scene.deltaTime)
	}
}

// TestDirectorUnknownFactoryPanics verifies a nil factory result fails
// fast.
func TestDirectorUnknownFactoryPanics(t *testing.T) {
	d := NewSceneDirector(NewGiftTracker(nil))
	d.SetSceneFactory(func(id SceneID) Scene { return nil })
	defer func() {
		if recover() == nil {
			t.Error("GoTo with a nil-returning factory did not panic")
		}
	}()
	d.GoTo(SceneIntro)
}

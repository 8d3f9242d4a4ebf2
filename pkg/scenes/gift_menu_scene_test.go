package scenes

import (
	"fmt"
	"strings"
	"testing"

	"github.com/decker502/keepsake/pkg/config"
	"github.com/decker502/keepsake/pkg/game"
)

// TestNewGiftMenuScene verifies the hub binds every manifest gift to a
// layout slot and its scene id.
func TestNewGiftMenuScene(t *testing.T) {
	director, _ := newTestDirector(t)
	scene := NewGiftMenuScene(director, testManifest(t))

	if len(scene.entries) != 5 {
		t.Fatalf("menu has %d entries, want 5", len(scene.entries))
	}
	if scene.entries[0].gift.ID != "bouquet" || scene.entries[0].scene != game.SceneBouquet {
		t.Errorf("first entry = %s/%s, want bouquet/Bouquet",
			scene.entries[0].gift.ID, scene.entries[0].scene)
	}
	for i, entry := range scene.entries {
		if entry.slot != config.MenuGiftSlots[i] {
			t.Errorf("entry %d assigned slot %v, want %v", i, entry.slot, config.MenuGiftSlots[i])
		}
	}
}

// TestNewGiftMenuSceneTooManyGifts verifies a manifest larger than the
// slot table fails fast at construction.
func TestNewGiftMenuSceneTooManyGifts(t *testing.T) {
	director, _ := newTestDirector(t)

	var sb strings.Builder
	sb.WriteString("gifts:\n")
	for i := 0; i <= len(config.MenuGiftSlots); i++ {
		fmt.Fprintf(&sb, "  - { id: g%d, name: g%d, scene: Bouquet }\n", i, i)
	}
	manifest, err := config.LoadGiftManifest([]byte(sb.String()))
	if err != nil {
		t.Fatalf("LoadGiftManifest() error: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("oversized manifest did not panic at menu construction")
		}
	}()
	NewGiftMenuScene(director, manifest)
}

// TestNewGiftMenuSceneBadSceneName verifies an unparseable scene name
// fails fast (the closed scene set is a build-time invariant).
func TestNewGiftMenuSceneBadSceneName(t *testing.T) {
	director, _ := newTestDirector(t)

	manifest := &config.GiftManifest{Gifts: []config.GiftDef{
		{ID: "mystery", Name: "mystery", Scene: "Basement"},
	}}

	defer func() {
		if recover() == nil {
			t.Error("unknown scene name did not panic at menu construction")
		}
	}()
	NewGiftMenuScene(director, manifest)
}

package game

import "testing"

// TestSceneIDString verifies String for known and unknown ids.
func TestSceneIDString(t *testing.T) {
	if got := SceneGiftMenu.String(); got != "GiftMenu" {
		t.Errorf("SceneGiftMenu.String() = %q, want %q", got, "GiftMenu")
	}
	if got := SceneID(99).String(); got != "SceneID(99)" {
		t.Errorf("SceneID(99).String() = %q, want %q", got, "SceneID(99)")
	}
}

// TestParseSceneID verifies round-tripping every defined scene name and
// rejection of unknown names.
func TestParseSceneID(t *testing.T) {
	for _, id := range AllSceneIDs() {
		parsed, err := ParseSceneID(id.String())
		if err != nil {
			t.Errorf("ParseSceneID(%q) error: %v", id.String(), err)
			continue
		}
		if parsed != id {
			t.Errorf("ParseSceneID(%q) = %v, want %v", id.String(), parsed, id)
		}
	}

	if _, err := ParseSceneID("Basement"); err == nil {
		t.Error("ParseSceneID accepted an unknown scene name")
	}
}

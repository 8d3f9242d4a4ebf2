package confetti

import "testing"

// TestNewFieldPopulatesParticles verifies the field starts full.
func TestNewFieldPopulatesParticles(t *testing.T) {
	f := NewField(80, 800, 600, 1)
	if len(f.Particles()) != 80 {
		t.Fatalf("field has %d particles, want 80", len(f.Particles()))
	}
	for i, p := range f.Particles() {
		if p.Size <= 0 {
			t.Errorf("particle %d has non-positive size %v", i, p.Size)
		}
		if p.VY <= 0 {
			t.Errorf("particle %d does not fall (VY=%v)", i, p.VY)
		}
	}
}

// TestFieldDeterministic verifies the same seed yields the same field.
func TestFieldDeterministic(t *testing.T) {
	a := NewField(10, 800, 600, 42)
	b := NewField(10, 800, 600, 42)
	for i := range a.Particles() {
		if a.Particles()[i] != b.Particles()[i] {
			t.Fatalf("particle %d differs between identically seeded fields", i)
		}
	}
}

// TestAdvanceRespawnsFallenParticles verifies particles that leave the
// bottom edge re-enter from the top and the field never shrinks.
func TestAdvanceRespawnsFallenParticles(t *testing.T) {
	f := NewField(40, 800, 600, 7)
	for i := 0; i < 600; i++ {
		f.Advance(0.1) // a minute of fall time in total
	}
	if len(f.Particles()) != 40 {
		t.Fatalf("field shrank to %d particles", len(f.Particles()))
	}
	for i, p := range f.Particles() {
		if p.Y > 612 {
			t.Errorf("particle %d stuck below the screen at y=%v", i, p.Y)
		}
	}
}

// Package confetti generates the decorative particle field for the
// finale scene. Purely presentational: the field never feeds back into
// narrative state and owns no timers of its own — the scene advances it
// from Update with the same deltaTime as everything else.
package confetti

import "math/rand"

// Particle is one falling confetto.
type Particle struct {
	X, Y    float64 // position in screen pixels
	VX, VY  float64 // velocity in pixels per second
	Spin    float64 // rotation speed in radians per second
	Angle   float64 // current rotation
	Size    float64 // edge length in pixels
	Palette int     // index into the scene's color palette
}

// Field is a fixed-size particle field that wraps at the bottom edge.
type Field struct {
	particles []Particle
	width     float64
	height    float64
	rng       *rand.Rand
}

// NewField creates a field of n particles scattered above the visible
// area. A fixed seed keeps the finale deterministic run to run.
func NewField(n int, width, height float64, seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))
	f := &Field{
		particles: make([]Particle, n),
		width:     width,
		height:    height,
		rng:       rng,
	}
	for i := range f.particles {
		f.particles[i] = f.spawn(true)
	}
	return f
}

// spawn creates a fresh particle. Initial placement scatters over the
// whole screen; respawns enter from just above the top edge.
func (f *Field) spawn(initial bool) Particle {
	y := -10 - f.rng.Float64()*40
	if initial {
		y = f.rng.Float64() * f.height
	}
	return Particle{
		X:       f.rng.Float64() * f.width,
		Y:       y,
		VX:      -30 + f.rng.Float64()*60,
		VY:      60 + f.rng.Float64()*90,
		Spin:    -4 + f.rng.Float64()*8,
		Angle:   f.rng.Float64() * 6.28318,
		Size:    4 + f.rng.Float64()*5,
		Palette: f.rng.Intn(5),
	}
}

// Advance moves every particle by dt seconds, respawning those that
// fell past the bottom edge.
func (f *Field) Advance(dt float64) {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Angle += p.Spin * dt
		if p.Y > f.height+12 {
			*p = f.spawn(false)
		}
	}
}

// Particles returns the current particle slice for rendering.
func (f *Field) Particles() []Particle {
	return f.particles
}

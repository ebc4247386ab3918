package stardust

import "testing"

func TestParticleEmitVelocityAndColor(t *testing.T) {
	cfg := DefaultConfig()
	var f particleField
	// vx draw, vy draw, color draw per particle.
	r := &seqRand{vals: []float64{0, 1, 0.2, 1, 0, 0.8}}
	f.emit(10, 20, 2, 50, &cfg, r)

	if len(f.particles) != 2 || f.emitted != 2 {
		t.Fatalf("particles = %d, emitted = %d, want 2, 2", len(f.particles), f.emitted)
	}
	// spread = 50 * 0.2 = 10
	p0, p1 := f.particles[0], f.particles[1]
	assertNear(t, "p0.VX", p0.VX, -5)
	assertNear(t, "p0.VY", p0.VY, 5)
	assertNear(t, "p1.VX", p1.VX, 5)
	assertNear(t, "p1.VY", p1.VY, -5)
	if p0.Color != cfg.Accents[0] {
		t.Errorf("p0 color = %+v, want first accent", p0.Color)
	}
	if p1.Color != cfg.Accents[1] {
		t.Errorf("p1 color = %+v, want second accent", p1.Color)
	}
}

func TestParticleEmitZero(t *testing.T) {
	cfg := DefaultConfig()
	var f particleField
	f.emit(0, 0, 0, 0, &cfg, &seqRand{vals: []float64{0.5}})
	if len(f.particles) != 0 {
		t.Errorf("particles = %d, want 0", len(f.particles))
	}
}

func TestParticleUpdateSwapRemoves(t *testing.T) {
	f := particleField{particles: []Particle{
		{X: 0, Life: 0.01},
		{X: 1, Life: 1},
		{X: 2, Life: 0.015},
		{X: 3, Life: 0.5},
	}}
	f.update(0.02, 1)
	if len(f.particles) != 2 {
		t.Fatalf("alive = %d, want 2", len(f.particles))
	}
	if f.culled != 2 {
		t.Errorf("culled = %d, want 2", f.culled)
	}
	seen := map[float64]bool{}
	for _, p := range f.particles {
		if p.Life <= 0 {
			t.Errorf("dead particle kept: %+v", p)
		}
		seen[p.X] = true
	}
	if !seen[1] || !seen[3] {
		t.Errorf("survivors = %+v, want X=1 and X=3", f.particles)
	}
}

func TestParticleUpdateScaled(t *testing.T) {
	f := particleField{particles: []Particle{{X: 0, Y: 0, VX: 2, VY: -1, Life: 1}}}
	f.update(0.02, 2.5)
	p := f.particles[0]
	assertNear(t, "X", p.X, 5)
	assertNear(t, "Y", p.Y, -2.5)
	assertNear(t, "Life", p.Life, 0.95)
}

func TestParticleDrawScalesWithLife(t *testing.T) {
	f := particleField{particles: []Particle{
		{X: 4, Y: 5, Life: 0.5, Color: Color{R: 1, G: 1, B: 1, A: 1}},
	}}
	s := newRecordSurface(10, 10)
	f.draw(s, 3)
	if len(s.circles) != 1 {
		t.Fatalf("circles = %d, want 1", len(s.circles))
	}
	c := s.circles[0]
	assertNear(t, "r", c.r, 1.5)
	assertNear(t, "alpha", c.color.A, 0.5)
	if c.x != 4 || c.y != 5 {
		t.Errorf("center = (%v, %v), want (4, 5)", c.x, c.y)
	}
}

func TestParticleReset(t *testing.T) {
	f := particleField{particles: make([]Particle, 3)}
	f.reset()
	if len(f.particles) != 0 {
		t.Errorf("len = %d after reset", len(f.particles))
	}
}

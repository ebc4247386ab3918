package stardust

import "math"

// Particle is a single stardust mote. Particles are owned by the Animator;
// Animator.Particles returns copies.
type Particle struct {
	X, Y   float64
	VX, VY float64
	// Life starts at 1 and decreases by Config.LifeStep every frame. The
	// particle is removed once Life <= 0.
	Life  float64
	Color Color
}

// particleField is the live particle set. Dead particles are swap-removed so
// the slice never holds expired entries between frames.
type particleField struct {
	particles []Particle
	emitted   int // lifetime counters, reported in debug stats
	culled    int
}

// emit appends count particles at (x, y). speed is the absolute horizontal
// drag delta that produced the burst.
func (f *particleField) emit(x, y float64, count int, speed float64, cfg *Config, r Rand) {
	spread := speed * cfg.ParticleSpread
	for i := 0; i < count; i++ {
		p := Particle{X: x, Y: y, Life: 1}
		p.VX = (r.Float64() - 0.5) * spread
		p.VY = (r.Float64() - 0.5) * spread
		if r.Float64() < 0.5 {
			p.Color = cfg.Accents[0]
		} else {
			p.Color = cfg.Accents[1]
		}
		f.particles = append(f.particles, p)
	}
	f.emitted += count
}

// update moves every particle by scale*velocity, ages it by scale*lifeStep
// and swap-removes the expired ones.
func (f *particleField) update(lifeStep, scale float64) {
	i := 0
	for i < len(f.particles) {
		p := &f.particles[i]
		p.X += p.VX * scale
		p.Y += p.VY * scale
		p.Life -= lifeStep * scale
		if p.Life <= 0 {
			last := len(f.particles) - 1
			f.particles[i] = f.particles[last]
			f.particles = f.particles[:last]
			f.culled++
			continue
		}
		i++
	}
}

// draw renders survivors as filled circles whose radius and opacity scale
// with remaining life.
func (f *particleField) draw(s Surface, radius float64) {
	for i := range f.particles {
		p := &f.particles[i]
		s.FillCircle(p.X, p.Y, radius*p.Life, p.Color.WithAlpha(p.Life))
	}
}

func (f *particleField) reset() {
	f.particles = f.particles[:0]
}

// burstSize returns min(round(|delta|), maxBurst). Non-finite deltas emit
// nothing.
func burstSize(delta float64, maxBurst int) int {
	if !finite(delta) {
		return 0
	}
	n := math.Round(math.Abs(delta))
	if n > float64(maxBurst) {
		return maxBurst
	}
	return int(n)
}

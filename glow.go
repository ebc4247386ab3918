package stardust

import (
	"github.com/aquilax/go-perlin"
	"github.com/tanema/gween/ease"
)

// Perlin parameters for glow drift.
const (
	glowNoiseAlpha = 2.0
	glowNoiseBeta  = 2.0
	glowNoiseN     = 3
	glowDriftRate  = 0.15 // noise-space units per second
)

// RadialGlow is a soft radial light behind the page content. Its intensity
// breathes between MinAlpha and MaxAlpha and its center wanders around
// (X, Y) by up to Drift pixels.
type RadialGlow struct {
	X, Y   float64
	Radius float64
	Color  Color
	// Rings is the number of concentric fills used to fake the falloff.
	Rings int
	// Drift is the maximum distance the center wanders from (X, Y).
	Drift float64

	pulse *PingPong
	noise *perlin.Perlin
	t     float64
	cx    float64
	cy    float64
}

// GlowConfig configures NewRadialGlow.
type GlowConfig struct {
	X, Y     float64
	Radius   float64
	Color    Color
	Rings    int
	Drift    float64
	MinAlpha float64
	MaxAlpha float64
	// Period is the duration of one breath (dim to bright) in seconds.
	Period float32
	// Seed drives the drift noise.
	Seed int64
}

// NewRadialGlow creates a glow from cfg, filling zero fields with defaults.
func NewRadialGlow(cfg GlowConfig) *RadialGlow {
	if cfg.Rings <= 0 {
		cfg.Rings = 12
	}
	if cfg.Period <= 0 {
		cfg.Period = 4
	}
	if cfg.MaxAlpha == 0 {
		cfg.MinAlpha, cfg.MaxAlpha = 0.35, 0.6
	}
	return &RadialGlow{
		X:      cfg.X,
		Y:      cfg.Y,
		Radius: cfg.Radius,
		Color:  cfg.Color,
		Rings:  cfg.Rings,
		Drift:  cfg.Drift,
		pulse:  NewPingPong(cfg.MinAlpha, cfg.MaxAlpha, cfg.Period, ease.InOutSine),
		noise:  perlin.NewPerlin(glowNoiseAlpha, glowNoiseBeta, glowNoiseN, cfg.Seed),
		cx:     cfg.X,
		cy:     cfg.Y,
	}
}

// Update advances the pulse and drift by dt seconds.
func (g *RadialGlow) Update(dt float64) {
	g.t += dt
	g.pulse.Update(float32(dt))
	n := g.t * glowDriftRate
	g.cx = g.X + g.noise.Noise1D(n)*g.Drift
	g.cy = g.Y + g.noise.Noise1D(n+97.3)*g.Drift
}

// Intensity returns the current peak alpha.
func (g *RadialGlow) Intensity() float64 {
	return g.pulse.Value()
}

// Center returns the current drifted center.
func (g *RadialGlow) Center() (x, y float64) {
	return g.cx, g.cy
}

// Draw stacks Rings translucent discs, largest first, so alpha accumulates
// toward the center.
func (g *RadialGlow) Draw(s Surface) {
	per := g.Intensity() / float64(g.Rings)
	for i := g.Rings; i >= 1; i-- {
		r := g.Radius * float64(i) / float64(g.Rings)
		s.FillCircle(g.cx, g.cy, r, g.Color.WithAlpha(per))
	}
}

package stardust

import "math"

// ribbonField samples the background ribbon curves. Ribbons hold no state
// beyond the point buffer reused between frames; their shape is a pure
// function of simulation time, ribbon index and velocity.
type ribbonField struct {
	ptsBuf []Vec2
}

// RibbonOffset returns the horizontal displacement of ribbon index at height
// y: sin(y*freq + t + index) * (amplitude + |velocity|*gain).
func RibbonOffset(cfg *Config, index int, y, t, velocity float64) float64 {
	amp := cfg.RibbonAmplitude + math.Abs(velocity)*cfg.RibbonVelocityGain
	return math.Sin(y*cfg.RibbonFrequency+t+float64(index)) * amp
}

// points returns the sampled path of ribbon index on a w x h surface. Ribbons
// are spaced evenly across the width and sampled top to bottom every
// RibbonStep pixels. The returned slice is only valid until the next call.
func (f *ribbonField) points(cfg *Config, index, w, h int, t, velocity float64) []Vec2 {
	step := cfg.RibbonStep
	n := int(math.Ceil(float64(h)/step)) + 1
	if n < 2 {
		n = 2
	}

	// Grow ptsBuf to high-water mark.
	if cap(f.ptsBuf) < n {
		f.ptsBuf = make([]Vec2, n)
	}
	f.ptsBuf = f.ptsBuf[:n]

	baseX := float64(w) * float64(index+1) / float64(cfg.RibbonCount+1)
	for i := 0; i < n; i++ {
		y := math.Min(float64(i)*step, float64(h))
		f.ptsBuf[i] = Vec2{
			X: baseX + RibbonOffset(cfg, index, y, t, velocity),
			Y: y,
		}
	}
	return f.ptsBuf
}

func (f *ribbonField) draw(s Surface, cfg *Config, t, velocity float64) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	for i := 0; i < cfg.RibbonCount; i++ {
		s.StrokePolyline(f.points(cfg, i, w, h, t, velocity), cfg.RibbonWidth, cfg.RibbonColor)
	}
}

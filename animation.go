package stardust

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// PingPong animates a value back and forth between two bounds forever, easing
// each leg with the same function. Call Update(dt) each frame.
//
// There is no global animation manager; owners call Update themselves.
type PingPong struct {
	tween    *gween.Tween
	from, to float32
	duration float32
	fn       ease.TweenFunc
	value    float64
	legs     int
}

// NewPingPong creates a PingPong starting at from and heading to to, taking
// duration seconds per leg.
func NewPingPong(from, to float64, duration float32, fn ease.TweenFunc) *PingPong {
	if fn == nil {
		fn = ease.InOutSine
	}
	return &PingPong{
		tween:    gween.New(float32(from), float32(to), duration, fn),
		from:     float32(from),
		to:       float32(to),
		duration: duration,
		fn:       fn,
		value:    from,
	}
}

// Update advances the animation by dt seconds and returns the current value.
// When a leg finishes, the next one starts in the opposite direction.
func (p *PingPong) Update(dt float32) float64 {
	val, finished := p.tween.Update(dt)
	p.value = float64(val)
	if finished {
		p.from, p.to = p.to, p.from
		p.tween = gween.New(p.from, p.to, p.duration, p.fn)
		p.legs++
	}
	return p.value
}

// Value returns the most recent value.
func (p *PingPong) Value() float64 {
	return p.value
}

// Legs returns how many legs have completed.
func (p *PingPong) Legs() int {
	return p.legs
}

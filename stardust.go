package stardust

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a Surface backend.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// WithAlpha returns c with its alpha channel multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// ToRGBA returns c as a premultiplied color.RGBA suitable for image/draw and
// Ebitengine.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Vec2 is a 2D vector used for positions, velocities and path points.
type Vec2 struct {
	X, Y float64
}

// Rand is the random source used for particle colors and velocities.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

package stardust

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring constants of the moon cursor, expressed as a mass-spring-damper with
// unit mass.
const (
	CursorStiffness = 150.0
	CursorDamping   = 25.0
)

// MoonCursor is a custom cursor that trails the pointer on a damped spring.
// Each axis is an independent spring; call SetTarget whenever the pointer
// moves and Update once per frame.
type MoonCursor struct {
	spring harmonica.Spring

	x, y   float64
	vx, vy float64
	tx, ty float64

	// Radius of the moon disc in pixels.
	Radius float64
	// Color of the disc; drawn additively-looking via two translucent rings.
	Color Color
	// Visible is false until the first target is set.
	Visible bool
}

// NewMoonCursor creates a cursor whose spring is stepped at fps frames per
// second, with the stiffness and damping of CursorStiffness/CursorDamping.
func NewMoonCursor(fps int) *MoonCursor {
	if fps <= 0 {
		fps = frameRate
	}
	omega := math.Sqrt(CursorStiffness)
	zeta := CursorDamping / (2 * omega)
	return &MoonCursor{
		spring: harmonica.NewSpring(harmonica.FPS(fps), omega, zeta),
		Radius: 50,
		Color:  Color{R: 0.96, G: 0.94, B: 0.86, A: 0.8},
	}
}

// SetTarget moves the spring's rest point. The first call also snaps the
// cursor there so it doesn't fly in from the origin.
func (c *MoonCursor) SetTarget(x, y float64) {
	if !finite(x) || !finite(y) {
		return
	}
	if !c.Visible {
		c.x, c.y = x, y
		c.Visible = true
	}
	c.tx, c.ty = x, y
}

// Update steps both springs by one frame and returns the new position.
func (c *MoonCursor) Update() (x, y float64) {
	c.x, c.vx = c.spring.Update(c.x, c.vx, c.tx)
	c.y, c.vy = c.spring.Update(c.y, c.vy, c.ty)
	return c.x, c.y
}

// Position returns the current cursor position.
func (c *MoonCursor) Position() (x, y float64) {
	return c.x, c.y
}

// Draw renders the moon as a soft halo and a disc onto s.
func (c *MoonCursor) Draw(s Surface) {
	if !c.Visible {
		return
	}
	s.FillCircle(c.x, c.y, c.Radius*1.3, c.Color.WithAlpha(0.15))
	s.FillCircle(c.x, c.y, c.Radius, c.Color)
}

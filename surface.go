package stardust

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is a 2D pixel-addressable drawing target. The Animator clears and
// redraws it every frame. Implementations exist for Ebitengine (EbitenSurface),
// software rasterization (package raster), SVG (package svgframe) and
// terminals (package termview).
type Surface interface {
	// Size returns the surface dimensions in pixels.
	Size() (w, h int)
	// Resize reallocates the backing store. Contents are not preserved.
	Resize(w, h int) error
	// Clear erases the surface to transparent.
	Clear()
	// StrokePolyline strokes an open path through pts.
	StrokePolyline(pts []Vec2, width float64, c Color)
	// FillCircle fills a circle centered on (x, y).
	FillCircle(x, y, r float64, c Color)
}

// EbitenSurface is a Surface backed by an offscreen *ebiten.Image. The image
// is composited onto the screen by Game.Draw (or by the caller via Image).
type EbitenSurface struct {
	img *ebiten.Image
	w   int
	h   int

	borrowed bool // wraps an image owned by someone else; never reallocated
}

// NewEbitenSurface allocates a w x h offscreen image.
func NewEbitenSurface(w, h int) (*EbitenSurface, error) {
	s := &EbitenSurface{}
	if err := s.Resize(w, h); err != nil {
		return nil, err
	}
	return s, nil
}

// Image returns the backing image. It changes identity after Resize.
func (s *EbitenSurface) Image() *ebiten.Image {
	return s.img
}

// Size returns the surface dimensions in pixels.
func (s *EbitenSurface) Size() (int, int) {
	return s.w, s.h
}

// Resize reallocates the backing image. No-op when the size is unchanged.
func (s *EbitenSurface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resize surface: invalid dimensions %dx%d", w, h)
	}
	if s.borrowed {
		return fmt.Errorf("resize surface: image is borrowed")
	}
	if s.img != nil && s.w == w && s.h == h {
		return nil
	}
	if s.img != nil {
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(w, h)
	s.w, s.h = w, h
	return nil
}

// Clear erases the image.
func (s *EbitenSurface) Clear() {
	s.img.Clear()
}

// StrokePolyline strokes consecutive segments of pts with antialiasing.
func (s *EbitenSurface) StrokePolyline(pts []Vec2, width float64, c Color) {
	clr := c.ToRGBA()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(s.img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
	}
}

// FillCircle fills an antialiased circle. Non-positive radii draw nothing.
func (s *EbitenSurface) FillCircle(x, y, r float64, c Color) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c.ToRGBA(), true)
}

// Package raster provides a software-rasterized stardust.Surface backed by
// gogpu/gg. It needs no window or GPU, which makes it the surface of choice
// for headless rendering, golden images and tests.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/vanillamoon/stardust"
)

// Surface is a stardust.Surface that draws into an in-memory pixmap.
type Surface struct {
	dc *gg.Context
	// Background is painted by Clear. The zero value clears to transparent.
	Background stardust.Color

	err error // first rendering error, sticky until Err is called
}

var _ stardust.Surface = (*Surface)(nil)

// New creates a w x h surface.
func New(w, h int) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new raster surface: invalid dimensions %dx%d", w, h)
	}
	return &Surface{dc: gg.NewContext(w, h)}, nil
}

// Size returns the pixmap dimensions.
func (s *Surface) Size() (int, int) {
	return s.dc.Width(), s.dc.Height()
}

// Resize reallocates the pixmap. Contents are discarded.
func (s *Surface) Resize(w, h int) error {
	if err := s.dc.Resize(w, h); err != nil {
		return fmt.Errorf("resize raster surface: %w", err)
	}
	return nil
}

// Clear paints the whole pixmap with Background.
func (s *Surface) Clear() {
	b := s.Background
	s.dc.ClearWithColor(gg.RGBA{R: b.R, G: b.G, B: b.B, A: b.A})
}

// StrokePolyline strokes an open path through pts.
func (s *Surface) StrokePolyline(pts []stardust.Vec2, width float64, c stardust.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	s.dc.ClearPath()
	s.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.SetLineWidth(width)
	s.record(s.dc.Stroke())
}

// FillCircle fills a circle. Non-positive radii draw nothing.
func (s *Surface) FillCircle(x, y, r float64, c stardust.Color) {
	if r <= 0 {
		return
	}
	s.dc.ClearPath()
	s.dc.DrawCircle(x, y, r)
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.record(s.dc.Fill())
}

func (s *Surface) record(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns and resets the first error reported by the rasterizer since
// the last call.
func (s *Surface) Err() error {
	err := s.err
	s.err = nil
	return err
}

// Image returns a copy of the current pixels.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the current pixels as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (s *Surface) Close() error {
	return s.dc.Close()
}

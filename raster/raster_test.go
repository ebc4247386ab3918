package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/vanillamoon/stardust"
)

func TestNewInvalidDimensions(t *testing.T) {
	for _, d := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := New(d[0], d[1]); err == nil {
			t.Errorf("New(%d, %d) succeeded", d[0], d[1])
		}
	}
}

func TestSizeAndResize(t *testing.T) {
	s, err := New(64, 32)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if w, h := s.Size(); w != 64 || h != 32 {
		t.Errorf("Size = %dx%d, want 64x32", w, h)
	}
	if err := s.Resize(20, 10); err != nil {
		t.Fatal(err)
	}
	if w, h := s.Size(); w != 20 || h != 10 {
		t.Errorf("Size after Resize = %dx%d, want 20x10", w, h)
	}
}

func TestClearPaintsBackground(t *testing.T) {
	s, err := New(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	s.Background = stardust.Color{R: 0, G: 0, B: 1, A: 1}
	s.Clear()
	r, g, b, a := s.Image().At(4, 4).RGBA()
	if r>>8 > 2 || g>>8 > 2 || b>>8 < 253 || a>>8 < 253 {
		t.Errorf("pixel = %d,%d,%d,%d, want opaque blue", r>>8, g>>8, b>>8, a>>8)
	}
}

func TestFillCircleCoversCenter(t *testing.T) {
	s, err := New(40, 40)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	s.Background = stardust.Color{A: 1}
	s.Clear()
	s.FillCircle(20, 20, 8, stardust.Color{R: 1, A: 1})
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	img := s.Image()
	if r, _, _, _ := img.At(20, 20).RGBA(); r>>8 < 250 {
		t.Errorf("center red = %d, want ~255", r>>8)
	}
	if r, _, _, _ := img.At(2, 2).RGBA(); r>>8 > 2 {
		t.Errorf("corner red = %d, want 0", r>>8)
	}
}

func TestDegenerateCallsDrawNothing(t *testing.T) {
	s, err := New(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	s.Clear()
	s.FillCircle(5, 5, 0, stardust.ColorWhite)
	s.StrokePolyline([]stardust.Vec2{{X: 1, Y: 1}}, 2, stardust.ColorWhite)
	s.StrokePolyline([]stardust.Vec2{{X: 1, Y: 1}, {X: 9, Y: 9}}, 0, stardust.ColorWhite)
	if _, _, _, a := s.Image().At(5, 5).RGBA(); a != 0 {
		t.Errorf("alpha = %d, want 0", a)
	}
}

func TestEncodePNG(t *testing.T) {
	s, err := New(12, 6)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	s.StrokePolyline([]stardust.Vec2{{X: 0, Y: 3}, {X: 12, Y: 3}}, 2, stardust.ColorWhite)
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 6 {
		t.Errorf("bounds = %v, want 12x6", b)
	}
}

package stardust

import (
	"errors"
	"testing"
)

func TestTeeForwards(t *testing.T) {
	a, b := newRecordSurface(10, 20), newRecordSurface(30, 40)
	s := Tee(a, b)

	if w, h := s.Size(); w != 10 || h != 20 {
		t.Errorf("Size = %dx%d, want first surface 10x20", w, h)
	}
	s.Clear()
	s.StrokePolyline([]Vec2{{0, 0}, {1, 1}}, 2, ColorWhite)
	s.FillCircle(1, 2, 3, ColorWhite)
	for name, r := range map[string]*recordSurface{"a": a, "b": b} {
		if r.clears != 1 || len(r.polylines) != 1 || len(r.circles) != 1 {
			t.Errorf("%s: clears=%d polylines=%d circles=%d, want 1 each",
				name, r.clears, len(r.polylines), len(r.circles))
		}
	}

	if err := s.Resize(64, 48); err != nil {
		t.Fatal(err)
	}
	if w, h := b.Size(); w != 64 || h != 48 {
		t.Errorf("b Size = %dx%d, want 64x48", w, h)
	}
}

func TestTeeResizeStopsAtError(t *testing.T) {
	a, b := newRecordSurface(1, 1), newRecordSurface(1, 1)
	a.resizeErr = errors.New("nope")
	if err := Tee(a, b).Resize(5, 5); err == nil {
		t.Fatal("expected error")
	}
	if w, _ := b.Size(); w != 1 {
		t.Error("second surface resized after the first failed")
	}
}

func TestTeeEmpty(t *testing.T) {
	s := Tee()
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("Size = %dx%d, want 0x0", w, h)
	}
	s.Clear()
}

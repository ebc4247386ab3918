package stardust

import (
	"math"
	"testing"
)

func TestRibbonOffset(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name     string
		index    int
		y, t, v  float64
		wantSin  float64
		wantAmpl float64
	}{
		{"rest", 0, 0, 0, 0, 0, 40},
		{"index phase", 1, 0, 0, 0, 1, 40},
		{"time phase", 0, 0, 0.5, 0, 0.5, 40},
		{"height phase", 0, 200, 0, 0, 1, 40},
		{"velocity widens", 2, 100, 0.25, 2, 2.75, 80},
		{"negative velocity widens", 2, 100, 0.25, -2, 2.75, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RibbonOffset(&cfg, tt.index, tt.y, tt.t, tt.v)
			assertNear(t, "offset", got, math.Sin(tt.wantSin)*tt.wantAmpl)
		})
	}
}

func TestRibbonPoints(t *testing.T) {
	cfg := DefaultConfig()
	var f ribbonField
	pts := f.points(&cfg, 2, 600, 95, 0, 0)
	// ceil(95/10)+1 samples, the last clamped to the bottom edge.
	if len(pts) != 11 {
		t.Fatalf("len = %d, want 11", len(pts))
	}
	assertNear(t, "first Y", pts[0].Y, 0)
	assertNear(t, "second Y", pts[1].Y, 10)
	assertNear(t, "last Y", pts[10].Y, 95)

	base := 600.0 * 3 / 6
	for i, p := range pts {
		want := base + RibbonOffset(&cfg, 2, p.Y, 0, 0)
		if math.Abs(p.X-want) > epsilon {
			t.Errorf("pts[%d].X = %v, want %v", i, p.X, want)
		}
	}
}

func TestRibbonPointsReusesBuffer(t *testing.T) {
	cfg := DefaultConfig()
	var f ribbonField
	a := f.points(&cfg, 0, 100, 100, 0, 0)
	b := f.points(&cfg, 1, 100, 50, 0, 0)
	if &a[0] != &b[0] {
		t.Error("points should reuse the buffer when it is large enough")
	}
}

func TestRibbonDrawSkipsEmptySurface(t *testing.T) {
	cfg := DefaultConfig()
	var f ribbonField
	s := newRecordSurface(0, 100)
	f.draw(s, &cfg, 0, 0)
	if len(s.polylines) != 0 {
		t.Errorf("polylines = %d on a zero-width surface", len(s.polylines))
	}

	s = newRecordSurface(300, 200)
	f.draw(s, &cfg, 1, 3)
	if len(s.polylines) != cfg.RibbonCount {
		t.Fatalf("polylines = %d, want %d", len(s.polylines), cfg.RibbonCount)
	}
	for i, op := range s.polylines {
		if op.width != cfg.RibbonWidth || op.color != cfg.RibbonColor {
			t.Errorf("ribbon %d stroked with %v %+v", i, op.width, op.color)
		}
	}
}

package stardust

import (
	"math"
	"testing"
)

func TestMoonCursorSnapsOnFirstTarget(t *testing.T) {
	c := NewMoonCursor(60)
	if c.Visible {
		t.Fatal("cursor visible before any target")
	}
	c.SetTarget(120, 80)
	x, y := c.Position()
	if !c.Visible || x != 120 || y != 80 {
		t.Errorf("Position = (%v, %v) visible=%v, want (120, 80) visible", x, y, c.Visible)
	}
}

func TestMoonCursorFollowsTarget(t *testing.T) {
	c := NewMoonCursor(60)
	c.SetTarget(0, 0)
	c.SetTarget(200, -100)

	x, y := c.Update()
	if !(x > 0 && x < 200) || !(y < 0 && y > -100) {
		t.Errorf("after one frame at (%v, %v), want strictly between start and target", x, y)
	}

	// Damping ratio is just above 1, so the cursor settles without
	// overshooting.
	for i := 0; i < 300; i++ {
		x, y = c.Update()
		if x > 200+1e-6 {
			t.Fatalf("frame %d overshot: x = %v", i, x)
		}
	}
	if math.Abs(x-200) > 0.5 || math.Abs(y+100) > 0.5 {
		t.Errorf("settled at (%v, %v), want near (200, -100)", x, y)
	}
}

func TestMoonCursorIgnoresNonFinite(t *testing.T) {
	c := NewMoonCursor(0)
	c.SetTarget(math.NaN(), 0)
	if c.Visible {
		t.Error("NaN target made the cursor visible")
	}
}

func TestMoonCursorDraw(t *testing.T) {
	c := NewMoonCursor(60)
	s := newRecordSurface(100, 100)
	c.Draw(s)
	if len(s.circles) != 0 {
		t.Fatalf("hidden cursor drew %d circles", len(s.circles))
	}
	c.SetTarget(50, 50)
	c.Draw(s)
	if len(s.circles) != 2 {
		t.Fatalf("circles = %d, want halo and disc", len(s.circles))
	}
	assertNear(t, "disc radius", s.circles[1].r, c.Radius)
	if s.circles[0].r <= s.circles[1].r {
		t.Error("halo should be drawn first and larger than the disc")
	}
}

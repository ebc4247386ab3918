package stardust

import (
	"math"
	"testing"
)

func TestCarouselFront(t *testing.T) {
	c := NewCarousel(len(Projects), 300)
	tests := []struct {
		rotation float64
		want     int
	}{
		{0, 0},
		{-60, 1},
		{-120, 2},
		{180, 3},
		{60, 5},
		{720, 0},
		{-350, 0},
		{-40, 1},
	}
	for _, tt := range tests {
		if got := c.Front(tt.rotation); got != tt.want {
			t.Errorf("Front(%v) = %d, want %d", tt.rotation, got, tt.want)
		}
	}
}

func TestCarouselPlace(t *testing.T) {
	c := NewCarousel(6, 300)
	p := c.Place(0, nil)
	if len(p) != 6 {
		t.Fatalf("len = %d, want 6", len(p))
	}
	for i := 1; i < len(p); i++ {
		if p[i].Depth < p[i-1].Depth {
			t.Fatalf("not sorted back to front: %+v", p)
		}
	}
	for _, pl := range p {
		if pl.Angle < 0 || pl.Angle >= 360 {
			t.Errorf("panel %d angle %v out of [0, 360)", pl.Index, pl.Angle)
		}
	}

	back, front := p[0], p[5]
	if back.Index != 3 || front.Index != 0 {
		t.Fatalf("back = %d, front = %d, want 3, 0", back.Index, front.Index)
	}
	assertNear(t, "front scale", front.Scale, 1)
	assertNear(t, "front alpha", front.Alpha, 1)
	assertNear(t, "front offset", front.OffsetX, 0)
	assertNear(t, "back scale", back.Scale, 0.55)
	assertNear(t, "back alpha", back.Alpha, 0.25)
	if math.Abs(back.OffsetX) > 1e-9 {
		t.Errorf("back offset = %v, want 0", back.OffsetX)
	}

	for _, pl := range p {
		if pl.Index == 1 {
			assertNear(t, "panel 1 offset", pl.OffsetX, 300*math.Sin(math.Pi/3))
			assertNear(t, "panel 1 facing", pl.Facing, 0.5)
		}
	}
}

func TestCarouselPlaceReusesBuffer(t *testing.T) {
	c := NewCarousel(4, 100)
	buf := make([]PanelPlacement, 0, 8)
	p := c.Place(10, buf)
	if &p[0] != &buf[:1][0] {
		t.Error("Place allocated despite sufficient capacity")
	}
}

func TestCarouselDegenerate(t *testing.T) {
	if got := (Carousel{}).Front(0); got != -1 {
		t.Errorf("empty carousel Front = %d, want -1", got)
	}
	if p := NewCarousel(6, 100).Place(math.NaN(), nil); len(p) != 0 {
		t.Errorf("Place(NaN) = %d panels, want 0", len(p))
	}
}

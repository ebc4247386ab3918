package stardust

import (
	"cmp"
	"math"
	"slices"
)

// Project is one entry of the studio's video grid.
type Project struct {
	ID    int
	Title string
	Video string
}

// Projects is the Vanilla Moon showreel.
var Projects = []Project{
	{ID: 1, Title: "Project One", Video: "/videos/video1.mp4"},
	{ID: 2, Title: "Project Two", Video: "/videos/video2.mp4"},
	{ID: 3, Title: "Project Three", Video: "/videos/video3.mp4"},
	{ID: 4, Title: "Project Four", Video: "/videos/video4.mp4"},
	{ID: 5, Title: "Project Five", Video: "/videos/video5.mp4"},
	{ID: 6, Title: "Project Six", Video: "/videos/video6.mp4"},
}

// PanelPlacement is where a carousel panel lands for a given rotation.
type PanelPlacement struct {
	Index int
	// Angle is the panel's angle around the vertical axis, in degrees,
	// normalized to [0, 360).
	Angle float64
	// OffsetX is the horizontal offset of the panel center from the axis.
	OffsetX float64
	// Depth is cos(angle): 1 facing the viewer, -1 directly behind.
	Depth float64
	// Scale is the perspective scale, 1 at the front.
	Scale float64
	// Facing is |cos(angle)|, the horizontal foreshortening of the panel.
	Facing float64
	// Alpha fades panels toward the back.
	Alpha float64
}

// Carousel arranges Count panels evenly on a ring of Radius pixels around a
// vertical axis. It is driven by Animator's rotation.
type Carousel struct {
	Count  int
	Radius float64
	// MinScale and MinAlpha apply to the panel directly behind the axis.
	MinScale float64
	MinAlpha float64
}

// NewCarousel creates a carousel of count panels.
func NewCarousel(count int, radius float64) Carousel {
	return Carousel{Count: count, Radius: radius, MinScale: 0.55, MinAlpha: 0.25}
}

// Place computes panel placements for rotation (degrees), sorted back to
// front so they can be drawn in order. buf is reused when large enough.
func (c Carousel) Place(rotation float64, buf []PanelPlacement) []PanelPlacement {
	buf = buf[:0]
	if c.Count <= 0 || !finite(rotation) {
		return buf
	}
	spacing := 360 / float64(c.Count)
	for i := 0; i < c.Count; i++ {
		deg := math.Mod(rotation+float64(i)*spacing, 360)
		if deg < 0 {
			deg += 360
		}
		rad := deg * math.Pi / 180
		depth := math.Cos(rad)
		front := (depth + 1) / 2 // 0 behind, 1 in front
		buf = append(buf, PanelPlacement{
			Index:   i,
			Angle:   deg,
			OffsetX: math.Sin(rad) * c.Radius,
			Depth:   depth,
			Scale:   lerp(c.MinScale, 1, front),
			Facing:  math.Abs(depth),
			Alpha:   lerp(c.MinAlpha, 1, front),
		})
	}
	slices.SortStableFunc(buf, func(a, b PanelPlacement) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
	return buf
}

// Front returns the index of the panel closest to the viewer.
func (c Carousel) Front(rotation float64) int {
	var buf [16]PanelPlacement
	p := c.Place(rotation, buf[:0])
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1].Index
}

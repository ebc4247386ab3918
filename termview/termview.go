// Package termview renders stardust frames onto a terminal through tcell.
// Each terminal cell stands for a CellWidth x CellHeight block of pixels;
// draw calls composite into a per-cell color buffer that Flush paints as
// glyphs of increasing weight.
package termview

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/vanillamoon/stardust"
)

// Pixel size of one terminal cell.
const (
	CellWidth  = 8
	CellHeight = 16
)

// glyphs by coverage, lightest first.
var glyphs = []rune{' ', '·', '∙', '•', '●'}

type cell struct {
	r, g, b float64 // straight color
	a       float64 // coverage
}

// Surface is a stardust.Surface over a terminal cell grid.
type Surface struct {
	cols, rows int
	cells      []cell
}

var _ stardust.Surface = (*Surface)(nil)

// New creates a surface for a cols x rows terminal.
func New(cols, rows int) (*Surface, error) {
	s := &Surface{}
	if err := s.Resize(cols*CellWidth, rows*CellHeight); err != nil {
		return nil, err
	}
	return s, nil
}

// Size returns the pixel size represented by the grid.
func (s *Surface) Size() (int, int) {
	return s.cols * CellWidth, s.rows * CellHeight
}

// Grid returns the grid size in cells.
func (s *Surface) Grid() (cols, rows int) {
	return s.cols, s.rows
}

// Resize sets the grid to cover w x h pixels, rounding down to whole cells
// but keeping at least one.
func (s *Surface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resize terminal surface: invalid dimensions %dx%d", w, h)
	}
	s.cols = max(w/CellWidth, 1)
	s.rows = max(h/CellHeight, 1)
	n := s.cols * s.rows
	if cap(s.cells) < n {
		s.cells = make([]cell, n)
	}
	s.cells = s.cells[:n]
	s.Clear()
	return nil
}

// Clear resets every cell.
func (s *Surface) Clear() {
	clear(s.cells)
}

// StrokePolyline samples each segment at half-cell intervals.
func (s *Surface) StrokePolyline(pts []stardust.Vec2, _ float64, c stardust.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		n := int(math.Ceil(math.Max(math.Abs(dx)/(CellWidth/2), math.Abs(dy)/(CellHeight/2))))
		if n < 1 {
			n = 1
		}
		for j := 0; j <= n; j++ {
			t := float64(j) / float64(n)
			s.blend(a.X+dx*t, a.Y+dy*t, c)
		}
	}
}

// FillCircle paints every cell whose center lies within r of (x, y), and
// always the cell containing the center.
func (s *Surface) FillCircle(x, y, r float64, c stardust.Color) {
	if r <= 0 {
		return
	}
	c0 := int(math.Floor((x - r) / CellWidth))
	c1 := int(math.Floor((x + r) / CellWidth))
	r0 := int(math.Floor((y - r) / CellHeight))
	r1 := int(math.Floor((y + r) / CellHeight))
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cx := (float64(col) + 0.5) * CellWidth
			cy := (float64(row) + 0.5) * CellHeight
			if math.Hypot(cx-x, cy-y) <= r {
				s.blendCell(col, row, c)
			}
		}
	}
	s.blend(x, y, c)
}

func (s *Surface) blend(x, y float64, c stardust.Color) {
	s.blendCell(int(math.Floor(x/CellWidth)), int(math.Floor(y/CellHeight)), c)
}

// blendCell composites c over the cell (source-over).
func (s *Surface) blendCell(col, row int, c stardust.Color) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	a := math.Max(0, math.Min(1, c.A))
	if a == 0 {
		return
	}
	d := &s.cells[row*s.cols+col]
	outA := a + d.a*(1-a)
	d.r = (c.R*a + d.r*d.a*(1-a)) / outA
	d.g = (c.G*a + d.g*d.a*(1-a)) / outA
	d.b = (c.B*a + d.b*d.a*(1-a)) / outA
	d.a = outA
}

// Coverage returns the accumulated alpha of a cell, 0 when out of range.
func (s *Surface) Coverage(col, row int) float64 {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0
	}
	return s.cells[row*s.cols+col].a
}

// Flush paints the grid onto screen. It does not call screen.Show.
func (s *Surface) Flush(screen tcell.Screen, bg tcell.Color) {
	base := tcell.StyleDefault.Background(bg)
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			d := &s.cells[row*s.cols+col]
			g := glyphFor(d.a)
			style := base
			if g != ' ' {
				style = base.Foreground(tcell.NewRGBColor(int32(d.r*255), int32(d.g*255), int32(d.b*255)))
			}
			screen.SetContent(col, row, g, nil, style)
		}
	}
}

// glyphFor maps coverage to a glyph; anything visible gets at least the
// lightest dot.
func glyphFor(a float64) rune {
	if a <= 0.02 {
		return glyphs[0]
	}
	i := 1 + int(a*float64(len(glyphs)-1))
	if i >= len(glyphs) {
		i = len(glyphs) - 1
	}
	return glyphs[i]
}

// Package svgframe records stardust frames as SVG documents using
// ajstarks/svgo. The ribbon background exported this way is resolution
// independent and can be dropped into a web page as-is.
package svgframe

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/vanillamoon/stardust"
)

type opKind uint8

const (
	opPolyline opKind = iota
	opCircle
)

type op struct {
	kind  opKind
	pts   []stardust.Vec2
	x, y  float64
	r     float64
	width float64
	color stardust.Color
}

// Surface is a stardust.Surface that records draw calls since the last Clear
// and encodes them as one SVG document.
type Surface struct {
	w, h int
	ops  []op
	// Background, when opaque enough to see, is emitted as a full-size rect.
	Background stardust.Color
}

var _ stardust.Surface = (*Surface)(nil)

// New creates a w x h recording surface.
func New(w, h int) (*Surface, error) {
	s := &Surface{}
	if err := s.Resize(w, h); err != nil {
		return nil, err
	}
	return s, nil
}

// Size returns the document dimensions.
func (s *Surface) Size() (int, int) { return s.w, s.h }

// Resize changes the document dimensions and drops recorded calls.
func (s *Surface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resize svg surface: invalid dimensions %dx%d", w, h)
	}
	s.w, s.h = w, h
	s.ops = s.ops[:0]
	return nil
}

// Clear drops recorded calls.
func (s *Surface) Clear() { s.ops = s.ops[:0] }

// Len returns the number of recorded draw calls.
func (s *Surface) Len() int { return len(s.ops) }

// StrokePolyline records a stroked path. pts is copied.
func (s *Surface) StrokePolyline(pts []stardust.Vec2, width float64, c stardust.Color) {
	if len(pts) < 2 {
		return
	}
	cp := make([]stardust.Vec2, len(pts))
	copy(cp, pts)
	s.ops = append(s.ops, op{kind: opPolyline, pts: cp, width: width, color: c})
}

// FillCircle records a filled circle.
func (s *Surface) FillCircle(x, y, r float64, c stardust.Color) {
	if r <= 0 {
		return
	}
	s.ops = append(s.ops, op{kind: opCircle, x: x, y: y, r: r, color: c})
}

// Encode writes the recorded frame as an SVG document.
func (s *Surface) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(s.w, s.h)
	if s.Background.A > 0 {
		canvas.Rect(0, 0, s.w, s.h, fillStyle(s.Background))
	}
	for i := range s.ops {
		o := &s.ops[i]
		switch o.kind {
		case opPolyline:
			canvas.Path(pathData(o.pts), strokeStyle(o.color, o.width))
		case opCircle:
			r := int(math.Round(o.r))
			if r < 1 {
				r = 1
			}
			canvas.Circle(int(math.Round(o.x)), int(math.Round(o.y)), r, fillStyle(o.color))
		}
	}
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("encode svg: %w", ew.err)
	}
	return nil
}

// pathData renders pts as an SVG path with one-decimal precision.
func pathData(pts []stardust.Vec2) string {
	var b strings.Builder
	b.Grow(len(pts) * 14)
	for i, p := range pts {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(strconv.FormatFloat(p.X, 'f', 1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.Y, 'f', 1, 64))
	}
	return b.String()
}

func rgb(c stardust.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int {
	return int(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

func fillStyle(c stardust.Color) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f", rgb(c), c.A)
}

func strokeStyle(c stardust.Color, width float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-opacity:%.3f;stroke-width:%.2f", rgb(c), c.A, width)
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

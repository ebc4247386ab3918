package stardust

// Tee returns a Surface that forwards every call to each of surfaces. Size
// reports the first surface. Resize stops at the first error.
func Tee(surfaces ...Surface) Surface {
	return teeSurface(surfaces)
}

type teeSurface []Surface

func (t teeSurface) Size() (int, int) {
	if len(t) == 0 {
		return 0, 0
	}
	return t[0].Size()
}

func (t teeSurface) Resize(w, h int) error {
	for _, s := range t {
		if err := s.Resize(w, h); err != nil {
			return err
		}
	}
	return nil
}

func (t teeSurface) Clear() {
	for _, s := range t {
		s.Clear()
	}
}

func (t teeSurface) StrokePolyline(pts []Vec2, width float64, c Color) {
	for _, s := range t {
		s.StrokePolyline(pts, width, c)
	}
}

func (t teeSurface) FillCircle(x, y, r float64, c Color) {
	for _, s := range t {
		s.FillCircle(x, y, r, c)
	}
}

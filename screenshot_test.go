package stardust

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"release", "release"},
		{"after drag", "after_drag"},
		{"../etc/passwd", ".._etc_passwd"},
		{"v1.2-final", "v1.2-final"},
		{"  ", "unlabeled"},
		{"", "unlabeled"},
		{"lune☾", "lune_"},
	}
	for _, tt := range tests {
		if got := SanitizeLabel(tt.in); got != tt.want {
			t.Errorf("SanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWritePNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.Set(1, 2, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := got.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v, want 4x3", b)
	}
	r, g, b, _ := got.At(1, 2).RGBA()
	if r>>8 != 200 || g>>8 != 100 || b>>8 != 50 {
		t.Errorf("pixel = %d,%d,%d, want 200,100,50", r>>8, g>>8, b>>8)
	}
}

func TestWritePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	if err := WritePNG(path, image.NewRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestToNRGBAUnpremultiplies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 100, G: 50, B: 0, A: 128})
	src.SetRGBA(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	dst := toNRGBA(src)

	got := dst.NRGBAAt(0, 0)
	if got.A != 128 || got.R < 198 || got.R > 200 || got.G < 99 || got.G > 100 {
		t.Errorf("half-transparent pixel = %+v, want ~{199 99 0 128}", got)
	}
	if got := dst.NRGBAAt(1, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("opaque pixel = %+v, want unchanged", got)
	}
}

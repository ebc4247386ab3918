package stardust

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshot queues a labeled capture of the next composited frame. Files are
// written to Game.SnapshotDir as <time>_<seq>_<label>.png once Draw has
// finished. Safe to call from Update or Draw.
func (g *Game) Snapshot(label string) {
	g.snapshotQueue = append(g.snapshotQueue, label)
}

// flushSnapshots writes every queued snapshot of screen. Called last in Draw.
func (g *Game) flushSnapshots(screen *ebiten.Image) {
	if len(g.snapshotQueue) == 0 {
		return
	}
	labels := g.snapshotQueue
	g.snapshotQueue = g.snapshotQueue[:0]

	dir := g.SnapshotDir
	if dir == "" {
		dir = "snapshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[stardust] snapshot: %v\n", err)
		return
	}

	img := readScreen(screen)
	prefix := time.Now().Format("20060102_150405")
	for _, label := range labels {
		g.snapshotSeq++
		name := fmt.Sprintf("%s_%03d_%s.png", prefix, g.snapshotSeq, SanitizeLabel(label))
		if err := WritePNG(filepath.Join(dir, name), img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[stardust] snapshot: %v\n", err)
		}
	}
}

// readScreen copies screen's premultiplied pixels into a straight-alpha image.
func readScreen(screen *ebiten.Image) *image.NRGBA {
	b := screen.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(rgba.Pix)
	return toNRGBA(rgba)
}

// toNRGBA converts premultiplied src to straight alpha.
func toNRGBA(src *image.RGBA) *image.NRGBA {
	dst := image.NewNRGBA(src.Rect)
	draw.Draw(dst, dst.Rect, src, src.Rect.Min, draw.Src)
	return dst
}

// WritePNG encodes img to a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return f.Close()
}

// SanitizeLabel makes label safe to embed in a file name: anything other
// than ASCII letters, digits, '-' and '.' becomes '_'. Blank labels become
// "unlabeled".
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, label)
}

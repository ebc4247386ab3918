package stardust

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// fpsCounter caches the FPS/TPS readout and refreshes it every ~0.5 seconds.
type fpsCounter struct {
	elapsed float64
	text    string
}

func (f *fpsCounter) update(dt float64) {
	f.elapsed += dt
	if f.text != "" && f.elapsed < 0.5 {
		return
	}
	f.elapsed = 0
	f.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

// draw prints the readout on a semi-transparent backing for readability.
func (f *fpsCounter) draw(screen *ebiten.Image) {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	vector.DrawFilledRect(screen, 0, 0, 100, 32, color.RGBA{0, 0, 0, 128}, false)
	ebitenutil.DebugPrint(screen, f.text)
}

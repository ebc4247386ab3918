// Command stardust-term previews the stardust animator in a terminal. Drag
// with the mouse to spin the field; q or Esc quits.
package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/vanillamoon/stardust"
	"github.com/vanillamoon/stardust/termview"
)

// flushingClock runs after once per frame, right after the animator ticked.
type flushingClock struct {
	stardust.TickerClock
	after func()
}

func (c flushingClock) Schedule(fn func()) stardust.Handle {
	return c.TickerClock.Schedule(func() {
		fn()
		c.after()
	})
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("Failed to create screen:", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal("Failed to initialize screen:", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	surface, err := termview.New(cols, max(rows-1, 1))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	cfg := stardust.DefaultConfig()
	// Cells are coarse; fewer, wider ribbons read better.
	cfg.RibbonCount = 3
	cfg.ParticleRadius = termview.CellWidth
	// The ticker runs at 30 Hz; scale steps by wall-clock time so motion
	// keeps the pace of a 60 Hz display.
	cfg.FrameScaled = true
	anim, err := stardust.New(cfg, stardust.WithSurface(surface))
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	var mu sync.Mutex // guards surface cells between resize and flush
	flush := func() {
		mu.Lock()
		defer mu.Unlock()
		surface.Flush(screen, tcell.ColorBlack)
		_, h := surface.Grid()
		drawStatus(screen, h, anim)
		screen.Show()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := flushingClock{
		TickerClock: stardust.TickerClock{Interval: time.Second / 30, Context: ctx},
		after:       flush,
	}
	if err := anim.Run(clock); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	defer anim.Dispose()

	pressed := false
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			mu.Lock()
			if err := anim.Resize(w*termview.CellWidth, max(h-1, 1)*termview.CellHeight); err != nil {
				log.Printf("resize: %v", err)
			}
			mu.Unlock()
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return
			}
		case *tcell.EventMouse:
			cx, cy := ev.Position()
			x := float64(cx*termview.CellWidth + termview.CellWidth/2)
			y := float64(cy*termview.CellHeight + termview.CellHeight/2)
			down := ev.Buttons()&tcell.Button1 != 0
			switch {
			case down && !pressed:
				anim.DragStart(x)
			case down && pressed:
				anim.DragMove(x, y)
			case !down && pressed:
				anim.DragEnd()
			}
			pressed = down
		case nil:
			return
		}
	}
}

// drawStatus writes the rotation readout on the last terminal row.
func drawStatus(screen tcell.Screen, row int, anim *stardust.Animator) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	msg := fmt.Sprintf(" VANILLA MOON  rotation %7.1f°  velocity %6.2f  stardust %4d  [q quits]",
		anim.Rotation(), anim.Velocity(), anim.ParticleCount())
	w, _ := screen.Size()
	i := 0
	for _, r := range msg {
		if i >= w {
			break
		}
		screen.SetContent(i, row, r, nil, style)
		i++
	}
	for ; i < w; i++ {
		screen.SetContent(i, row, ' ', nil, style)
	}
}

package stardust

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameConfig configures NewGame and RunGame.
type GameConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// MoonCursor hides the system cursor and draws a spring-following moon.
	MoonCursor bool
	// ClearColor fills the screen before anything else is drawn.
	ClearColor Color
	// Debug enables the animator's per-frame stderr stats.
	Debug bool
}

// Game is an ebiten.Game that hosts an Animator. It is also the Scheduler
// the animator runs on: every Update is one display-synchronized frame.
//
// The animator draws onto an offscreen EbitenSurface, which Draw composites
// between the background and overlay hooks.
type Game struct {
	anim    *Animator
	surface *EbitenSurface
	pointer *PointerTracker
	cursor  *MoonCursor
	runner  *ScriptRunner

	frames []*gameFrame

	updateFunc     func() error
	backgroundFunc func(screen *ebiten.Image)
	overlayFunc    func(screen *ebiten.Image)

	cfg GameConfig
	fps fpsCounter
	w   int
	h   int

	// SnapshotDir is where Snapshot writes PNGs. Defaults to "snapshots".
	SnapshotDir   string
	snapshotQueue []string
	snapshotSeq   int
}

type gameFrame struct {
	fn      func()
	stopped bool
}

func (f *gameFrame) Stop() { f.stopped = true }

// NewGame creates a Game around anim, attaching a fresh offscreen surface of
// cfg.Width x cfg.Height.
func NewGame(anim *Animator, cfg GameConfig) (*Game, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	surface, err := NewEbitenSurface(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	anim.Attach(surface)
	anim.SetDebugMode(cfg.Debug)

	g := &Game{
		anim:    anim,
		surface: surface,
		pointer: NewPointerTracker(),
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
	}
	if cfg.MoonCursor {
		g.cursor = NewMoonCursor(ebiten.TPS())
	}
	return g, nil
}

// Animator returns the hosted animator.
func (g *Game) Animator() *Animator { return g.anim }

// Pointer returns the input tracker feeding the animator.
func (g *Game) Pointer() *PointerTracker { return g.pointer }

// Cursor returns the moon cursor, or nil when disabled.
func (g *Game) Cursor() *MoonCursor { return g.cursor }

// Size returns the current layout size.
func (g *Game) Size() (w, h int) { return g.w, g.h }

// SetUpdateFunc sets a callback run at the end of every Update.
func (g *Game) SetUpdateFunc(fn func() error) { g.updateFunc = fn }

// SetBackgroundFunc sets a callback that draws beneath the animator.
func (g *Game) SetBackgroundFunc(fn func(screen *ebiten.Image)) { g.backgroundFunc = fn }

// SetOverlayFunc sets a callback that draws above the animator and below the
// cursor.
func (g *Game) SetOverlayFunc(fn func(screen *ebiten.Image)) { g.overlayFunc = fn }

// SetScriptRunner attaches a script that is stepped before input each frame.
func (g *Game) SetScriptRunner(r *ScriptRunner) { g.runner = r }

// Schedule implements Scheduler. fn runs once per Update until stopped.
func (g *Game) Schedule(fn func()) Handle {
	f := &gameFrame{fn: fn}
	g.frames = append(g.frames, f)
	return f
}

// Resize changes the window size; the animator follows on the next Layout.
func (g *Game) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resize game: invalid dimensions %dx%d", w, h)
	}
	ebiten.SetWindowSize(w, h)
	return nil
}

// Update processes input, steps the cursor spring and runs scheduled frames.
func (g *Game) Update() error {
	if g.runner != nil {
		g.runner.Step(g)
	}
	g.pointer.Update(g.anim)

	if g.cursor != nil {
		if x, y, ok := g.pointer.Position(); ok {
			g.cursor.SetTarget(x, y)
		}
		g.cursor.Update()
	}

	live := g.frames[:0]
	for _, f := range g.frames {
		if f.stopped {
			continue
		}
		f.fn()
		if !f.stopped {
			live = append(live, f)
		}
	}
	g.frames = live

	g.fps.update(1.0 / float64(ebiten.TPS()))

	if g.updateFunc != nil {
		return g.updateFunc()
	}
	return nil
}

// Draw composites background, animator surface, overlay, cursor and FPS.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor.ToRGBA())
	if g.backgroundFunc != nil {
		g.backgroundFunc(screen)
	}
	screen.DrawImage(g.surface.Image(), nil)
	if g.overlayFunc != nil {
		g.overlayFunc(screen)
	}
	if g.cursor != nil {
		g.cursor.Draw(ScreenSurface(screen))
	}
	if g.cfg.ShowFPS {
		g.fps.draw(screen)
	}
	g.flushSnapshots(screen)
}

// Layout tracks the outside size 1:1 and resizes the animator's surface when
// it changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		if err := g.anim.Resize(outsideWidth, outsideHeight); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[stardust] layout: %v\n", err)
		} else {
			g.w, g.h = outsideWidth, outsideHeight
		}
	}
	return g.w, g.h
}

// ScreenSurface wraps an existing image (typically the screen passed to
// Draw) as a Surface. Resize fails on it; Clear clears the image.
func ScreenSurface(img *ebiten.Image) *EbitenSurface {
	b := img.Bounds()
	return &EbitenSurface{img: img, w: b.Dx(), h: b.Dy(), borrowed: true}
}

// RunGame opens a window and runs g until the window closes. The animator is
// started on g's frame loop and disposed when RunGame returns.
func RunGame(g *Game) error {
	ebiten.SetWindowSize(g.w, g.h)
	if g.cfg.Title != "" {
		ebiten.SetWindowTitle(g.cfg.Title)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if g.cursor != nil {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	if err := g.anim.Run(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	defer g.anim.Dispose()
	return ebiten.RunGame(g)
}

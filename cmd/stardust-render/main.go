// Command stardust-render plays a JSON pointer script against an animator
// without a window and writes the frames requested by "snapshot" steps as
// PNG (and optionally SVG) files.
//
//	stardust-render --script session.json --out frames --svg
package main

import (
	"bytes"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vanillamoon/stardust"
	"github.com/vanillamoon/stardust/raster"
	"github.com/vanillamoon/stardust/svgframe"
)

// defaultScript sweeps across the surface, lets the rotation coast and
// captures the result.
const defaultScript = `{
	"steps": [
		{"action": "drag", "fromX": 200, "fromY": 360, "toX": 1080, "toY": 300, "frames": 24},
		{"action": "snapshot", "label": "release"},
		{"action": "wait", "frames": 30},
		{"action": "snapshot", "label": "coast"}
	]
}`

var opts struct {
	script    string
	config    string
	out       string
	width     int
	height    int
	seed      uint64
	svg       bool
	debug     bool
	maxFrames int
}

var rootCmd = &cobra.Command{
	Use:   "stardust-render",
	Short: "render a scripted stardust session to image files",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.script, "script", "", "JSON script to play (default: a built-in sweep)")
	f.StringVar(&opts.config, "config", "", "JSON animator config layered over the defaults")
	f.StringVarP(&opts.out, "out", "o", "frames", "output directory")
	f.IntVar(&opts.width, "width", 1280, "surface width in pixels")
	f.IntVar(&opts.height, "height", 720, "surface height in pixels")
	f.Uint64Var(&opts.seed, "seed", 1, "random seed for particle colors and velocities")
	f.BoolVar(&opts.svg, "svg", false, "also write an SVG for every snapshot")
	f.BoolVar(&opts.debug, "debug", false, "log per-frame stats to stderr")
	f.IntVar(&opts.maxFrames, "max-frames", 36000, "abort after this many frames")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// host is the headless ScriptHost: it owns the surfaces and writes queued
// snapshots after each frame.
type host struct {
	anim    *stardust.Animator
	pointer *stardust.PointerTracker
	png     *raster.Surface
	svg     *svgframe.Surface
	queue   []string
	frame   int
	written int
}

func (h *host) Pointer() *stardust.PointerTracker { return h.pointer }

func (h *host) Snapshot(label string) { h.queue = append(h.queue, label) }

func (h *host) Resize(w, ht int) error { return h.anim.Resize(w, ht) }

func (h *host) flush() error {
	defer func() { h.queue = h.queue[:0] }()
	if err := h.png.Err(); err != nil {
		return fmt.Errorf("frame %d: %w", h.frame, err)
	}
	for _, label := range h.queue {
		base := filepath.Join(opts.out, fmt.Sprintf("%05d_%s", h.frame, stardust.SanitizeLabel(label)))
		if err := stardust.WritePNG(base+".png", h.png.Image()); err != nil {
			return err
		}
		if h.svg != nil {
			var buf bytes.Buffer
			if err := h.svg.Encode(&buf); err != nil {
				return err
			}
			if err := os.WriteFile(base+".svg", buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s.svg: %w", base, err)
			}
		}
		h.written++
		log.Printf("wrote %s (rotation %.2f°, %d particles)", base, h.anim.Rotation(), h.anim.ParticleCount())
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg := stardust.DefaultConfig()
	if opts.config != "" {
		data, err := os.ReadFile(opts.config)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		if cfg, err = stardust.LoadConfig(data); err != nil {
			return err
		}
	}

	var runner *stardust.ScriptRunner
	var err error
	if opts.script != "" {
		runner, err = stardust.LoadScriptFile(opts.script)
	} else {
		runner, err = stardust.LoadScript([]byte(defaultScript))
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	png, err := raster.New(opts.width, opts.height)
	if err != nil {
		return err
	}
	defer png.Close()
	png.Background = stardust.Color{A: 1}

	h := &host{pointer: stardust.NewPointerTracker(), png: png}
	surface := stardust.Surface(png)
	if opts.svg {
		if h.svg, err = svgframe.New(opts.width, opts.height); err != nil {
			return err
		}
		h.svg.Background = png.Background
		surface = stardust.Tee(png, h.svg)
	}

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	h.anim, err = stardust.New(cfg, stardust.WithRand(rng), stardust.WithSurface(surface))
	if err != nil {
		return err
	}
	defer h.anim.Dispose()
	h.anim.SetDebugMode(opts.debug)

	var clock stardust.ManualClock
	if err := h.anim.Run(&clock); err != nil {
		return err
	}

	for !runner.Done() {
		if h.frame >= opts.maxFrames {
			return fmt.Errorf("script did not finish within %d frames", opts.maxFrames)
		}
		runner.Step(h)
		h.pointer.UpdateInjected(h.anim)
		clock.Step(1)
		h.frame++
		if err := h.flush(); err != nil {
			return err
		}
	}

	if h.written == 0 {
		h.Snapshot("final")
		if err := h.flush(); err != nil {
			return err
		}
	}
	return nil
}

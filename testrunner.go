package stardust

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
}

// script is the top-level JSON structure of a script file.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptHost is driven by a ScriptRunner: Game for live sessions, the
// headless renderer for offline ones.
type ScriptHost interface {
	Pointer() *PointerTracker
	Snapshot(label string)
	Resize(w, h int) error
}

// ScriptRunner sequences injected pointer gestures, resizes and snapshots
// across frames. Actions: press, move, release, drag, wait, resize, snapshot.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "wait", "resize", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// LoadScriptFile reads and parses a JSON script file.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has executed and its injections drained.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Call it once per frame before the
// host processes input.
func (r *ScriptRunner) Step(h ScriptHost) {
	if r.done {
		return
	}
	p := h.Pointer()
	// Wait for pending injections to drain before advancing.
	if p.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		p.InjectPress(st.X, st.Y)
	case "move":
		p.InjectMove(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "drag":
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "resize":
		if err := h.Resize(st.Width, st.Height); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[stardust] script: %v\n", err)
		}
	case "snapshot":
		h.Snapshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && p.Pending() == 0 {
		r.done = true
	}
}

package stardust

// State is the drag state of an Animator.
type State uint8

const (
	StateIdle     State = iota // no pointer held; velocity coasts and decays
	StateDragging              // pointer held; velocity follows horizontal delta
)

// String returns "idle" or "dragging".
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// dragState tracks pointer interaction. velocity is only assigned from input
// while dragging; once dragging ends it is only ever decayed.
type dragState struct {
	dragging bool
	lastX    float64
	velocity float64
}

func (d *dragState) state() State {
	if d.dragging {
		return StateDragging
	}
	return StateIdle
}

// start anchors subsequent moves at x.
func (d *dragState) start(x float64) {
	d.lastX = x
	d.dragging = true
}

// move sets velocity from the horizontal delta against the last anchor and
// returns that delta. ok is false when not dragging.
func (d *dragState) move(x, gain float64) (delta float64, ok bool) {
	if !d.dragging {
		return 0, false
	}
	delta = x - d.lastX
	d.velocity = delta * gain
	d.lastX = x
	return delta, true
}

func (d *dragState) end() {
	d.dragging = false
}

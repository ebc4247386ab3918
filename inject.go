package stardust

// syntheticPointerEvent represents a single injected pointer event in
// surface-local pixel coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed on the
// next Update.
func (t *PointerTracker) InjectPress(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move at (x, y) with the button held down. Use
// it between InjectPress and InjectRelease to simulate a drag.
func (t *PointerTracker) InjectMove(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (t *PointerTracker) InjectRelease(x, y float64) {
	t.injectQueue = append(t.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2 (press + release).
func (t *PointerTracker) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	t.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		f := float64(i) / float64(steps+1)
		t.InjectMove(lerp(fromX, toX, f), lerp(fromY, toY, f))
	}
	t.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic events.
func (t *PointerTracker) Pending() int {
	return len(t.injectQueue)
}

// processInjectedInput pops one queued event and feeds it through the mouse
// pointer's state machine. Returns true if an event was consumed.
func (t *PointerTracker) processInjectedInput(target DragTarget) bool {
	if len(t.injectQueue) == 0 {
		return false
	}
	evt := t.injectQueue[0]
	copy(t.injectQueue, t.injectQueue[1:])
	t.injectQueue = t.injectQueue[:len(t.injectQueue)-1]

	t.processPointer(0, evt.x, evt.y, evt.pressed, target)
	return true
}

// UpdateInjected processes one queued synthetic event without polling
// hardware input. Headless hosts use it in place of Update.
func (t *PointerTracker) UpdateInjected(target DragTarget) bool {
	return t.processInjectedInput(target)
}

package stardust

import "github.com/hajimehoshi/ebiten/v2"

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// DragTarget receives drag gestures. *Animator implements it.
type DragTarget interface {
	DragStart(x float64)
	DragMove(x, y float64)
	DragEnd()
}

// --- Per-pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// PointerTracker polls Ebitengine mouse and touch input once per frame and
// turns it into drag gestures. Only the first pointer pressed drives the
// target; other pointers are tracked but ignored until it is released.
type PointerTracker struct {
	pointers [maxPointers]pointerState
	active   int // pointer driving the current drag, -1 when none

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	// Last known pointer position, for cursors that follow hover as well
	// as drags.
	posX, posY float64
	posValid   bool

	injectQueue []syntheticPointerEvent
}

// NewPointerTracker creates a tracker with no active drag.
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{active: -1}
}

// Position returns the most recent pointer position. ok is false until any
// pointer has been seen.
func (t *PointerTracker) Position() (x, y float64, ok bool) {
	return t.posX, t.posY, t.posValid
}

// Dragging reports whether a pointer is currently driving a drag.
func (t *PointerTracker) Dragging() bool {
	return t.active >= 0
}

// Update processes one frame of input. A queued synthetic event, if any,
// replaces hardware input for this frame.
func (t *PointerTracker) Update(target DragTarget) {
	if t.processInjectedInput(target) {
		return
	}
	t.processMousePointer(target)
	t.processTouchPointers(target)
}

// processMousePointer handles mouse input (pointer 0).
func (t *PointerTracker) processMousePointer(target DragTarget) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	t.processPointer(0, float64(mx), float64(my), pressed, target)
}

// processTouchPointers handles touch input (pointers 1-9).
func (t *PointerTracker) processTouchPointers(target DragTarget) {
	touchIDs := ebiten.AppendTouchIDs(t.prevTouchIDs[:0])
	t.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := t.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		t.processPointer(slot, float64(tx), float64(ty), true, target)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && !activeSlots[i] {
			ps := &t.pointers[i]
			if ps.down {
				t.processPointer(i, ps.lastX, ps.lastY, false, target)
			}
			t.touchUsed[i] = false
			t.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (t *PointerTracker) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if t.touchUsed[i] && t.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !t.touchUsed[i] {
			t.touchUsed[i] = true
			t.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the press/move/release state machine for one pointer.
func (t *PointerTracker) processPointer(id int, x, y float64, pressed bool, target DragTarget) {
	ps := &t.pointers[id]

	// The mouse reports a position every frame; only let it move the
	// cursor when it actually moved, so an idle mouse doesn't fight touch.
	if id != 0 || !t.posValid || x != ps.lastX || y != ps.lastY || pressed {
		t.posX, t.posY, t.posValid = x, y, true
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		if t.active < 0 {
			t.active = id
			target.DragStart(x)
		}
	case !pressed && ps.down:
		ps.down = false
		if t.active == id {
			t.active = -1
			target.DragEnd()
		}
	case pressed && ps.down:
		if t.active == id && (x != ps.lastX || y != ps.lastY) {
			target.DragMove(x, y)
		}
	}
	ps.lastX = x
	ps.lastY = y
}

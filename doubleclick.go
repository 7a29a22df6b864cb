package controls

// DefaultDoubleClickThreshold is the double-click window in seconds.
const DefaultDoubleClickThreshold = 0.5

// doubleClickTracker detects double clicks on the primary mouse button. A
// pending first click is canceled by pointer movement and expires after
// the threshold.
type doubleClickTracker struct {
	env       *controlEnv
	button    MouseButton
	threshold float64

	state         DoubleClickState
	waiting       bool
	lastClickTime float64

	// moved reports whether the pointer axes changed this frame.
	moved func() bool

	detected listeners[struct{}]
	failed   listeners[DoubleClickState]
}

func (t *doubleClickTracker) update() {
	prev := t.state
	if t.state != DoubleClickWaiting {
		t.state = DoubleClickNone
	}

	// Evaluated every frame so the pointer axes exist before a click is
	// pending.
	moved := t.moved()
	if t.waiting && moved {
		t.waiting = false
		t.state = DoubleClickCanceled
	}

	now := t.env.clock.Now()
	if t.env.source.MouseButtonJustPressed(t.button) {
		if !t.waiting {
			t.lastClickTime = now
			t.waiting = true
			t.state = DoubleClickWaiting
		} else if now <= t.lastClickTime+t.threshold {
			t.waiting = false
			t.state = DoubleClickDetected
		}
	}

	if t.waiting && now > t.lastClickTime+t.threshold {
		t.waiting = false
		t.state = DoubleClickTimedOut
	}

	if prev != t.state {
		t.env.debugf("double click: %s -> %s", prev, t.state)
	}

	switch t.state {
	case DoubleClickDetected:
		t.detected.fire(struct{}{})
		t.env.emit(InputEvent{Type: EventDoubleClick, Button: t.button, DoubleClick: t.state})
	case DoubleClickCanceled, DoubleClickTimedOut:
		t.failed.fire(t.state)
		t.env.emit(InputEvent{Type: EventDoubleClickFailed, Button: t.button, DoubleClick: t.state})
	}
}

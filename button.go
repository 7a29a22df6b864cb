package controls

// ButtonControl turns a polled "is held" sample for one named button into
// an edge/hold state machine:
//
//	Released → OnHold → Holding → OnRelease → Released
//
// OnHold and OnRelease are exactly one frame wide. Create ButtonControls
// through Registry.ButtonControl; the registry refreshes them every frame.
type ButtonControl struct {
	name     string
	env      *controlEnv
	disabled bool

	lastFrameDown    bool
	currentFrameDown bool
	holdTime         float64
	unscaledHoldTime float64
	state            ButtonState

	stateChange listeners[ButtonState]
	valueChange listeners[bool]
	down        listeners[struct{}]
	up          listeners[struct{}]
}

func newButtonControl(name string, env *controlEnv) *ButtonControl {
	return &ButtonControl{name: name, env: env}
}

// Name returns the button name this control samples.
func (b *ButtonControl) Name() string { return b.name }

func (b *ButtonControl) refresh() {
	b.lastFrameDown = b.currentFrameDown
	b.currentFrameDown = !b.disabled && b.env.source.ButtonHeld(b.name)

	prev := b.state
	changed := false
	if b.currentFrameDown != b.lastFrameDown {
		if b.currentFrameDown {
			b.state = ButtonOnHold
		} else {
			b.state = ButtonOnRelease
		}
		changed = true
	} else {
		switch b.state {
		case ButtonOnHold:
			b.state = ButtonHolding
		case ButtonOnRelease:
			b.state = ButtonReleased
		}
	}

	switch b.state {
	case ButtonOnHold:
		b.holdTime = 0
		b.unscaledHoldTime = 0
	case ButtonHolding, ButtonOnRelease:
		b.holdTime += b.env.clock.DeltaTime()
		b.unscaledHoldTime += b.env.clock.UnscaledDeltaTime()
	}

	if prev != b.state {
		b.env.debugf("button %q: %s -> %s", b.name, prev, b.state)
	}

	if changed {
		b.stateChange.fire(b.state)
		b.valueChange.fire(b.state.Down())
		b.env.emit(InputEvent{Type: EventButtonStateChange, Name: b.name, ButtonState: b.state, Value: b.holdTime})
	}
	switch b.state {
	case ButtonOnHold:
		b.down.fire(struct{}{})
		b.env.emit(InputEvent{Type: EventButtonDown, Name: b.name, ButtonState: b.state})
	case ButtonOnRelease:
		b.up.fire(struct{}{})
		b.env.emit(InputEvent{Type: EventButtonUp, Name: b.name, ButtonState: b.state, Value: b.holdTime})
	}
}

// SetDisabled forces every subsequent sample to read "not held" while
// disabled is true. Listeners are kept.
func (b *ButtonControl) SetDisabled(disabled bool) { b.disabled = disabled }

// Disabled reports whether the control is disabled.
func (b *ButtonControl) Disabled() bool { return b.disabled }

// State returns the current button state, or ButtonReleased while disabled.
func (b *ButtonControl) State() ButtonState {
	if b.disabled {
		return ButtonReleased
	}
	return b.state
}

// Pressed reports whether the button is held (OnHold or Holding).
func (b *ButtonControl) Pressed() bool { return b.State().Down() }

// JustPressed reports whether the button went down this frame.
func (b *ButtonControl) JustPressed() bool { return b.State() == ButtonOnHold }

// JustReleased reports whether the button went up this frame.
func (b *ButtonControl) JustReleased() bool { return b.State() == ButtonOnRelease }

// HoldTime returns the scaled seconds the button has been held since its
// last press edge. It keeps its value after release until the next press.
func (b *ButtonControl) HoldTime() float64 {
	if b.disabled {
		return 0
	}
	return b.holdTime
}

// UnscaledHoldTime is HoldTime measured with unscaled frame time.
func (b *ButtonControl) UnscaledHoldTime() float64 {
	if b.disabled {
		return 0
	}
	return b.unscaledHoldTime
}

// OnStateChange registers fn to run whenever the button changes state on
// an edge (to OnHold or OnRelease).
func (b *ButtonControl) OnStateChange(fn func(ButtonState)) CallbackHandle {
	return b.stateChange.add(fn)
}

// OnValueChange registers fn to run on every edge with the new held value.
func (b *ButtonControl) OnValueChange(fn func(bool)) CallbackHandle {
	return b.valueChange.add(fn)
}

// OnDown registers fn to run on the frame the button is pressed.
func (b *ButtonControl) OnDown(fn func()) CallbackHandle {
	return b.down.add(signal(fn))
}

// OnUp registers fn to run on the frame the button is released.
func (b *ButtonControl) OnUp(fn func()) CallbackHandle {
	return b.up.add(signal(fn))
}

package controls

// AxisControl tracks one named analog axis in both its processed and raw
// forms and exposes the per-frame delta of each.
type AxisControl struct {
	name     string
	env      *controlEnv
	disabled bool

	lastFrameValue       float64
	currentFrameValue    float64
	lastFrameRawValue    float64
	currentFrameRawValue float64

	value          listeners[float64]
	valueChange    listeners[float64]
	rawValue       listeners[float64]
	rawValueChange listeners[float64]
}

func newAxisControl(name string, env *controlEnv) *AxisControl {
	return &AxisControl{name: name, env: env}
}

// Name returns the axis name this control samples.
func (a *AxisControl) Name() string { return a.name }

func (a *AxisControl) refresh() {
	var v, raw float64
	if !a.disabled {
		v = a.env.source.Axis(a.name)
		raw = a.env.source.AxisRaw(a.name)
	}
	a.lastFrameValue = a.currentFrameValue
	a.currentFrameValue = v
	a.lastFrameRawValue = a.currentFrameRawValue
	a.currentFrameRawValue = raw

	a.value.fire(a.currentFrameValue)
	if a.currentFrameValue != a.lastFrameValue {
		a.valueChange.fire(a.currentFrameValue)
		a.env.emit(InputEvent{Type: EventAxisChange, Name: a.name, Value: a.currentFrameValue})
	}
	a.rawValue.fire(a.currentFrameRawValue)
	if a.currentFrameRawValue != a.lastFrameRawValue {
		a.rawValueChange.fire(a.currentFrameRawValue)
		a.env.emit(InputEvent{Type: EventAxisRawChange, Name: a.name, Value: a.currentFrameRawValue})
	}
}

// SetDisabled forces both samples to 0 while disabled is true.
func (a *AxisControl) SetDisabled(disabled bool) { a.disabled = disabled }

// Disabled reports whether the control is disabled.
func (a *AxisControl) Disabled() bool { return a.disabled }

// Value returns the processed axis value.
func (a *AxisControl) Value() float64 {
	if a.disabled {
		return 0
	}
	return a.currentFrameValue
}

// Raw returns the unprocessed axis value.
func (a *AxisControl) Raw() float64 {
	if a.disabled {
		return 0
	}
	return a.currentFrameRawValue
}

// Delta returns the change in processed value since the previous frame.
func (a *AxisControl) Delta() float64 {
	if a.disabled {
		return 0
	}
	return a.currentFrameValue - a.lastFrameValue
}

// RawDelta returns the change in raw value since the previous frame.
func (a *AxisControl) RawDelta() float64 {
	if a.disabled {
		return 0
	}
	return a.currentFrameRawValue - a.lastFrameRawValue
}

// OnValue registers fn to receive the processed value every frame.
func (a *AxisControl) OnValue(fn func(float64)) CallbackHandle {
	return a.value.add(fn)
}

// OnValueChange registers fn to receive the processed value on frames where
// it differs from the previous frame.
func (a *AxisControl) OnValueChange(fn func(float64)) CallbackHandle {
	return a.valueChange.add(fn)
}

// OnRawValue registers fn to receive the raw value every frame.
func (a *AxisControl) OnRawValue(fn func(float64)) CallbackHandle {
	return a.rawValue.add(fn)
}

// OnRawValueChange registers fn to receive the raw value on frames where it
// differs from the previous frame.
func (a *AxisControl) OnRawValueChange(fn func(float64)) CallbackHandle {
	return a.rawValueChange.add(fn)
}

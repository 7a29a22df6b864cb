package controls

// DefaultDragThreshold is the pointer distance from the press position that
// promotes a gesture from DragWaiting to DragDragging. It is compared in
// pointer units (pixels for mouse sources), so nearly any motion starts a
// drag; raise it with RegistryConfig.DragThreshold for a dead zone.
const DefaultDragThreshold = 0.1

// DragControl runs the click-and-drag gesture state machine for one mouse
// button:
//
//	None → MouseDown → WaitingForDrag → MouseDragging → DragEnd → None
//
// Releasing before the threshold is crossed returns straight to None
// without emitting dragging or drag-end events.
type DragControl struct {
	button   MouseButton
	env      *controlEnv
	disabled bool

	initialClickPos   Vec2
	lastFrameMousePos Vec2
	currentMousePos   Vec2
	dragDelta         Vec2
	startedOverUI     bool
	state             DragState
	sampled           bool
	endData           DragData

	potentialDrag listeners[DragData]
	dragging      listeners[DragData]
	dragEnd       listeners[DragData]
}

func newDragControl(button MouseButton, env *controlEnv) *DragControl {
	return &DragControl{button: button, env: env}
}

// Button returns the mouse button this control tracks.
func (d *DragControl) Button() MouseButton { return d.button }

func (d *DragControl) refresh() {
	src := d.env.source
	pos := src.PointerPosition()
	if !d.sampled {
		d.currentMousePos = pos
		d.sampled = true
	}
	d.lastFrameMousePos = d.currentMousePos
	d.currentMousePos = pos
	d.dragDelta = d.lastFrameMousePos.Sub(d.currentMousePos)

	pressed := !d.disabled && src.MouseButtonJustPressed(d.button)
	released := src.MouseButtonJustReleased(d.button)
	if d.disabled {
		// Close any open gesture instead of freezing it mid-state.
		released = d.state != DragNone
	}

	prev := d.state

	if d.state == DragMouseDown {
		d.state = DragWaiting
		d.startedOverUI = src.PointerOverUI()
		data := DragData{Start: d.initialClickPos, Current: d.currentMousePos, StartedOverUI: d.startedOverUI}
		d.potentialDrag.fire(data)
		d.env.emit(InputEvent{Type: EventPotentialDrag, Button: d.button, Drag: data})
	}
	if d.state == DragEnded {
		d.state = DragNone
		d.dragEnd.fire(d.endData)
		d.env.emit(InputEvent{Type: EventDragEnd, Button: d.button, Drag: d.endData})
	}
	if d.state == DragNone && pressed {
		d.initialClickPos = d.currentMousePos
		d.state = DragMouseDown
	}
	if d.state == DragWaiting && d.currentMousePos.Sub(d.initialClickPos).Len() > d.env.dragThreshold {
		d.state = DragDragging
	}
	if released {
		if d.state == DragDragging {
			d.state = DragEnded
			d.endData = d.data()
		} else {
			d.state = DragNone
		}
	}
	if d.state == DragDragging {
		data := d.data()
		d.dragging.fire(data)
		d.env.emit(InputEvent{Type: EventDrag, Button: d.button, Drag: data})
	}

	if prev != d.state {
		d.env.debugf("drag %s: %s -> %s", d.button, prev, d.state)
	}
}

func (d *DragControl) data() DragData {
	return DragData{
		Start:         d.initialClickPos,
		Current:       d.currentMousePos,
		Delta:         d.dragDelta,
		StartedOverUI: d.startedOverUI,
	}
}

// SetDisabled ignores new presses while disabled is true. Disabling during
// a gesture synthesizes a release on the next refresh so the gesture ends
// normally.
func (d *DragControl) SetDisabled(disabled bool) { d.disabled = disabled }

// Disabled reports whether the control is disabled.
func (d *DragControl) Disabled() bool { return d.disabled }

// State returns the gesture state, or DragNone while disabled.
func (d *DragControl) State() DragState {
	if d.disabled {
		return DragNone
	}
	return d.state
}

// IsDragging reports whether the gesture is past the threshold
// (MouseDragging or DragEnd).
func (d *DragControl) IsDragging() bool {
	s := d.State()
	return s != DragNone && s != DragMouseDown && s != DragWaiting
}

// Data returns the current drag payload, or a zero DragData unless
// IsDragging is true.
func (d *DragControl) Data() DragData {
	if !d.IsDragging() {
		return DragData{}
	}
	return d.data()
}

// OnPotentialDrag registers fn to run once per gesture, the frame after the
// press, with a zero delta.
func (d *DragControl) OnPotentialDrag(fn func(DragData)) CallbackHandle {
	return d.potentialDrag.add(fn)
}

// OnDragging registers fn to run every frame while dragging.
func (d *DragControl) OnDragging(fn func(DragData)) CallbackHandle {
	return d.dragging.add(fn)
}

// OnDragEnd registers fn to run the frame after a drag is released. The
// payload is the one captured on the release frame.
func (d *DragControl) OnDragEnd(fn func(DragData)) CallbackHandle {
	return d.dragEnd.add(fn)
}

package controls

// Listener registration on the registry. Every Add and Remove call creates
// the target control if needed; for unknown keys Add returns a zero
// CallbackHandle and Remove does nothing.

// --- Buttons ---

// AddButtonStateListener registers fn for the named button's state changes.
func (r *Registry) AddButtonStateListener(name string, fn func(ButtonState)) CallbackHandle {
	if c, ok := r.ButtonControl(name); ok {
		return c.OnStateChange(fn)
	}
	return CallbackHandle{}
}

// RemoveButtonStateListener removes a listener added by AddButtonStateListener.
func (r *Registry) RemoveButtonStateListener(name string, h CallbackHandle) {
	if c, ok := r.ButtonControl(name); ok && h.belongsTo(&c.stateChange) {
		h.Remove()
	}
}

// AddButtonValueListener registers fn for the named button's held value on
// every edge.
func (r *Registry) AddButtonValueListener(name string, fn func(bool)) CallbackHandle {
	if c, ok := r.ButtonControl(name); ok {
		return c.OnValueChange(fn)
	}
	return CallbackHandle{}
}

// RemoveButtonValueListener removes a listener added by AddButtonValueListener.
func (r *Registry) RemoveButtonValueListener(name string, h CallbackHandle) {
	if c, ok := r.ButtonControl(name); ok && h.belongsTo(&c.valueChange) {
		h.Remove()
	}
}

// AddButtonDownListener registers fn for the frame the named button is pressed.
func (r *Registry) AddButtonDownListener(name string, fn func()) CallbackHandle {
	if c, ok := r.ButtonControl(name); ok {
		return c.OnDown(fn)
	}
	return CallbackHandle{}
}

// RemoveButtonDownListener removes a listener added by AddButtonDownListener.
func (r *Registry) RemoveButtonDownListener(name string, h CallbackHandle) {
	if c, ok := r.ButtonControl(name); ok && h.belongsTo(&c.down) {
		h.Remove()
	}
}

// AddButtonUpListener registers fn for the frame the named button is released.
func (r *Registry) AddButtonUpListener(name string, fn func()) CallbackHandle {
	if c, ok := r.ButtonControl(name); ok {
		return c.OnUp(fn)
	}
	return CallbackHandle{}
}

// RemoveButtonUpListener removes a listener added by AddButtonUpListener.
func (r *Registry) RemoveButtonUpListener(name string, h CallbackHandle) {
	if c, ok := r.ButtonControl(name); ok && h.belongsTo(&c.up) {
		h.Remove()
	}
}

// --- Axes ---

// AddAxisValueListener registers fn for the named axis' processed value
// every frame.
func (r *Registry) AddAxisValueListener(name string, fn func(float64)) CallbackHandle {
	if c, ok := r.AxisControl(name); ok {
		return c.OnValue(fn)
	}
	return CallbackHandle{}
}

// RemoveAxisValueListener removes a listener added by AddAxisValueListener.
func (r *Registry) RemoveAxisValueListener(name string, h CallbackHandle) {
	if c, ok := r.AxisControl(name); ok && h.belongsTo(&c.value) {
		h.Remove()
	}
}

// AddAxisValueChangeListener registers fn for frames where the named axis'
// processed value changes.
func (r *Registry) AddAxisValueChangeListener(name string, fn func(float64)) CallbackHandle {
	if c, ok := r.AxisControl(name); ok {
		return c.OnValueChange(fn)
	}
	return CallbackHandle{}
}

// RemoveAxisValueChangeListener removes a listener added by
// AddAxisValueChangeListener.
func (r *Registry) RemoveAxisValueChangeListener(name string, h CallbackHandle) {
	if c, ok := r.AxisControl(name); ok && h.belongsTo(&c.valueChange) {
		h.Remove()
	}
}

// AddAxisRawValueListener registers fn for the named axis' raw value every
// frame.
func (r *Registry) AddAxisRawValueListener(name string, fn func(float64)) CallbackHandle {
	if c, ok := r.AxisControl(name); ok {
		return c.OnRawValue(fn)
	}
	return CallbackHandle{}
}

// RemoveAxisRawValueListener removes a listener added by
// AddAxisRawValueListener.
func (r *Registry) RemoveAxisRawValueListener(name string, h CallbackHandle) {
	if c, ok := r.AxisControl(name); ok && h.belongsTo(&c.rawValue) {
		h.Remove()
	}
}

// AddAxisRawValueChangeListener registers fn for frames where the named
// axis' raw value changes.
func (r *Registry) AddAxisRawValueChangeListener(name string, fn func(float64)) CallbackHandle {
	if c, ok := r.AxisControl(name); ok {
		return c.OnRawValueChange(fn)
	}
	return CallbackHandle{}
}

// RemoveAxisRawValueChangeListener removes a listener added by
// AddAxisRawValueChangeListener.
func (r *Registry) RemoveAxisRawValueChangeListener(name string, h CallbackHandle) {
	if c, ok := r.AxisControl(name); ok && h.belongsTo(&c.rawValueChange) {
		h.Remove()
	}
}

// --- Drags ---

// AddPotentialDragListener registers fn for the frame after button is
// pressed.
func (r *Registry) AddPotentialDragListener(button MouseButton, fn func(DragData)) CallbackHandle {
	if c, ok := r.DragControl(button); ok {
		return c.OnPotentialDrag(fn)
	}
	return CallbackHandle{}
}

// RemovePotentialDragListener removes a listener added by
// AddPotentialDragListener.
func (r *Registry) RemovePotentialDragListener(button MouseButton, h CallbackHandle) {
	if c, ok := r.DragControl(button); ok && h.belongsTo(&c.potentialDrag) {
		h.Remove()
	}
}

// AddDraggingListener registers fn for every frame button is dragging.
func (r *Registry) AddDraggingListener(button MouseButton, fn func(DragData)) CallbackHandle {
	if c, ok := r.DragControl(button); ok {
		return c.OnDragging(fn)
	}
	return CallbackHandle{}
}

// RemoveDraggingListener removes a listener added by AddDraggingListener.
func (r *Registry) RemoveDraggingListener(button MouseButton, h CallbackHandle) {
	if c, ok := r.DragControl(button); ok && h.belongsTo(&c.dragging) {
		h.Remove()
	}
}

// AddDragEndListener registers fn for the end of each drag on button.
func (r *Registry) AddDragEndListener(button MouseButton, fn func(DragData)) CallbackHandle {
	if c, ok := r.DragControl(button); ok {
		return c.OnDragEnd(fn)
	}
	return CallbackHandle{}
}

// RemoveDragEndListener removes a listener added by AddDragEndListener.
func (r *Registry) RemoveDragEndListener(button MouseButton, h CallbackHandle) {
	if c, ok := r.DragControl(button); ok && h.belongsTo(&c.dragEnd) {
		h.Remove()
	}
}

// --- Double click ---

// AddDoubleClickListener registers fn for frames where a double click on the
// primary button completes.
func (r *Registry) AddDoubleClickListener(fn func()) CallbackHandle {
	return r.doubleClick.detected.add(signal(fn))
}

// RemoveDoubleClickListener removes a listener added by
// AddDoubleClickListener.
func (r *Registry) RemoveDoubleClickListener(h CallbackHandle) {
	if h.belongsTo(&r.doubleClick.detected) {
		h.Remove()
	}
}

// AddDoubleClickFailedListener registers fn for frames where a pending
// double click is canceled or times out.
func (r *Registry) AddDoubleClickFailedListener(fn func(DoubleClickState)) CallbackHandle {
	return r.doubleClick.failed.add(fn)
}

// RemoveDoubleClickFailedListener removes a listener added by
// AddDoubleClickFailedListener.
func (r *Registry) RemoveDoubleClickFailedListener(h CallbackHandle) {
	if h.belongsTo(&r.doubleClick.failed) {
		h.Remove()
	}
}

package controls

import "log"

// RegistryConfig tunes a Registry. Zero fields take their defaults, so a
// zero threshold can only be set after construction.
type RegistryConfig struct {
	// DragThreshold is the pointer distance that turns a press into a drag.
	// Zero means DefaultDragThreshold; use Registry.SetDragThreshold for a
	// zero threshold.
	DragThreshold float64
	// DoubleClickThreshold is the double-click window in seconds.
	// Zero means DefaultDoubleClickThreshold; use
	// Registry.SetDoubleClickThreshold for a zero window.
	DoubleClickThreshold float64
	// PrimaryButton is the only button the double-click tracker watches.
	// Default MouseButtonLeft.
	PrimaryButton MouseButton
	// PointerAxisX and PointerAxisY name the axes whose deltas cancel a
	// pending double click. Defaults "Mouse X" and "Mouse Y".
	PointerAxisX string
	PointerAxisY string
}

const (
	defaultPointerAxisX = "Mouse X"
	defaultPointerAxisY = "Mouse Y"
)

// controlEnv is shared by the registry and every control it creates.
type controlEnv struct {
	source        InputSource
	clock         Clock
	sink          EventSink
	debug         bool
	dragThreshold float64
}

// emit forwards event to the sink, if one is attached.
func (e *controlEnv) emit(event InputEvent) {
	if e.sink == nil {
		return
	}
	e.sink.EmitEvent(event)
}

// Registry owns every ButtonControl, AxisControl and DragControl, creates
// them on first reference, and refreshes them once per frame in a fixed
// order: buttons, axes, drags, then the double-click tracker.
//
// A Registry is not safe for concurrent use; call Update and every accessor
// from the game's update goroutine.
type Registry struct {
	env   *controlEnv
	frame uint64

	buttons     map[string]*ButtonControl
	buttonOrder []*ButtonControl
	axes        map[string]*AxisControl
	axisOrder   []*AxisControl
	drags       map[MouseButton]*DragControl
	dragOrder   []*DragControl

	invalidButtons map[string]struct{}
	invalidAxes    map[string]struct{}
	invalidDrags   map[MouseButton]struct{}

	doubleClick  doubleClickTracker
	pointerAxisX string
	pointerAxisY string
}

// NewRegistry creates a registry reading from source and timed by clock.
func NewRegistry(source InputSource, clock Clock, cfg RegistryConfig) *Registry {
	if cfg.DragThreshold == 0 {
		cfg.DragThreshold = DefaultDragThreshold
	}
	if cfg.DoubleClickThreshold == 0 {
		cfg.DoubleClickThreshold = DefaultDoubleClickThreshold
	}
	if cfg.PointerAxisX == "" {
		cfg.PointerAxisX = defaultPointerAxisX
	}
	if cfg.PointerAxisY == "" {
		cfg.PointerAxisY = defaultPointerAxisY
	}

	env := &controlEnv{source: source, clock: clock, dragThreshold: cfg.DragThreshold}
	r := &Registry{
		env:            env,
		buttons:        make(map[string]*ButtonControl),
		axes:           make(map[string]*AxisControl),
		drags:          make(map[MouseButton]*DragControl),
		invalidButtons: make(map[string]struct{}),
		invalidAxes:    make(map[string]struct{}),
		invalidDrags:   make(map[MouseButton]struct{}),
		pointerAxisX:   cfg.PointerAxisX,
		pointerAxisY:   cfg.PointerAxisY,
	}
	r.doubleClick = doubleClickTracker{
		env:       env,
		button:    cfg.PrimaryButton,
		threshold: cfg.DoubleClickThreshold,
		moved:     r.pointerMoved,
	}
	return r
}

// Update samples the input source and refreshes every control. Call it
// exactly once per host frame, before game logic reads any control.
func (r *Registry) Update() {
	if p, ok := r.env.source.(Poller); ok {
		p.Poll()
	}
	if p, ok := r.env.clock.(Poller); ok && any(r.env.clock) != any(r.env.source) {
		p.Poll()
	}
	r.frame++

	for _, b := range r.buttonOrder {
		b.refresh()
	}
	for _, a := range r.axisOrder {
		a.refresh()
	}
	for _, d := range r.dragOrder {
		d.refresh()
	}
	r.doubleClick.update()
}

// Frame returns the number of completed Update calls.
func (r *Registry) Frame() uint64 { return r.frame }

// SetEventSink forwards every control event to sink after the control's own
// listeners run. Pass nil to stop forwarding.
func (r *Registry) SetEventSink(sink EventSink) {
	r.env.sink = sink
}

// SetDebugMode enables state-transition tracing to stderr.
func (r *Registry) SetDebugMode(enabled bool) {
	r.env.debug = enabled
}

// SetDragThreshold changes the drag activation distance for every drag
// control.
func (r *Registry) SetDragThreshold(distance float64) {
	r.env.dragThreshold = distance
}

// SetDoubleClickThreshold changes the double-click window in seconds.
func (r *Registry) SetDoubleClickThreshold(seconds float64) {
	r.doubleClick.threshold = seconds
}

// Revalidate forgets every key that previously failed validation so the
// next reference checks the input source again. The registry never does
// this on its own.
func (r *Registry) Revalidate() {
	clear(r.invalidButtons)
	clear(r.invalidAxes)
	clear(r.invalidDrags)
}

// --- Lookup ---

// ButtonControl returns the control for name, creating it on first use.
// It returns false when the input source does not know name; the failure is
// logged once and remembered until Revalidate.
func (r *Registry) ButtonControl(name string) (*ButtonControl, bool) {
	if c, ok := r.buttons[name]; ok {
		return c, true
	}
	if _, bad := r.invalidButtons[name]; bad {
		return nil, false
	}
	if !r.env.source.ButtonAvailable(name) {
		r.invalidButtons[name] = struct{}{}
		log.Printf("controls: button %q is not configured, reads return neutral values", name)
		return nil, false
	}
	c := newButtonControl(name, r.env)
	r.buttons[name] = c
	r.buttonOrder = append(r.buttonOrder, c)
	r.debugCheckControlCount()
	return c, true
}

// AxisControl returns the control for name, creating it on first use. See
// ButtonControl for failure handling.
func (r *Registry) AxisControl(name string) (*AxisControl, bool) {
	if c, ok := r.axes[name]; ok {
		return c, true
	}
	if _, bad := r.invalidAxes[name]; bad {
		return nil, false
	}
	if !r.env.source.AxisAvailable(name) {
		r.invalidAxes[name] = struct{}{}
		log.Printf("controls: axis %q is not configured, reads return neutral values", name)
		return nil, false
	}
	c := newAxisControl(name, r.env)
	r.axes[name] = c
	r.axisOrder = append(r.axisOrder, c)
	r.debugCheckControlCount()
	return c, true
}

// DragControl returns the drag control for button, creating it on first
// use. See ButtonControl for failure handling.
func (r *Registry) DragControl(button MouseButton) (*DragControl, bool) {
	if c, ok := r.drags[button]; ok {
		return c, true
	}
	if _, bad := r.invalidDrags[button]; bad {
		return nil, false
	}
	if !r.env.source.MouseButtonAvailable(button) {
		r.invalidDrags[button] = struct{}{}
		log.Printf("controls: mouse button %s is not available, drag reads return neutral values", button)
		return nil, false
	}
	c := newDragControl(button, r.env)
	r.drags[button] = c
	r.dragOrder = append(r.dragOrder, c)
	r.debugCheckControlCount()
	return c, true
}

func (r *Registry) pointerMoved() bool {
	return r.pointerDelta(r.pointerAxisX) != 0 || r.pointerDelta(r.pointerAxisY) != 0
}

// pointerDelta is AxisDelta without the unknown-key warning: sources with no
// pointer axes simply never cancel a double click.
func (r *Registry) pointerDelta(name string) float64 {
	if _, ok := r.axes[name]; !ok && !r.env.source.AxisAvailable(name) {
		return 0
	}
	return r.AxisDelta(name)
}

// --- Button polling ---

// Button reports whether the named button is held.
func (r *Registry) Button(name string) bool {
	c, ok := r.ButtonControl(name)
	return ok && c.Pressed()
}

// ButtonDown reports whether the named button was pressed this frame.
func (r *Registry) ButtonDown(name string) bool {
	c, ok := r.ButtonControl(name)
	return ok && c.JustPressed()
}

// ButtonUp reports whether the named button was released this frame.
func (r *Registry) ButtonUp(name string) bool {
	c, ok := r.ButtonControl(name)
	return ok && c.JustReleased()
}

// ButtonState returns the named button's state.
func (r *Registry) ButtonState(name string) ButtonState {
	if c, ok := r.ButtonControl(name); ok {
		return c.State()
	}
	return ButtonReleased
}

// HoldTime returns how long, in scaled seconds, the named button has been
// held.
func (r *Registry) HoldTime(name string) float64 {
	if c, ok := r.ButtonControl(name); ok {
		return c.HoldTime()
	}
	return 0
}

// UnscaledHoldTime returns how long, in unscaled seconds, the named button
// has been held.
func (r *Registry) UnscaledHoldTime(name string) float64 {
	if c, ok := r.ButtonControl(name); ok {
		return c.UnscaledHoldTime()
	}
	return 0
}

// DisableButton toggles forced "not held" sampling for the named button.
func (r *Registry) DisableButton(name string, disabled bool) {
	if c, ok := r.ButtonControl(name); ok {
		c.SetDisabled(disabled)
	}
}

// --- Axis polling ---

// Axis returns the processed value of the named axis.
func (r *Registry) Axis(name string) float64 {
	if c, ok := r.AxisControl(name); ok {
		return c.Value()
	}
	return 0
}

// AxisRaw returns the raw value of the named axis.
func (r *Registry) AxisRaw(name string) float64 {
	if c, ok := r.AxisControl(name); ok {
		return c.Raw()
	}
	return 0
}

// AxisDelta returns the processed value change since the previous frame.
func (r *Registry) AxisDelta(name string) float64 {
	if c, ok := r.AxisControl(name); ok {
		return c.Delta()
	}
	return 0
}

// AxisRawDelta returns the raw value change since the previous frame.
func (r *Registry) AxisRawDelta(name string) float64 {
	if c, ok := r.AxisControl(name); ok {
		return c.RawDelta()
	}
	return 0
}

// DisableAxis toggles forced zero sampling for the named axis.
func (r *Registry) DisableAxis(name string, disabled bool) {
	if c, ok := r.AxisControl(name); ok {
		c.SetDisabled(disabled)
	}
}

// --- Drag polling ---

// DragState returns the gesture state for button.
func (r *Registry) DragState(button MouseButton) DragState {
	if c, ok := r.DragControl(button); ok {
		return c.State()
	}
	return DragNone
}

// IsDragging reports whether button's gesture is past the drag threshold.
func (r *Registry) IsDragging(button MouseButton) bool {
	c, ok := r.DragControl(button)
	return ok && c.IsDragging()
}

// DragData returns button's drag payload, zero unless dragging.
func (r *Registry) DragData(button MouseButton) DragData {
	if c, ok := r.DragControl(button); ok {
		return c.Data()
	}
	return DragData{}
}

// DisableDrag toggles drag tracking for button. Disabling mid-gesture ends
// the gesture on the next Update.
func (r *Registry) DisableDrag(button MouseButton, disabled bool) {
	if c, ok := r.DragControl(button); ok {
		c.SetDisabled(disabled)
	}
}

// --- Double click polling ---

// DoubleClickState returns the tracker state for this frame.
func (r *Registry) DoubleClickState() DoubleClickState {
	return r.doubleClick.state
}

// DoubleClick reports whether a double click completed this frame.
func (r *Registry) DoubleClick() bool {
	return r.doubleClick.state == DoubleClickDetected
}

// DoubleClickFailed reports whether a pending double click was canceled by
// pointer movement or timed out this frame.
func (r *Registry) DoubleClickFailed() bool {
	s := r.doubleClick.state
	return s == DoubleClickCanceled || s == DoubleClickTimedOut
}

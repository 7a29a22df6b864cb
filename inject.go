package controls

const mouseButtonCount = int(MouseButtonForward) + 1

// syntheticPointerEvent is a single queued pointer event. One event is
// consumed per Poll, so a queued click spans two frames.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

type axisSample struct {
	value, raw float64
}

// ScriptedSource is an InputSource driven entirely by method calls. It backs
// the package tests, replays and the JSON TestRunner. Button and axis state
// is read live; mouse buttons and the pointer are latched on each Poll so
// press and release edges line up with registry frames.
type ScriptedSource struct {
	buttons map[string]bool
	axes    map[string]axisSample

	mouse     [mouseButtonCount]bool
	pointer   Vec2
	overUI    bool
	frame     [mouseButtonCount]bool
	prevFrame [mouseButtonCount]bool
	framePos  Vec2
	prevPos   Vec2

	pointerAxisX string
	pointerAxisY string

	injectQueue []syntheticPointerEvent
	runner      *TestRunner
}

// NewScriptedSource returns an empty source: no buttons or axes are
// configured until defined or set.
func NewScriptedSource() *ScriptedSource {
	return &ScriptedSource{
		buttons: make(map[string]bool),
		axes:    make(map[string]axisSample),
	}
}

// DefineButton configures names as available buttons without pressing them.
func (s *ScriptedSource) DefineButton(names ...string) {
	for _, n := range names {
		if _, ok := s.buttons[n]; !ok {
			s.buttons[n] = false
		}
	}
}

// DefineAxis configures names as available axes at value 0.
func (s *ScriptedSource) DefineAxis(names ...string) {
	for _, n := range names {
		if _, ok := s.axes[n]; !ok {
			s.axes[n] = axisSample{}
		}
	}
}

// DefinePointerAxes configures two axes whose values are the pointer
// movement since the previous frame, like a desktop "Mouse X"/"Mouse Y"
// binding.
func (s *ScriptedSource) DefinePointerAxes(xName, yName string) {
	s.pointerAxisX = xName
	s.pointerAxisY = yName
}

// SetButton sets a button's held state, defining it if needed.
func (s *ScriptedSource) SetButton(name string, held bool) {
	s.buttons[name] = held
}

// SetAxis sets both the processed and raw value of an axis, defining it if
// needed.
func (s *ScriptedSource) SetAxis(name string, value float64) {
	s.axes[name] = axisSample{value: value, raw: value}
}

// SetAxisValues sets the processed and raw value of an axis separately.
func (s *ScriptedSource) SetAxisValues(name string, value, raw float64) {
	s.axes[name] = axisSample{value: value, raw: raw}
}

// Press holds a mouse button down from the next Poll on.
func (s *ScriptedSource) Press(b MouseButton) {
	if int(b) < mouseButtonCount {
		s.mouse[b] = true
	}
}

// Release lets a mouse button go from the next Poll on.
func (s *ScriptedSource) Release(b MouseButton) {
	if int(b) < mouseButtonCount {
		s.mouse[b] = false
	}
}

// MoveTo places the pointer from the next Poll on.
func (s *ScriptedSource) MoveTo(x, y float64) {
	s.pointer = Vec2{x, y}
}

// SetOverUI sets the answer to PointerOverUI.
func (s *ScriptedSource) SetOverUI(over bool) {
	s.overUI = over
}

// InjectPress queues a left-button press at (x, y).
func (s *ScriptedSource) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true, button: MouseButtonLeft})
}

// InjectMove queues a move to (x, y) with the left button held. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (s *ScriptedSource) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true, button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at (x, y).
func (s *ScriptedSource) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false, button: MouseButtonLeft})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (s *ScriptedSource) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). Minimum frames is 2.
func (s *ScriptedSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// Pending returns the number of queued synthetic pointer events.
func (s *ScriptedSource) Pending() int {
	return len(s.injectQueue)
}

// SetTestRunner attaches a runner whose step is executed at the start of
// every Poll.
func (s *ScriptedSource) SetTestRunner(runner *TestRunner) {
	s.runner = runner
}

// Poll latches the pointer and mouse buttons for the coming frame, after
// running the test runner step and consuming one queued pointer event.
func (s *ScriptedSource) Poll() {
	if s.runner != nil {
		s.runner.step(s)
	}
	if len(s.injectQueue) > 0 {
		evt := s.injectQueue[0]
		copy(s.injectQueue, s.injectQueue[1:])
		s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
		s.pointer = Vec2{evt.x, evt.y}
		s.mouse[evt.button] = evt.pressed
	}

	s.prevFrame = s.frame
	s.frame = s.mouse
	s.prevPos = s.framePos
	s.framePos = s.pointer
}

func (s *ScriptedSource) ButtonAvailable(name string) bool {
	_, ok := s.buttons[name]
	return ok
}

func (s *ScriptedSource) AxisAvailable(name string) bool {
	if name != "" && (name == s.pointerAxisX || name == s.pointerAxisY) {
		return true
	}
	_, ok := s.axes[name]
	return ok
}

func (s *ScriptedSource) MouseButtonAvailable(b MouseButton) bool {
	return int(b) < mouseButtonCount
}

func (s *ScriptedSource) ButtonHeld(name string) bool {
	return s.buttons[name]
}

func (s *ScriptedSource) Axis(name string) float64 {
	if v, ok := s.pointerAxis(name); ok {
		return v
	}
	return s.axes[name].value
}

func (s *ScriptedSource) AxisRaw(name string) float64 {
	if v, ok := s.pointerAxis(name); ok {
		return v
	}
	return s.axes[name].raw
}

func (s *ScriptedSource) pointerAxis(name string) (float64, bool) {
	if name == "" {
		return 0, false
	}
	switch name {
	case s.pointerAxisX:
		return s.framePos.X - s.prevPos.X, true
	case s.pointerAxisY:
		return s.framePos.Y - s.prevPos.Y, true
	}
	return 0, false
}

func (s *ScriptedSource) MouseButtonJustPressed(b MouseButton) bool {
	return int(b) < mouseButtonCount && s.frame[b] && !s.prevFrame[b]
}

func (s *ScriptedSource) MouseButtonJustReleased(b MouseButton) bool {
	return int(b) < mouseButtonCount && !s.frame[b] && s.prevFrame[b]
}

func (s *ScriptedSource) PointerPosition() Vec2 { return s.framePos }

func (s *ScriptedSource) PointerOverUI() bool { return s.overUI }

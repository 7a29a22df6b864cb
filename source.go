package controls

// InputSource is the raw, polled view of the host's input hardware. The
// registry only ever reads from it; all edge and hold logic lives in the
// controls.
//
// Implementations: EbitenSource (desktop/web), ScriptedSource (tests and
// automation) and term.Source (terminal).
type InputSource interface {
	// ButtonAvailable reports whether name is a configured button.
	ButtonAvailable(name string) bool
	// AxisAvailable reports whether name is a configured axis.
	AxisAvailable(name string) bool
	// MouseButtonAvailable reports whether b can be tracked by this source.
	MouseButtonAvailable(b MouseButton) bool

	ButtonHeld(name string) bool
	Axis(name string) float64
	AxisRaw(name string) float64

	MouseButtonJustPressed(b MouseButton) bool
	MouseButtonJustReleased(b MouseButton) bool
	PointerPosition() Vec2
	PointerOverUI() bool
}

// Clock provides frame timing. DeltaTime is affected by the time scale,
// UnscaledDeltaTime is not. Now returns seconds since the clock started.
type Clock interface {
	DeltaTime() float64
	UnscaledDeltaTime() float64
	Now() float64
}

// Poller is implemented by collaborators that sample hardware once per
// frame. Registry.Update calls Poll on its InputSource and Clock (when they
// implement it) before refreshing any control.
type Poller interface {
	Poll()
}

// StepClock is a Clock that advances by a fixed Step every Poll. Use it for
// deterministic tests and replays.
type StepClock struct {
	Step      float64 // unscaled seconds per frame
	TimeScale float64 // multiplier for DeltaTime; zero pauses scaled time
	now       float64
	polled    bool
}

// NewStepClock returns a StepClock advancing by step seconds each frame.
func NewStepClock(step float64) *StepClock {
	return &StepClock{Step: step, TimeScale: 1}
}

// Poll advances the clock by one frame. The first Poll leaves Now at zero.
func (c *StepClock) Poll() {
	if c.polled {
		c.now += c.Step
	}
	c.polled = true
}

// Set moves the clock to an absolute time.
func (c *StepClock) Set(now float64) {
	c.now = now
}

func (c *StepClock) DeltaTime() float64 { return c.Step * c.TimeScale }

func (c *StepClock) UnscaledDeltaTime() float64 { return c.Step }

func (c *StepClock) Now() float64 { return c.now }

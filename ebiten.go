package controls

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultTPS = 60

// tickSeconds returns the length of one Ebitengine update tick.
func tickSeconds() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	return 1 / float64(tps)
}

// --- Source ---

// EbitenSource is the Ebitengine InputSource. Buttons and axes come from
// Bindings; drags and double clicks read the mouse directly. Call
// Registry.Update from ebiten.Game.Update so the source is polled on the
// game tick.
type EbitenSource struct {
	// OverUI reports whether a pointer position is covered by UI. Nil means
	// never.
	OverUI func(pos Vec2) bool

	bindings  *Bindings
	smoothers map[string]*axisSmoother
	values    map[string]axisSample

	cursor     Vec2
	prevCursor Vec2
	wheel      Vec2
	polled     bool

	gamepadIDs []ebiten.GamepadID
	gamepad    ebiten.GamepadID
	hasGamepad bool
}

// NewEbitenSource creates a source for the given bindings.
func NewEbitenSource(b *Bindings) *EbitenSource {
	if b == nil {
		b = &Bindings{}
	}
	b.normalize()
	return &EbitenSource{
		bindings:  b,
		smoothers: make(map[string]*axisSmoother),
		values:    make(map[string]axisSample, len(b.Axes)),
	}
}

// Bindings returns the bindings the source reads.
func (s *EbitenSource) Bindings() *Bindings { return s.bindings }

// Poll samples the cursor, wheel and gamepads and advances axis smoothing.
func (s *EbitenSource) Poll() {
	x, y := ebiten.CursorPosition()
	s.prevCursor = s.cursor
	s.cursor = Vec2{float64(x), float64(y)}
	if !s.polled {
		s.prevCursor = s.cursor
		s.polled = true
	}
	wx, wy := ebiten.Wheel()
	s.wheel = Vec2{wx, wy}

	s.gamepadIDs = ebiten.AppendGamepadIDs(s.gamepadIDs[:0])
	s.hasGamepad = false
	for _, id := range s.gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			s.gamepad = id
			s.hasGamepad = true
			break
		}
	}

	dt := tickSeconds()
	for name, b := range s.bindings.Axes {
		s.values[name] = s.sampleAxis(name, b, dt)
	}
}

func (s *EbitenSource) sampleAxis(name string, b AxisBinding, dt float64) axisSample {
	var out axisSample
	if b.Pointer != "" {
		var v float64
		switch b.Pointer {
		case PointerAxisX:
			v = s.cursor.X - s.prevCursor.X
		case PointerAxisY:
			v = s.cursor.Y - s.prevCursor.Y
		case PointerAxisWheelX:
			v = s.wheel.X
		case PointerAxisWheelY:
			v = s.wheel.Y
		}
		v *= b.Scale
		out = axisSample{value: v, raw: v}
	} else {
		raw := keyAxis(b.Negative, b.Positive)
		sm := s.smoothers[name]
		if sm == nil {
			sm = newAxisSmoother(b.easeFunc())
			s.smoothers[name] = sm
		}
		out = axisSample{value: sm.update(raw, b, dt), raw: raw}

		if b.GamepadAxis != nil && s.hasGamepad {
			g := ebiten.StandardGamepadAxisValue(s.gamepad, *b.GamepadAxis)
			if math.Abs(g) > math.Abs(out.raw) {
				out.raw = g
			}
			if math.Abs(g) > math.Abs(out.value) {
				out.value = g
			}
		}
	}
	if b.Invert {
		out.value, out.raw = -out.value, -out.raw
	}
	return out
}

// keyAxis returns -1, 0 or 1 from two key sets.
func keyAxis(negative, positive []ebiten.Key) float64 {
	var v float64
	if anyKeyPressed(negative) {
		v--
	}
	if anyKeyPressed(positive) {
		v++
	}
	return v
}

func anyKeyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// ebitenMouseButton maps a MouseButton to Ebitengine's button.
func ebitenMouseButton(b MouseButton) (ebiten.MouseButton, bool) {
	switch b {
	case MouseButtonLeft:
		return ebiten.MouseButtonLeft, true
	case MouseButtonRight:
		return ebiten.MouseButtonRight, true
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle, true
	case MouseButtonBack:
		return ebiten.MouseButton3, true
	case MouseButtonForward:
		return ebiten.MouseButton4, true
	}
	return 0, false
}

func (s *EbitenSource) ButtonAvailable(name string) bool {
	_, ok := s.bindings.Buttons[name]
	return ok
}

func (s *EbitenSource) AxisAvailable(name string) bool {
	_, ok := s.bindings.Axes[name]
	return ok
}

func (s *EbitenSource) MouseButtonAvailable(b MouseButton) bool {
	_, ok := ebitenMouseButton(b)
	return ok
}

func (s *EbitenSource) ButtonHeld(name string) bool {
	b, ok := s.bindings.Buttons[name]
	if !ok {
		return false
	}
	if anyKeyPressed(b.Keys) {
		return true
	}
	for _, mb := range b.MouseButtons {
		if eb, ok := ebitenMouseButton(mb); ok && ebiten.IsMouseButtonPressed(eb) {
			return true
		}
	}
	if s.hasGamepad {
		for _, gb := range b.GamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(s.gamepad, gb) {
				return true
			}
		}
	}
	return false
}

func (s *EbitenSource) Axis(name string) float64 { return s.values[name].value }

func (s *EbitenSource) AxisRaw(name string) float64 { return s.values[name].raw }

func (s *EbitenSource) MouseButtonJustPressed(b MouseButton) bool {
	eb, ok := ebitenMouseButton(b)
	return ok && inpututil.IsMouseButtonJustPressed(eb)
}

func (s *EbitenSource) MouseButtonJustReleased(b MouseButton) bool {
	eb, ok := ebitenMouseButton(b)
	return ok && inpututil.IsMouseButtonJustReleased(eb)
}

func (s *EbitenSource) PointerPosition() Vec2 { return s.cursor }

func (s *EbitenSource) PointerOverUI() bool {
	return s.OverUI != nil && s.OverUI(s.cursor)
}

// --- Axis smoothing ---

// axisSmoother eases a processed axis value toward the raw key value. A new
// tween starts whenever the target changes; its duration is the distance
// divided by the binding's sensitivity (or gravity when returning to 0).
type axisSmoother struct {
	tween  *gween.Tween
	target float64
	value  float64
	ease   ease.TweenFunc
}

func newAxisSmoother(fn ease.TweenFunc) *axisSmoother {
	return &axisSmoother{ease: fn}
}

func (a *axisSmoother) update(target float64, b AxisBinding, dt float64) float64 {
	if target != a.target {
		if b.Snap && target != 0 && a.value != 0 && math.Signbit(target) != math.Signbit(a.value) {
			a.value = 0
		}
		a.target = target
		a.tween = nil

		rate := b.Sensitivity
		if target == 0 {
			rate = b.Gravity
		}
		dist := math.Abs(target - a.value)
		if rate <= 0 || dist == 0 {
			a.value = target
			return a.value
		}
		a.tween = gween.New(float32(a.value), float32(target), float32(dist/rate), a.ease)
	}
	if a.tween == nil {
		return a.value
	}
	v, done := a.tween.Update(float32(dt))
	a.value = float64(v)
	if done {
		a.value = a.target
		a.tween = nil
	}
	return a.value
}

// --- Clock ---

// EbitenClock is a Clock that advances one Ebitengine tick per Poll.
type EbitenClock struct {
	// TimeScale multiplies DeltaTime. Zero pauses scaled time.
	TimeScale float64

	dt  float64
	now float64
}

// NewEbitenClock returns a clock with a time scale of 1.
func NewEbitenClock() *EbitenClock {
	return &EbitenClock{TimeScale: 1}
}

// Poll advances the clock by one tick.
func (c *EbitenClock) Poll() {
	c.dt = tickSeconds()
	c.now += c.dt
}

func (c *EbitenClock) DeltaTime() float64 { return c.dt * c.TimeScale }

func (c *EbitenClock) UnscaledDeltaTime() float64 { return c.dt }

func (c *EbitenClock) Now() float64 { return c.now }

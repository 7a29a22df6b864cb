package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/controls"
)

func newTestSource(t *testing.T) *Source {
	t.Helper()
	s, err := NewSource(nil, Bindings{
		Buttons: map[string][]string{
			"Jump": {"Space"},
			"Menu": {"Esc", "m"},
		},
		Axes: map[string]AxisKeys{
			"Horizontal": {Negative: []string{"a", "Left"}, Positive: []string{"d", "Right"}},
		},
		PointerAxisX: "Mouse X",
		PointerAxisY: "Mouse Y",
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestNewSource_UnknownKey(t *testing.T) {
	_, err := NewSource(nil, Bindings{Buttons: map[string][]string{"Jump": {"NotAKey"}}})
	if err == nil {
		t.Fatal("expected error for unknown key name")
	}
	_, err = NewSource(nil, Bindings{Axes: map[string]AxisKeys{"H": {Positive: []string{"Bogus"}}}})
	if err == nil {
		t.Fatal("expected error for unknown axis key name")
	}
}

func TestSourceAvailability(t *testing.T) {
	s := newTestSource(t)
	if !s.ButtonAvailable("Jump") || s.ButtonAvailable("Fire") {
		t.Error("button availability mismatch")
	}
	for _, name := range []string{"Horizontal", "Mouse X", "Mouse Y"} {
		if !s.AxisAvailable(name) {
			t.Errorf("%s should be available", name)
		}
	}
	if s.AxisAvailable("Vertical") || s.AxisAvailable("") {
		t.Error("unconfigured axes should be unavailable")
	}
	if !s.MouseButtonAvailable(controls.MouseButtonMiddle) || s.MouseButtonAvailable(controls.MouseButtonBack) {
		t.Error("mouse button availability mismatch")
	}
}

func TestSourceKeyHold(t *testing.T) {
	s := newTestSource(t)

	s.HandleEvent(key(' '))
	for i := 1; i <= DefaultHoldFrames; i++ {
		s.Poll()
		if !s.ButtonHeld("Jump") {
			t.Fatalf("poll %d: Jump should be held", i)
		}
	}
	s.Poll()
	if s.ButtonHeld("Jump") {
		t.Error("Jump should lapse after DefaultHoldFrames polls")
	}

	// Auto-repeat keeps the key held.
	s.HoldFrames = 2
	s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	for i := 0; i < 6; i++ {
		s.Poll()
		if !s.ButtonHeld("Menu") {
			t.Fatalf("poll %d: Menu should be held while repeating", i)
		}
		s.HandleEvent(key('m'))
	}
}

func TestSourceAxis(t *testing.T) {
	s := newTestSource(t)

	s.HandleEvent(key('d'))
	s.Poll()
	if s.Axis("Horizontal") != 1 || s.AxisRaw("Horizontal") != 1 {
		t.Errorf("Horizontal = %v, want 1", s.Axis("Horizontal"))
	}

	s.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	s.Poll()
	if s.Axis("Horizontal") != 0 {
		t.Errorf("opposing keys = %v, want 0", s.Axis("Horizontal"))
	}
	if s.Axis("Vertical") != 0 {
		t.Error("unknown axis should read 0")
	}
}

func TestSourceMouse(t *testing.T) {
	s := newTestSource(t)

	s.HandleEvent(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
	s.Poll()
	if !s.MouseButtonJustPressed(controls.MouseButtonLeft) {
		t.Error("left press edge expected")
	}
	if s.PointerPosition() != (controls.Vec2{X: 5, Y: 3}) {
		t.Errorf("pointer = %v", s.PointerPosition())
	}
	if s.Axis("Mouse X") != 0 {
		t.Error("first poll should report no pointer movement")
	}

	s.Poll()
	if s.MouseButtonJustPressed(controls.MouseButtonLeft) || s.MouseButtonJustReleased(controls.MouseButtonLeft) {
		t.Error("no edge expected while held still")
	}

	s.HandleEvent(tcell.NewEventMouse(7, 1, tcell.ButtonNone, tcell.ModNone))
	s.Poll()
	if !s.MouseButtonJustReleased(controls.MouseButtonLeft) {
		t.Error("left release edge expected")
	}
	if s.Axis("Mouse X") != 2 || s.AxisRaw("Mouse Y") != -2 {
		t.Errorf("pointer deltas = %v,%v, want 2,-2", s.Axis("Mouse X"), s.AxisRaw("Mouse Y"))
	}

	s.OverUI = func(p controls.Vec2) bool { return p.X > 6 }
	if !s.PointerOverUI() {
		t.Error("OverUI should be consulted")
	}
}

func TestSourceWithRegistry(t *testing.T) {
	s := newTestSource(t)
	s.HoldFrames = 2
	reg := controls.NewRegistry(s, controls.NewStepClock(1.0/30), controls.RegistryConfig{})

	var states []controls.ButtonState
	reg.AddButtonStateListener("Jump", func(st controls.ButtonState) { states = append(states, st) })

	s.HandleEvent(key(' '))
	for i := 0; i < 4; i++ {
		reg.Update()
	}
	if len(states) != 2 || states[0] != controls.ButtonOnHold || states[1] != controls.ButtonOnRelease {
		t.Errorf("states = %v, want [OnHold OnRelease]", states)
	}

	reg.DragControl(controls.MouseButtonLeft)
	s.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	reg.Update()
	s.HandleEvent(tcell.NewEventMouse(4, 0, tcell.Button1, tcell.ModNone))
	reg.Update()
	reg.Update()
	if !reg.IsDragging(controls.MouseButtonLeft) {
		t.Errorf("drag state = %v, want MouseDragging", reg.DragState(controls.MouseButtonLeft))
	}
}

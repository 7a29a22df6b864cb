package controls

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

// captureLog redirects the standard logger for the duration of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	})
	return &buf
}

// countingSource counts availability checks made against a ScriptedSource.
type countingSource struct {
	*ScriptedSource
	checks map[string]int
}

func (c *countingSource) ButtonAvailable(name string) bool {
	c.checks["button:"+name]++
	return c.ScriptedSource.ButtonAvailable(name)
}

func (c *countingSource) AxisAvailable(name string) bool {
	c.checks["axis:"+name]++
	return c.ScriptedSource.AxisAvailable(name)
}

func (c *countingSource) MouseButtonAvailable(b MouseButton) bool {
	c.checks["mouse:"+b.String()]++
	return c.ScriptedSource.MouseButtonAvailable(b)
}

type recordingSink struct {
	events []InputEvent
}

func (s *recordingSink) EmitEvent(e InputEvent) { s.events = append(s.events, e) }

func TestRegistrySameInstance(t *testing.T) {
	reg, src, _ := newTestRegistry(0.5)
	src.DefineButton("Jump")
	src.DefineAxis("Horizontal")

	b1, _ := reg.ButtonControl("Jump")
	src.SetButton("Jump", true)
	reg.Update()
	reg.Update()
	b2, _ := reg.ButtonControl("Jump")
	if b1 != b2 {
		t.Fatal("ButtonControl returned a new instance for the same name")
	}
	if b2.State() != ButtonHolding || b2.HoldTime() != 0.5 {
		t.Errorf("state not preserved: %v hold %v", b2.State(), b2.HoldTime())
	}

	a1, _ := reg.AxisControl("Horizontal")
	a2, _ := reg.AxisControl("Horizontal")
	d1, _ := reg.DragControl(MouseButtonMiddle)
	d2, _ := reg.DragControl(MouseButtonMiddle)
	if a1 != a2 || d1 != d2 {
		t.Error("axis or drag lookup returned a new instance")
	}
}

func TestRegistryUnknownKeyWarnsOnce(t *testing.T) {
	buf := captureLog(t)
	src := &countingSource{ScriptedSource: NewScriptedSource(), checks: make(map[string]int)}
	reg := NewRegistry(src, NewStepClock(1.0/60), RegistryConfig{})

	for i := 0; i < 3; i++ {
		if reg.Button("Nope") || reg.ButtonDown("Nope") || reg.ButtonUp("Nope") {
			t.Fatal("unknown button should read false")
		}
		if reg.ButtonState("Nope") != ButtonReleased || reg.HoldTime("Nope") != 0 {
			t.Fatal("unknown button should read Released")
		}
		if reg.Axis("Missing") != 0 || reg.AxisRaw("Missing") != 0 || reg.AxisDelta("Missing") != 0 {
			t.Fatal("unknown axis should read 0")
		}
		if reg.DragState(MouseButton(42)) != DragNone || reg.IsDragging(MouseButton(42)) {
			t.Fatal("unknown mouse button should read None")
		}
		reg.Update()
	}
	h := reg.AddButtonDownListener("Nope", func() { t.Error("listener on unknown key fired") })
	if h != (CallbackHandle{}) {
		t.Error("Add on unknown key should return a zero handle")
	}
	h.Remove()
	reg.RemoveButtonDownListener("Nope", h)
	reg.DisableButton("Nope", true)

	for _, key := range []string{"button:Nope", "axis:Missing", "mouse:button42"} {
		if n := src.checks[key]; n != 1 {
			t.Errorf("%s checked %d times, want 1", key, n)
		}
	}
	out := buf.String()
	for _, want := range []string{`button "Nope"`, `axis "Missing"`, "mouse button button42"} {
		if n := strings.Count(out, want); n != 1 {
			t.Errorf("%s logged %d times, want 1\n%s", want, n, out)
		}
	}
}

func TestRegistryRevalidate(t *testing.T) {
	captureLog(t)
	reg, src, _ := newTestRegistry(1.0 / 60)

	if _, ok := reg.ButtonControl("Late"); ok {
		t.Fatal("Late should not be available yet")
	}
	src.DefineButton("Late")
	if _, ok := reg.ButtonControl("Late"); ok {
		t.Fatal("failed keys should not be retried without Revalidate")
	}
	reg.Revalidate()
	if _, ok := reg.ButtonControl("Late"); !ok {
		t.Fatal("Revalidate should allow Late to be created")
	}
}

func TestRegistryRefreshOrder(t *testing.T) {
	reg, src, _ := newTestRegistry(1.0 / 60)
	src.DefineButton("Fire")
	src.DefineAxis("Horizontal")
	src.DefinePointerAxes("Mouse X", "Mouse Y")

	var got []string
	record := func(s string) { got = append(got, s) }

	// Register in reverse kind order; refresh order must not depend on it.
	reg.AddDoubleClickFailedListener(func(DoubleClickState) { record("doubleclick") })
	reg.AddDraggingListener(MouseButtonLeft, func(DragData) { record("dragging") })
	reg.AddPotentialDragListener(MouseButtonLeft, func(DragData) { record("potential") })
	reg.AddAxisValueListener("Horizontal", func(float64) { record("axis") })
	reg.AddButtonDownListener("Fire", func() { record("button") })

	src.Press(MouseButtonLeft)
	reg.Update()

	got = got[:0]
	src.SetButton("Fire", true)
	src.MoveTo(10, 0)
	reg.Update()

	want := []string{"button", "axis", "potential", "dragging", "doubleclick"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("refresh order = %v, want %v", got, want)
	}
}

func TestRegistryRegistrationOrder(t *testing.T) {
	reg, src, _ := newTestRegistry(1.0 / 60)
	src.DefineButton("A", "B", "C")

	var got []string
	for _, name := range []string{"C", "A", "B"} {
		reg.AddButtonDownListener(name, func() { got = append(got, name) })
	}
	src.SetButton("A", true)
	src.SetButton("B", true)
	src.SetButton("C", true)
	reg.Update()

	if strings.Join(got, "") != "CAB" {
		t.Errorf("button refresh order = %v, want [C A B]", got)
	}
}

func TestRegistryRemoveListeners(t *testing.T) {
	reg, src, _ := newTestRegistry(1.0 / 60)
	src.DefineButton("Fire", "Jump")
	src.DefineAxis("Horizontal")

	var fire, jump, axis int
	hFire := reg.AddButtonDownListener("Fire", func() { fire++ })
	reg.AddButtonDownListener("Jump", func() { jump++ })
	hAxis := reg.AddAxisValueListener("Horizontal", func(float64) { axis++ })

	// A handle from one control does not remove listeners of another.
	reg.RemoveButtonDownListener("Jump", hFire)
	// Nor does a handle for a different event kind.
	reg.RemoveButtonUpListener("Fire", hFire)

	src.SetButton("Fire", true)
	src.SetButton("Jump", true)
	reg.Update()
	if fire != 1 || jump != 1 || axis != 1 {
		t.Fatalf("fire=%d jump=%d axis=%d, want 1/1/1", fire, jump, axis)
	}

	reg.RemoveButtonDownListener("Fire", hFire)
	reg.RemoveAxisValueListener("Horizontal", hAxis)
	src.SetButton("Fire", false)
	src.SetButton("Jump", false)
	reg.Update()
	src.SetButton("Fire", true)
	src.SetButton("Jump", true)
	reg.Update()
	if fire != 1 || jump != 2 || axis != 1 {
		t.Errorf("after remove: fire=%d jump=%d axis=%d, want 1/2/1", fire, jump, axis)
	}
}

func TestRegistryRemoveDuringDispatch(t *testing.T) {
	reg, src, _ := newTestRegistry(1.0 / 60)
	src.DefineButton("Fire")

	var got []string
	var second CallbackHandle
	var first CallbackHandle
	first = reg.AddButtonDownListener("Fire", func() {
		got = append(got, "first")
		first.Remove()
		second.Remove()
	})
	second = reg.AddButtonDownListener("Fire", func() { got = append(got, "second") })
	reg.AddButtonDownListener("Fire", func() { got = append(got, "third") })

	src.SetButton("Fire", true)
	reg.Update()
	if strings.Join(got, ",") != "first,second,third" {
		t.Fatalf("first dispatch = %v", got)
	}

	got = got[:0]
	src.SetButton("Fire", false)
	reg.Update()
	src.SetButton("Fire", true)
	reg.Update()
	if strings.Join(got, ",") != "third" {
		t.Errorf("second dispatch = %v, want [third]", got)
	}
}

func TestRegistryEventSink(t *testing.T) {
	reg, src, _ := newTestRegistry(1.0 / 60)
	src.DefineButton("Fire")
	src.DefineAxis("Horizontal")
	reg.ButtonControl("Fire")
	reg.AxisControl("Horizontal")

	sink := &recordingSink{}
	reg.SetEventSink(sink)

	src.SetButton("Fire", true)
	src.SetAxisValues("Horizontal", 0.25, 1)
	reg.Update()

	want := []EventType{EventButtonStateChange, EventButtonDown, EventAxisChange, EventAxisRawChange}
	if len(sink.events) != len(want) {
		t.Fatalf("events = %+v", sink.events)
	}
	for i, e := range sink.events {
		if e.Type != want[i] {
			t.Errorf("event %d type = %v, want %v", i, e.Type, want[i])
		}
	}
	if sink.events[0].Name != "Fire" || sink.events[0].ButtonState != ButtonOnHold {
		t.Errorf("state change event = %+v", sink.events[0])
	}
	if sink.events[2].Value != 0.25 || sink.events[3].Value != 1 {
		t.Errorf("axis events = %+v %+v", sink.events[2], sink.events[3])
	}

	reg.SetEventSink(nil)
	src.SetButton("Fire", false)
	reg.Update()
	if len(sink.events) != len(want) {
		t.Error("detached sink still received events")
	}
}

// countingClock counts Poll calls.
type countingClock struct {
	*StepClock
	polls int
}

func (c *countingClock) Poll() {
	c.polls++
	c.StepClock.Poll()
}

func TestRegistryUpdatePolls(t *testing.T) {
	src := NewScriptedSource()
	clk := &countingClock{StepClock: NewStepClock(0.25)}
	reg := NewRegistry(src, clk, RegistryConfig{})

	for i := 0; i < 3; i++ {
		reg.Update()
	}
	if clk.polls != 3 {
		t.Errorf("clock polled %d times, want 3", clk.polls)
	}
	if reg.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", reg.Frame())
	}
	if clk.Now() != 0.5 {
		t.Errorf("Now = %v, want 0.5", clk.Now())
	}
}

func TestRegistryDisableUnknownIsNoop(t *testing.T) {
	captureLog(t)
	reg, _, _ := newTestRegistry(1.0 / 60)
	reg.DisableAxis("Nope", true)
	reg.DisableDrag(MouseButton(99), true)
	reg.Update()
	if reg.DragData(MouseButton(99)) != (DragData{}) {
		t.Error("unknown drag should return zero data")
	}
}

func TestRegistryLazyControlNeutralUntilUpdate(t *testing.T) {
	reg, src, _ := newTestRegistry(1.0 / 60)
	src.DefineButton("Jump")
	src.DefineAxis("Horizontal")
	src.SetButton("Jump", true)
	src.SetAxis("Horizontal", 1)
	reg.Update()

	// Neither control existed during the Update above.
	if reg.Axis("Horizontal") != 0 || reg.AxisRaw("Horizontal") != 0 {
		t.Errorf("new axis = %v/%v, want 0/0", reg.Axis("Horizontal"), reg.AxisRaw("Horizontal"))
	}
	if reg.ButtonState("Jump") != ButtonReleased || reg.Button("Jump") {
		t.Errorf("new button state = %v, want Released", reg.ButtonState("Jump"))
	}

	reg.Update()
	if reg.Axis("Horizontal") != 1 {
		t.Errorf("axis after Update = %v, want 1", reg.Axis("Horizontal"))
	}
	if reg.ButtonState("Jump") != ButtonOnHold {
		t.Errorf("button after Update = %v, want OnHold", reg.ButtonState("Jump"))
	}
}

func TestRegistryConfigZeroThresholds(t *testing.T) {
	reg := NewRegistry(NewScriptedSource(), NewStepClock(0), RegistryConfig{})
	if reg.env.dragThreshold != DefaultDragThreshold {
		t.Errorf("drag threshold = %v, want default %v", reg.env.dragThreshold, DefaultDragThreshold)
	}
	if reg.doubleClick.threshold != DefaultDoubleClickThreshold {
		t.Errorf("double-click threshold = %v, want default %v", reg.doubleClick.threshold, DefaultDoubleClickThreshold)
	}

	reg.SetDragThreshold(0)
	reg.SetDoubleClickThreshold(0)
	if reg.env.dragThreshold != 0 || reg.doubleClick.threshold != 0 {
		t.Errorf("thresholds = %v/%v, want 0/0", reg.env.dragThreshold, reg.doubleClick.threshold)
	}
}

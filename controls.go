package controls

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector used for pointer positions and drag deltas.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft    MouseButton = iota // primary (left) mouse button
	MouseButtonRight                      // secondary (right) mouse button
	MouseButtonMiddle                     // middle mouse button (scroll wheel click)
	MouseButtonBack                       // side button, usually "back"
	MouseButtonForward                    // side button, usually "forward"
)

var mouseButtonNames = [...]string{"left", "right", "middle", "back", "forward"}

func (b MouseButton) String() string {
	if int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return fmt.Sprintf("button%d", uint8(b))
}

// MarshalText implements encoding.TextMarshaler.
func (b MouseButton) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the names
// produced by String.
func (b *MouseButton) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range mouseButtonNames {
		if s == name {
			*b = MouseButton(i)
			return nil
		}
	}
	return fmt.Errorf("unknown mouse button %q", s)
}

// ButtonState is the edge/hold state of a ButtonControl. The zero value,
// ButtonReleased, is the neutral state.
type ButtonState uint8

const (
	ButtonReleased  ButtonState = iota // not held, and was not held last frame
	ButtonOnHold                       // pressed this frame (one frame wide)
	ButtonHolding                      // held for more than one frame
	ButtonOnRelease                    // released this frame (one frame wide)
)

func (s ButtonState) String() string {
	switch s {
	case ButtonReleased:
		return "Released"
	case ButtonOnHold:
		return "OnHold"
	case ButtonHolding:
		return "Holding"
	case ButtonOnRelease:
		return "OnRelease"
	default:
		return fmt.Sprintf("ButtonState(%d)", uint8(s))
	}
}

// Down reports whether the state counts as the button being held.
func (s ButtonState) Down() bool {
	return s == ButtonOnHold || s == ButtonHolding
}

// DragState is the gesture state of a DragControl. The zero value, DragNone,
// is the neutral state.
type DragState uint8

const (
	DragNone      DragState = iota // no gesture
	DragMouseDown                  // button pressed this frame
	DragWaiting                    // held, movement still under the drag threshold
	DragDragging                   // threshold exceeded, dragging events fire each frame
	DragEnded                      // released after dragging (one frame wide)
)

func (s DragState) String() string {
	switch s {
	case DragNone:
		return "None"
	case DragMouseDown:
		return "MouseDown"
	case DragWaiting:
		return "WaitingForDrag"
	case DragDragging:
		return "MouseDragging"
	case DragEnded:
		return "DragEnd"
	default:
		return fmt.Sprintf("DragState(%d)", uint8(s))
	}
}

// DoubleClickState is the state of the registry's double-click tracker. The
// zero value, DoubleClickNone, is the neutral state.
type DoubleClickState uint8

const (
	DoubleClickNone     DoubleClickState = iota // nothing happened this frame
	DoubleClickDetected                         // second click landed inside the window
	DoubleClickWaiting                          // first click recorded, waiting for the second
	DoubleClickCanceled                         // pointer moved while waiting
	DoubleClickTimedOut                         // window elapsed without a second click
)

func (s DoubleClickState) String() string {
	switch s {
	case DoubleClickNone:
		return "None"
	case DoubleClickDetected:
		return "DoubleClick"
	case DoubleClickWaiting:
		return "WaitingForSecondClick"
	case DoubleClickCanceled:
		return "MouseCancel"
	case DoubleClickTimedOut:
		return "Timeout"
	default:
		return fmt.Sprintf("DoubleClickState(%d)", uint8(s))
	}
}

// DragData is the payload delivered to drag listeners.
type DragData struct {
	Start         Vec2 // pointer position when the button went down
	Current       Vec2 // pointer position this frame
	Delta         Vec2 // previous position minus current position
	StartedOverUI bool // pointer was over UI when the gesture became a potential drag
}

// EventType identifies a kind of InputEvent forwarded to an EventSink.
type EventType uint8

const (
	EventButtonDown        EventType = iota // button pressed this frame
	EventButtonUp                           // button released this frame
	EventButtonStateChange                  // button changed state on an edge
	EventAxisChange                         // processed axis value changed
	EventAxisRawChange                      // raw axis value changed
	EventPotentialDrag                      // press held long enough to become a drag candidate
	EventDrag                               // fires each frame while dragging
	EventDragEnd                            // fires the frame after a drag is released
	EventDoubleClick                        // double-click detected
	EventDoubleClickFailed                  // double-click canceled or timed out
)

// InputEvent is a flattened record of a control event, forwarded to the
// registry's EventSink (if any) after the control's own listeners run.
type InputEvent struct {
	Type        EventType
	Name        string      // button or axis name; empty for pointer events
	Button      MouseButton // drag and double-click events
	ButtonState ButtonState
	Value       float64 // axis value, or hold time for button events
	Drag        DragData
	DoubleClick DoubleClickState
}

// EventSink receives InputEvents. See the ecs sub-module for a Donburi
// implementation.
type EventSink interface {
	EmitEvent(event InputEvent)
}

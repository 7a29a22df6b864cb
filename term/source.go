// Package term provides a terminal InputSource for controls, backed by
// tcell.
//
// Terminals report key presses but not key releases, so a key counts as
// held for HoldFrames polls after its last press or auto-repeat event. Mouse
// buttons are tracked exactly from tcell's button masks.
package term

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/controls"
)

// DefaultHoldFrames is how many polls a key stays held after its last event.
// Terminal auto-repeat is typically 25-35 events per second, so at 60 polls
// per second a held key is refreshed before it lapses.
const DefaultHoldFrames = 4

// AxisKeys binds an axis to two sets of key names.
type AxisKeys struct {
	Negative []string
	Positive []string
}

// Bindings names terminal keys for buttons and axes. Key names are either a
// single character ("w", " ") or a tcell key name ("Up", "Enter", "F1").
// "Space" is accepted for " ".
type Bindings struct {
	Buttons map[string][]string
	Axes    map[string]AxisKeys
	// PointerAxisX and PointerAxisY name axes reporting mouse movement in
	// cells since the previous poll.
	PointerAxisX string
	PointerAxisY string
}

type keyID struct {
	key tcell.Key
	ch  rune
}

type axisIDs struct {
	negative []keyID
	positive []keyID
}

// Source is a controls.InputSource fed by tcell events.
type Source struct {
	// HoldFrames overrides DefaultHoldFrames when positive.
	HoldFrames int
	// OverUI reports whether a cell position is covered by UI. Nil means
	// never.
	OverUI func(pos controls.Vec2) bool

	screen   tcell.Screen
	buttons  map[string][]keyID
	axes     map[string]axisIDs
	pointerX string
	pointerY string

	frame uint64
	seen  map[keyID]uint64

	live    tcell.ButtonMask
	cur     tcell.ButtonMask
	prev    tcell.ButtonMask
	livePos controls.Vec2
	pos     controls.Vec2
	prevPos controls.Vec2
	polled  bool
}

// NewSource creates a source reading events from screen. screen may be nil,
// in which case events must be delivered with HandleEvent.
func NewSource(screen tcell.Screen, b Bindings) (*Source, error) {
	s := &Source{
		screen:   screen,
		buttons:  make(map[string][]keyID, len(b.Buttons)),
		axes:     make(map[string]axisIDs, len(b.Axes)),
		pointerX: b.PointerAxisX,
		pointerY: b.PointerAxisY,
		seen:     make(map[keyID]uint64),
	}
	for name, keys := range b.Buttons {
		ids, err := parseKeys(keys)
		if err != nil {
			return nil, fmt.Errorf("term: button %q: %w", name, err)
		}
		s.buttons[name] = ids
	}
	for name, ax := range b.Axes {
		neg, err := parseKeys(ax.Negative)
		if err != nil {
			return nil, fmt.Errorf("term: axis %q: %w", name, err)
		}
		pos, err := parseKeys(ax.Positive)
		if err != nil {
			return nil, fmt.Errorf("term: axis %q: %w", name, err)
		}
		s.axes[name] = axisIDs{negative: neg, positive: pos}
	}
	return s, nil
}

var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[name] = k
	}
	return m
}()

func parseKeys(names []string) ([]keyID, error) {
	ids := make([]keyID, 0, len(names))
	for _, name := range names {
		if name == "Space" {
			name = " "
		}
		if utf8.RuneCountInString(name) == 1 {
			r, _ := utf8.DecodeRuneInString(name)
			ids = append(ids, keyID{key: tcell.KeyRune, ch: r})
			continue
		}
		k, ok := keysByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		ids = append(ids, keyID{key: k})
	}
	return ids, nil
}

// HandleEvent records a tcell event for the next Poll. Events other than
// keys and mouse events are ignored.
func (s *Source) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		id := keyID{key: ev.Key()}
		if id.key == tcell.KeyRune {
			id.ch = ev.Rune()
		}
		s.seen[id] = s.frame + 1
	case *tcell.EventMouse:
		x, y := ev.Position()
		s.livePos = controls.Vec2{X: float64(x), Y: float64(y)}
		s.live = ev.Buttons() & (tcell.Button1 | tcell.Button2 | tcell.Button3)
	}
}

// Poll drains pending screen events and latches mouse state for the frame.
func (s *Source) Poll() {
	if s.screen != nil {
		for s.screen.HasPendingEvent() {
			s.HandleEvent(s.screen.PollEvent())
		}
	}
	s.frame++
	s.prev = s.cur
	s.cur = s.live
	s.prevPos = s.pos
	s.pos = s.livePos
	if !s.polled {
		s.prevPos = s.pos
		s.polled = true
	}
}

func (s *Source) holdFrames() uint64 {
	if s.HoldFrames > 0 {
		return uint64(s.HoldFrames)
	}
	return DefaultHoldFrames
}

func (s *Source) held(ids []keyID) bool {
	for _, id := range ids {
		if f, ok := s.seen[id]; ok && f <= s.frame && s.frame-f < s.holdFrames() {
			return true
		}
	}
	return false
}

func mouseMask(b controls.MouseButton) (tcell.ButtonMask, bool) {
	switch b {
	case controls.MouseButtonLeft:
		return tcell.Button1, true
	case controls.MouseButtonRight:
		return tcell.Button2, true
	case controls.MouseButtonMiddle:
		return tcell.Button3, true
	}
	return 0, false
}

func (s *Source) ButtonAvailable(name string) bool {
	_, ok := s.buttons[name]
	return ok
}

func (s *Source) AxisAvailable(name string) bool {
	if name != "" && (name == s.pointerX || name == s.pointerY) {
		return true
	}
	_, ok := s.axes[name]
	return ok
}

func (s *Source) MouseButtonAvailable(b controls.MouseButton) bool {
	_, ok := mouseMask(b)
	return ok
}

func (s *Source) ButtonHeld(name string) bool {
	return s.held(s.buttons[name])
}

// Axis returns the key axis value. Terminal axes are not smoothed, so it
// equals AxisRaw.
func (s *Source) Axis(name string) float64 {
	return s.AxisRaw(name)
}

func (s *Source) AxisRaw(name string) float64 {
	if name != "" {
		switch name {
		case s.pointerX:
			return s.pos.X - s.prevPos.X
		case s.pointerY:
			return s.pos.Y - s.prevPos.Y
		}
	}
	ax, ok := s.axes[name]
	if !ok {
		return 0
	}
	var v float64
	if s.held(ax.negative) {
		v--
	}
	if s.held(ax.positive) {
		v++
	}
	return v
}

func (s *Source) MouseButtonJustPressed(b controls.MouseButton) bool {
	m, ok := mouseMask(b)
	return ok && s.cur&m != 0 && s.prev&m == 0
}

func (s *Source) MouseButtonJustReleased(b controls.MouseButton) bool {
	m, ok := mouseMask(b)
	return ok && s.cur&m == 0 && s.prev&m != 0
}

func (s *Source) PointerPosition() controls.Vec2 { return s.pos }

func (s *Source) PointerOverUI() bool {
	return s.OverUI != nil && s.OverUI(s.pos)
}

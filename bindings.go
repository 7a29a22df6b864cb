package controls

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Bindings maps button and axis names to Ebitengine inputs. It is the
// configuration consumed by EbitenSource and is usually loaded from JSON:
//
//	{
//	  "buttons": {"Jump": {"keys": ["Space"], "gamepadButtons": [0]}},
//	  "axes": {
//	    "Horizontal": {"negative": ["A", "ArrowLeft"], "positive": ["D", "ArrowRight"]},
//	    "Mouse X": {"pointer": "x"}
//	  }
//	}
type Bindings struct {
	Buttons map[string]ButtonBinding `json:"buttons,omitempty"`
	Axes    map[string]AxisBinding   `json:"axes,omitempty"`
}

// ButtonBinding lists every input that holds a named button. Any one of
// them being held is enough.
type ButtonBinding struct {
	Keys           []ebiten.Key                   `json:"keys,omitempty"`
	MouseButtons   []MouseButton                  `json:"mouseButtons,omitempty"`
	GamepadButtons []ebiten.StandardGamepadButton `json:"gamepadButtons,omitempty"`
}

// Pointer axis kinds for AxisBinding.Pointer.
const (
	PointerAxisX      = "x"      // cursor movement since last frame, horizontal
	PointerAxisY      = "y"      // cursor movement since last frame, vertical
	PointerAxisWheelX = "wheelX" // horizontal wheel
	PointerAxisWheelY = "wheelY" // vertical wheel
)

// AxisBinding describes one named axis. Key pairs produce a raw value of
// -1, 0 or 1 and a processed value that moves toward it at Sensitivity
// units per second (or back to zero at Gravity units per second) along the
// Ease curve. Gamepad and pointer axes are not smoothed.
type AxisBinding struct {
	Negative    []ebiten.Key                `json:"negative,omitempty"`
	Positive    []ebiten.Key                `json:"positive,omitempty"`
	GamepadAxis *ebiten.StandardGamepadAxis `json:"gamepadAxis,omitempty"`
	Pointer     string                      `json:"pointer,omitempty"`

	Sensitivity float64 `json:"sensitivity,omitempty"` // default 3
	Gravity     float64 `json:"gravity,omitempty"`     // default 3
	Snap        bool    `json:"snap,omitempty"`        // jump to 0 when reversing direction
	Invert      bool    `json:"invert,omitempty"`
	Scale       float64 `json:"scale,omitempty"` // pointer axes only, default 1
	Ease        string  `json:"ease,omitempty"`  // see easeFuncs, default "linear"
}

const (
	defaultAxisSensitivity = 3
	defaultAxisGravity     = 3
)

var easeFuncs = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
	"inExpo":     ease.InExpo,
	"outExpo":    ease.OutExpo,
}

// easeFunc returns the tween function for the binding, defaulting to linear.
func (b AxisBinding) easeFunc() ease.TweenFunc {
	if fn, ok := easeFuncs[b.Ease]; ok {
		return fn
	}
	return ease.Linear
}

func (b *AxisBinding) applyDefaults() {
	if b.Sensitivity == 0 {
		b.Sensitivity = defaultAxisSensitivity
	}
	if b.Gravity == 0 {
		b.Gravity = defaultAxisGravity
	}
	if b.Scale == 0 {
		b.Scale = 1
	}
}

func (b AxisBinding) validate() error {
	switch b.Pointer {
	case "", PointerAxisX, PointerAxisY, PointerAxisWheelX, PointerAxisWheelY:
	default:
		return fmt.Errorf("unknown pointer axis %q", b.Pointer)
	}
	if b.Ease != "" {
		if _, ok := easeFuncs[b.Ease]; !ok {
			return fmt.Errorf("unknown ease %q", b.Ease)
		}
	}
	if b.Sensitivity < 0 || b.Gravity < 0 {
		return fmt.Errorf("sensitivity and gravity must not be negative")
	}
	return nil
}

// LoadBindings parses JSON binding data, validates it and fills defaults.
func LoadBindings(jsonData []byte) (*Bindings, error) {
	var b Bindings
	if err := json.Unmarshal(jsonData, &b); err != nil {
		return nil, fmt.Errorf("parse bindings: %w", err)
	}
	for name, ax := range b.Axes {
		if err := ax.validate(); err != nil {
			return nil, fmt.Errorf("parse bindings: axis %q: %w", name, err)
		}
	}
	b.normalize()
	return &b, nil
}

// normalize allocates nil maps and fills axis defaults.
func (b *Bindings) normalize() {
	if b.Buttons == nil {
		b.Buttons = make(map[string]ButtonBinding)
	}
	if b.Axes == nil {
		b.Axes = make(map[string]AxisBinding)
	}
	for name, ax := range b.Axes {
		ax.applyDefaults()
		b.Axes[name] = ax
	}
}

// LoadBindingsFromSettings reads the bindings stored at path (gjson syntax,
// e.g. "input.bindings") inside a larger settings document.
func LoadBindingsFromSettings(settings []byte, path string) (*Bindings, error) {
	res := gjson.GetBytes(settings, path)
	if !res.Exists() {
		return nil, fmt.Errorf("parse bindings: settings path %q not found", path)
	}
	if !res.IsObject() {
		return nil, fmt.Errorf("parse bindings: settings path %q is not an object", path)
	}
	return LoadBindings([]byte(res.Raw))
}

// SaveBindingsToSettings writes b at path (sjson syntax) inside settings and
// returns the updated document. Other settings are preserved.
func SaveBindingsToSettings(settings []byte, path string, b *Bindings) ([]byte, error) {
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("encode bindings: %w", err)
	}
	if len(settings) == 0 {
		settings = []byte("{}")
	}
	out, err := sjson.SetRawBytes(settings, path, raw)
	if err != nil {
		return nil, fmt.Errorf("encode bindings: %w", err)
	}
	return out, nil
}

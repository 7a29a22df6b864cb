package ecs

import (
	"github.com/phanxgames/controls"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for controls input events.
// Subscribe to this in your ECS systems to receive button, axis, drag and
// double-click events.
var InputEventType = events.NewEventType[controls.InputEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Input
// events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) controls.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event controls.InputEvent) {
	InputEventType.Publish(s.world, event)
}

// Package ecs provides ECS adapters for controls' input event bridge.
//
// The primary adapter is [NewDonburiSink], which forwards registry events
// (button edges, axis changes, drags, double clicks) into a [Donburi] world
// as typed events. Subscribe to [InputEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	registry.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

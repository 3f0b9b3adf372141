// Package ecs provides ECS adapters for sapling's UI event system.
//
// The primary adapter is [NewDonburiSink], which bridges sapling UI events
// (pointer, window move/resize) into a [Donburi] world as typed events.
// Subscribe to [UIEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	stage.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package ecs provides ECS adapters for sapling.
package ecs

import (
	"github.com/phanxgames/sapling"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// UIEventType is the Donburi event type for sapling UI events. Subscribe to
// this in your ECS systems to receive pointer and window geometry events.
var UIEventType = events.NewEventType[sapling.UIEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. UI events
// are published to UIEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) sapling.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event sapling.UIEvent) {
	UIEventType.Publish(s.world, event)
}

// Package ecs provides ECS adapters for parallax.
package ecs

import (
	"github.com/phanxgames/parallax"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TriggerEventType is the Donburi event type for parallax reveal triggers.
// Subscribe to this in your ECS systems to react when a child is revealed.
var TriggerEventType = events.NewEventType[parallax.TriggerEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Trigger events are published to TriggerEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) parallax.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitTrigger(event parallax.TriggerEvent) {
	TriggerEventType.Publish(s.world, event)
}

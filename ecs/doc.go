// Package ecs provides ECS adapters for parallax's reveal events.
//
// The primary adapter is [NewDonburiSink], which forwards threshold-mode
// reveal triggers into a [Donburi] world as typed events. Subscribe to
// [TriggerEventType] in your ECS systems to receive them. Set
// [parallax.Node.UserData] to an entity handle to map a trigger back to its
// entity.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	container.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package ecs bridges gridkit event queues into a [Donburi] world.
//
// [Forward] polls an [gridkit.EventQueue] and republishes each event as a
// typed Donburi event. Subscribe to [GridEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	ecs.GridEventType.Subscribe(world, onTileEvent)
//
//	// each frame, after picker.Update():
//	ecs.Forward(world, queue, gridkit.PollHold)
//	queue.Reset()
//	ecs.GridEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

package ecs

import (
	"github.com/phanxgames/gridkit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GridEventType is the Donburi event type for gridkit queue events.
var GridEventType = events.NewEventType[gridkit.Event]()

// Forward polls q from its cursor until the end-of-queue signal and
// publishes every event to world. It returns the number of events published.
//
// With gridkit.PollDelete the forwarded events leave the queue, but the
// queue's skip-on-delete cursor means some may stay behind for the next call.
// Published events are delivered by GridEventType.ProcessEvents.
func Forward(world donburi.World, q *gridkit.EventQueue, flag gridkit.PollFlag) int {
	n := 0
	for {
		e, ok := q.Poll(flag)
		if !ok {
			return n
		}
		GridEventType.Publish(world, e)
		n++
	}
}

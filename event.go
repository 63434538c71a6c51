package gridkit

// EventType identifies a kind of event. Codes are defined by the caller;
// gridkit reserves none.
type EventType uint16

// Event is a typed rectangle, usually the rect of the tile it concerns.
type Event struct {
	Type EventType
	Rect Rect
}

// PollFlag selects whether a polled event stays in the queue.
type PollFlag uint8

const (
	PollDelete PollFlag = iota // remove the returned event from the queue
	PollHold                   // leave the returned event in place
)

// EventQueue is an insertion-ordered event list with a single read cursor
// shared by Poll and PollType.
//
// Polling past the last event rewinds the cursor and reports no event, so a
// frame loop can drain the queue with:
//
//	for {
//		ev, ok := q.Poll(gridkit.PollHold)
//		if !ok {
//			break
//		}
//		// handle ev
//	}
//
// Storage is resized exactly on every push and removal; capacity always
// equals Len. An EventQueue is not safe for concurrent use.
type EventQueue struct {
	events []Event
	cursor int
}

// NewEventQueue creates an empty queue with the cursor at 0.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Len returns the number of events in the queue.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.events)
}

// Cursor returns the index of the next event Poll will return.
func (q *EventQueue) Cursor() int {
	if q == nil {
		return 0
	}
	return q.cursor
}

// Rewind moves the cursor back to the first event.
func (q *EventQueue) Rewind() {
	q.cursor = 0
}

// Events returns a copy of the queued events in order.
func (q *EventQueue) Events() []Event {
	out := make([]Event, len(q.events))
	copy(out, q.events)
	return out
}

// Push appends e to the queue, growing storage by exactly one slot.
func (q *EventQueue) Push(e Event) {
	n := len(q.events)
	next := make([]Event, n+1)
	copy(next, q.events)
	next[n] = e
	q.events = next
}

// Poll returns the event at the cursor and advances the cursor.
//
// An empty queue reports false and leaves the cursor alone. A cursor at or
// past the end is rewound to 0 and reports false; this is the end-of-queue
// signal. With PollDelete the event is removed before the cursor advances,
// so the event that slid into its slot is skipped until the next pass.
func (q *EventQueue) Poll(flag PollFlag) (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	if q.cursor >= len(q.events) {
		q.cursor = 0
		return Event{}, false
	}
	return q.take(flag), true
}

// PollType is Poll restricted to events of type t. Events of other types
// between the cursor and the match are skipped but never removed. When no
// match remains the cursor is left at the end and false is returned; the
// next poll rewinds.
func (q *EventQueue) PollType(t EventType, flag PollFlag) (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	if q.cursor >= len(q.events) {
		q.cursor = 0
		return Event{}, false
	}
	for q.cursor < len(q.events) {
		if q.events[q.cursor].Type == t {
			return q.take(flag), true
		}
		q.cursor++
	}
	return Event{}, false
}

// take returns the event at the cursor, removes it for PollDelete, and
// advances the cursor.
func (q *EventQueue) take(flag PollFlag) Event {
	e := q.events[q.cursor]
	if flag == PollDelete {
		q.Remove(q.cursor)
	}
	q.cursor++
	// Deleting the last event can leave the cursor one past the end.
	if q.cursor > len(q.events) {
		q.cursor = len(q.events)
	}
	return e
}

// Remove deletes the event at index, shifting later events down one slot.
// Out-of-range indices are ignored.
func (q *EventQueue) Remove(index int) {
	n := len(q.events)
	if index < 0 || index >= n {
		return
	}
	next := make([]Event, n-1)
	copy(next, q.events[:index])
	copy(next[index:], q.events[index+1:])
	q.events = next
	if q.cursor > len(q.events) {
		q.cursor = len(q.events)
	}
}

// RemoveType deletes every event of type t.
func (q *EventQueue) RemoveType(t EventType) {
	removed := 0
	for i := 0; i < len(q.events); {
		if q.events[i].Type == t {
			// Later events shift into slot i; check it again.
			q.Remove(i)
			removed++
			continue
		}
		i++
	}
	if removed > 0 {
		Logger().Debug("event queue compacted", "type", t, "removed", removed, "len", len(q.events))
	}
}

// Delete releases the queue storage. The queue is empty afterwards and may
// be reused.
func (q *EventQueue) Delete() {
	q.events = nil
	q.cursor = 0
}

// Reset discards all events and rewinds the cursor. It is a no-op on a nil
// queue.
func (q *EventQueue) Reset() {
	if q == nil {
		return
	}
	q.Delete()
}

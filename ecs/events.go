package ecs

// Event is a typed payload routed through the world event queue.
type Event struct {
	Type string
	Data any
}

// EventQueue is a simple FIFO queue. Producers push during their
// update; a consumer later in the same tick drains. Anything left at
// the end of the tick is discarded by the scheduler.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

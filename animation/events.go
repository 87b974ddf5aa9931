package animation

import "fmt"

// EventKind identifies a collection notification.
type EventKind int

const (
	EventPreAdd EventKind = iota
	EventPostAdd
	EventPreRemove
	EventPostRemove
	EventCountChanged
	EventCurrentIndexChanged
	EventRenamed
)

func (k EventKind) String() string {
	switch k {
	case EventPreAdd:
		return "pre_add"
	case EventPostAdd:
		return "post_add"
	case EventPreRemove:
		return "pre_remove"
	case EventPostRemove:
		return "post_remove"
	case EventCountChanged:
		return "count_changed"
	case EventCurrentIndexChanged:
		return "current_index_changed"
	case EventRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// Event is delivered to handlers. Index is the affected position for add,
// remove and rename events, the new current index for EventCurrentIndexChanged,
// and the new count for EventCountChanged.
type Event struct {
	Kind  EventKind
	Index int
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
}

// Handler receives collection events synchronously. Handlers may read the
// collection; pre events fire before the change and post events after it.
type Handler func(c *Collection, evt Event)

type subscription struct {
	id      int
	handler Handler
}

// emitter dispatches events to handlers in subscription order.
type emitter struct {
	nextID int
	subs   []subscription
}

func (e *emitter) subscribe(h Handler) int {
	e.nextID++
	e.subs = append(e.subs, subscription{id: e.nextID, handler: h})
	return e.nextID
}

func (e *emitter) unsubscribe(id int) {
	for i, s := range e.subs {
		if s.id == id {
			e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
			return
		}
	}
}

func (e *emitter) emit(c *Collection, evt Event) {
	if len(e.subs) == 0 {
		return
	}
	// Copy so handlers can unsubscribe while being called.
	subs := append([]subscription(nil), e.subs...)
	for _, s := range subs {
		if s.handler != nil {
			s.handler(c, evt)
		}
	}
}

// EventQueue records events for consumers that read them later.
type EventQueue struct {
	items []Event
}

// Handler returns a Handler that appends to the queue.
func (q *EventQueue) Handler() Handler {
	return func(_ *Collection, evt Event) {
		q.Push(evt)
	}
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len reports how many events are queued.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

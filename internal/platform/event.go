package platform

import (
	"github.com/vovakirdan/pong-clone/internal/kbd"
)

// EventType classifies an input event.
type EventType int

const (
	EventOther EventType = iota
	EventQuit            // Window closed or quit requested
	EventKey             // Discrete key press
	EventResize          // Output surface changed size
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "Quit"
	case EventKey:
		return "Key"
	case EventResize:
		return "Resize"
	default:
		return "Other"
	}
}

// Event is a discrete input event.
type Event struct {
	Type EventType
	Key  kbd.Scancode // Set for EventKey
	W, H int          // Set for EventResize
}

// EventQueue is a FIFO EventSource. Front ends that receive events on
// callbacks push them here and the game drains them once per frame.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return len(q.events)
}

// PollEvent implements EventSource.
func (q *EventQueue) PollEvent() (Event, bool) {
	if len(q.events) == 0 {
		return Event{}, false
	}
	e := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return e, true
}

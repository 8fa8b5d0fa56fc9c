package platform

import (
	"errors"
	"testing"
	"time"
)

func TestEventQueueFIFO(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventKey})
	q.Push(Event{Type: EventQuit})

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", q.Len())
	}

	e, ok := q.PollEvent()
	if !ok || e.Type != EventKey {
		t.Errorf("first PollEvent() = %v, %v; expected Key, true", e.Type, ok)
	}
	e, ok = q.PollEvent()
	if !ok || e.Type != EventQuit {
		t.Errorf("second PollEvent() = %v, %v; expected Quit, true", e.Type, ok)
	}
	if _, ok := q.PollEvent(); ok {
		t.Error("PollEvent() on empty queue should return false")
	}
}

func TestInitErrorUnwrap(t *testing.T) {
	cause := errors.New("no display")
	err := error(NewInitError("window", cause))

	if !errors.Is(err, cause) {
		t.Error("InitError should unwrap to its cause")
	}

	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Stage != "window" {
		t.Errorf("errors.As failed or wrong stage: %+v", initErr)
	}

	expected := "unable to initialise window: no display"
	if err.Error() != expected {
		t.Errorf("Error() = %q, expected %q", err.Error(), expected)
	}
}

func TestManualClock(t *testing.T) {
	c := &ManualClock{T: time.Unix(100, 0)}
	c.Advance(16 * time.Millisecond)

	if got := c.Now().Sub(time.Unix(100, 0)); got != 16*time.Millisecond {
		t.Errorf("Advance() moved clock by %v, expected 16ms", got)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventQuit.String() != "Quit" {
		t.Errorf("EventQuit.String() = %q", EventQuit.String())
	}
	if EventType(99).String() != "Other" {
		t.Errorf("unknown type should print Other")
	}
}

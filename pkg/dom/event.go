// Package dom provides the small, in-memory DOM that drawer components bind to.
//
// It models exactly what a drawer needs from a page: elements with attributes
// and inline styles, a window with a viewport size and user agent, focus, and
// event targets whose listeners are registered and removed by token so each
// component instance owns its own subscriptions.
package dom

import "time"

// Event types dispatched to drawer targets.
const (
	EventPointerDown   = "pointerdown"
	EventPointerMove   = "pointermove"
	EventPointerUp     = "pointerup"
	EventPointerCancel = "pointercancel"
	EventClick         = "click"
	EventKeyDown       = "keydown"
	EventResize        = "resize"
)

// Event is a dispatched DOM event.
type Event struct {
	Type      string
	PointerID int
	ClientX   float64
	ClientY   float64
	Key       string
	TimeStamp time.Time

	// Target is the node the event was dispatched to; nil for window events.
	Target *Node
	// CurrentTarget is the node whose listener is running.
	CurrentTarget *Node

	stopped bool
}

// StopPropagation prevents the event from bubbling further.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Listener handles an event.
type Listener func(*Event)

// ListenerToken identifies a registered listener.
type ListenerToken uint64

type listenerEntry struct {
	token ListenerToken
	fn    Listener
}

// EventTarget keeps listeners per event type, in registration order.
// The zero value is ready to use.
type EventTarget struct {
	listeners map[string][]listenerEntry
	next      ListenerToken
}

// AddEventListener registers fn for typ and returns its token.
func (t *EventTarget) AddEventListener(typ string, fn Listener) ListenerToken {
	if t.listeners == nil {
		t.listeners = make(map[string][]listenerEntry)
	}
	t.next++
	t.listeners[typ] = append(t.listeners[typ], listenerEntry{token: t.next, fn: fn})
	return t.next
}

// RemoveEventListener removes the listener registered under token.
// It reports whether a listener was removed.
func (t *EventTarget) RemoveEventListener(token ListenerToken) bool {
	for typ, entries := range t.listeners {
		for i, e := range entries {
			if e.token != token {
				continue
			}
			t.listeners[typ] = append(entries[:i:i], entries[i+1:]...)
			if len(t.listeners[typ]) == 0 {
				delete(t.listeners, typ)
			}
			return true
		}
	}
	return false
}

// ListenerCount returns the number of listeners registered for typ.
func (t *EventTarget) ListenerCount(typ string) int {
	return len(t.listeners[typ])
}

// fire runs the listeners for e.Type. The slice is copied so listeners
// may add or remove registrations while running.
func (t *EventTarget) fire(e *Event) {
	entries := t.listeners[e.Type]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]listenerEntry, len(entries))
	copy(snapshot, entries)
	for _, entry := range snapshot {
		entry.fn(e)
	}
}

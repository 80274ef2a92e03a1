// Package notify provides value-changed notification for an editing session.
//
// The notify package implements an observer pattern that lets a host (and
// any number of hooks) subscribe to buffer changes and receive callbacks
// whenever the session writes a new value.
package notify

import (
	"sync"

	"github.com/dshills/caret/internal/engine/textrange"
)

// Source identifies what produced a change.
type Source int

const (
	// SourceExternal is a change made by the host's default handling.
	SourceExternal Source = iota

	// SourceEdit is a change computed by an editing transform.
	SourceEdit

	// SourceUndo is a change restored by undo.
	SourceUndo

	// SourceRedo is a change restored by redo.
	SourceRedo
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceExternal:
		return "external"
	case SourceEdit:
		return "edit"
	case SourceUndo:
		return "undo"
	case SourceRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// Change is a value-changed event.
type Change struct {
	// Snapshot is the buffer state after the change.
	Snapshot textrange.TextRange

	// Source is what produced the change.
	Source Source
}

// Value returns the new text.
func (c Change) Value() string {
	return c.Snapshot.Value
}

// Observer is called when the value changes.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s != nil && s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

type entry struct {
	id       uint64
	observer Observer
}

// Notifier delivers changes to observers synchronously, in the order they
// subscribed.
type Notifier struct {
	mu        sync.RWMutex
	observers []entry
	nextID    uint64
	closed    bool
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.observers = append(n.observers, entry{id: id, observer: observer})

	return &Subscription{id: id, notifier: n}
}

// Notify sends a change to every observer.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}
	observers := make([]Observer, len(n.observers))
	for i, e := range n.observers {
		observers[i] = e.observer
	}
	n.mu.RUnlock()

	// Call observers outside the lock
	for _, obs := range observers {
		obs(change)
	}
}

// Len returns the number of active subscriptions.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.observers)
}

// Close drops all observers; later notifications are discarded.
// It is safe to call Close multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.observers = nil
}

// unsubscribe removes an observer by ID.
func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, e := range n.observers {
		if e.id == id {
			n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
			return
		}
	}
}

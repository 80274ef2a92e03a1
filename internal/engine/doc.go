// Package engine provides the editing session for a plain-text input
// surface.
//
// The engine package is the facade that ties together the snapshot
// history, the undo/redo controller and the caret-aware edit transforms,
// and connects them to a host-owned text buffer.
//
// # Architecture
//
// The session is built on several sub-packages:
//
//   - textrange: the immutable (value, selectionStart, selectionEnd) snapshot
//   - history: the bounded snapshot log with word coalescing, plus undo/redo
//   - transform: pure edit computations and the key dispatcher
//
// The host owns the live text control. The session reads and writes it only
// through the Buffer interface and reports every value it writes to
// subscribed observers.
//
// # Basic Usage
//
//	s := engine.New(buf,
//	    engine.WithConfig(transform.Config{TabSize: 4, InsertSpaces: true}),
//	    engine.WithOnChange(func(c notify.Change) { render(c.Value()) }),
//	)
//
//	// A key press: the session decides whether to take it over.
//	if d := s.HandleKey(ev); !d.Intercepted() {
//	    buf.DefaultEdit(ev)                  // host's own handling
//	    s.OnExternalChange(buf.Snapshot())   // record what the host did
//	}
//
// # Entry Points
//
// New captures the buffer's current snapshot as the first history record.
// After that, OnExternalChange, HandleKey, Undo and Redo are the only ways
// history changes.
//
// # Thread Safety
//
// A Session is not thread-safe. All calls must come from the host's event
// loop, one event at a time.
package engine

// Package history provides undo/redo functionality for the editing engine.
//
// The history is a bounded, linear log of snapshots plus a cursor. Each
// committed edit stores the complete resulting TextRange, so undo and redo
// are simple moves of the cursor followed by restoring a snapshot.
//
// # Records
//
// A Record is a TextRange plus the time it was captured. The Store keeps
// records in order and an offset pointing at the record that represents the
// current buffer state; -1 means the history is empty.
//
// # Recording
//
//	store := history.NewStore()
//	store.Record(textrange.Caret("", 0), false)
//	store.Record(textrange.Caret("a", 1), false)
//
// Recording a new edit discards every record after the offset, so the
// history never branches. When the log grows past its limit (100 records by
// default) the oldest records are dropped and the offset shifts down.
//
// # Coalescing
//
// Records made with overwrite=true may replace the current record instead
// of appending. This happens when the previous record is younger than the
// time gap (3 seconds by default) and the word before the caret in the new
// snapshot extends the word before the caret in the previous one:
//
//	store.Record(textrange.Caret("x fo", 4), true)
//	store.Record(textrange.Caret("x foo", 5), true) // replaces "x fo"
//
// This keeps undo at roughly per-word granularity while typing.
//
// # Undo and Redo
//
// The Controller moves the offset through the Store:
//
//	ctl := history.NewController(store)
//	if tr, ok := ctl.Undo(); ok {
//	    // apply tr to the buffer
//	}
//
// Both moves are no-ops at the ends of the history.
//
// # Thread Safety
//
// Store and Controller are not thread-safe. They are owned by a single
// editing session and driven from one event loop.
package history

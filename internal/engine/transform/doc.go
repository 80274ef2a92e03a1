// Package transform computes caret-aware edits for a plain-text buffer.
//
// Every function in this package is pure: it takes the current TextRange
// and a Config and returns the TextRange that should replace it. Nothing
// here touches history or the host buffer.
//
// Edits:
//
//   - InsertTab: insert the indent unit at a collapsed caret
//   - IndentLines: prefix every selected line with the indent unit
//   - OutdentLines: strip one indent unit from every selected line
//   - Dedent: remove a whole indent unit on Backspace
//   - NewlineIndent: carry the current line's indentation onto a new line
//   - Wrap: surround a selection with a bracket or quote pair
//
// Resolve maps a key.Event onto one of these edits, onto undo/redo, or onto
// PassThrough, in which case the host performs its default handling:
//
//	d := transform.Resolve(ev, snapshot, cfg)
//	if d.Intercepted() {
//	    // suppress the host's default action
//	}
package transform

// Package textrange provides the immutable text snapshot shared by the
// editing engine.
//
// A TextRange pairs a flat text value with a selection span expressed as
// byte offsets into that value:
//
//	tr := textrange.New("hello world", 6, 11) // "world" selected
//	tr.IsCollapsed()                           // false
//	tr.Selected()                              // "world"
//
// When SelectionStart == SelectionEnd the range represents a caret with no
// selected text. Offsets always satisfy
//
//	0 <= SelectionStart <= SelectionEnd <= len(Value)
//
// New clamps its arguments so the invariant holds for every constructed
// value. TextRange values are never mutated; edits produce new values.
package textrange

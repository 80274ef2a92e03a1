package textrange

import "fmt"

// TextRange is a text value paired with a caret/selection span.
// TextRange is an immutable value type.
type TextRange struct {
	Value          string
	SelectionStart int
	SelectionEnd   int
}

// New creates a TextRange, clamping the selection into the value and
// ordering it so that start <= end.
func New(value string, start, end int) TextRange {
	start = clamp(start, len(value))
	end = clamp(end, len(value))
	if end < start {
		start, end = end, start
	}
	return TextRange{Value: value, SelectionStart: start, SelectionEnd: end}
}

// Caret creates a TextRange with a collapsed selection at offset.
func Caret(value string, offset int) TextRange {
	return New(value, offset, offset)
}

func clamp(offset, max int) int {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}

// IsCollapsed returns true if the selection has no extent (just a caret).
func (r TextRange) IsCollapsed() bool {
	return r.SelectionStart == r.SelectionEnd
}

// Len returns the length of the selection in bytes.
func (r TextRange) Len() int {
	return r.SelectionEnd - r.SelectionStart
}

// Valid reports whether the selection lies inside the value.
func (r TextRange) Valid() bool {
	return 0 <= r.SelectionStart &&
		r.SelectionStart <= r.SelectionEnd &&
		r.SelectionEnd <= len(r.Value)
}

// Selected returns the selected text.
func (r TextRange) Selected() string {
	return r.Value[r.SelectionStart:r.SelectionEnd]
}

// BeforeCaret returns the text preceding the selection start.
func (r TextRange) BeforeCaret() string {
	return r.Value[:r.SelectionStart]
}

// AfterSelection returns the text following the selection end.
func (r TextRange) AfterSelection() string {
	return r.Value[r.SelectionEnd:]
}

// WithSelection returns a copy of r with a new selection over the same value.
func (r TextRange) WithSelection(start, end int) TextRange {
	return New(r.Value, start, end)
}

// ReplaceSelection returns the range produced by replacing the selected
// text with text and collapsing the caret after the insertion.
func (r TextRange) ReplaceSelection(text string) TextRange {
	caret := r.SelectionStart + len(text)
	return TextRange{
		Value:          r.BeforeCaret() + text + r.AfterSelection(),
		SelectionStart: caret,
		SelectionEnd:   caret,
	}
}

// Equals returns true if both ranges have the same value and selection.
func (r TextRange) Equals(other TextRange) bool {
	return r == other
}

// SameSelection returns true if both ranges select the same span,
// regardless of value.
func (r TextRange) SameSelection(other TextRange) bool {
	return r.SelectionStart == other.SelectionStart && r.SelectionEnd == other.SelectionEnd
}

// String returns a compact representation for debugging.
func (r TextRange) String() string {
	if r.IsCollapsed() {
		return fmt.Sprintf("TextRange(%q, Caret(%d))", r.Value, r.SelectionStart)
	}
	return fmt.Sprintf("TextRange(%q, %d→%d)", r.Value, r.SelectionStart, r.SelectionEnd)
}

package terminal

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/caret/internal/engine/textrange"
	"github.com/dshills/caret/internal/input/key"
)

// TextArea is a plain-text control with a caret and selection. It
// implements engine.Buffer.
//
// The selection runs from anchor to caret; the anchor stays put while
// Shift extends the selection.
type TextArea struct {
	value  string
	anchor int
	caret  int
}

// NewTextArea creates a text area holding value with the caret at the
// start.
func NewTextArea(value string) *TextArea {
	return &TextArea{value: value}
}

// Snapshot returns the value and ordered selection.
func (t *TextArea) Snapshot() textrange.TextRange {
	return textrange.New(t.value, t.anchor, t.caret)
}

// SetSnapshot replaces the value and selection.
func (t *TextArea) SetSnapshot(tr textrange.TextRange) {
	tr = textrange.New(tr.Value, tr.SelectionStart, tr.SelectionEnd)
	t.value = tr.Value
	t.anchor = tr.SelectionStart
	t.caret = tr.SelectionEnd
}

// Value returns the text.
func (t *TextArea) Value() string {
	return t.value
}

// Caret returns the byte offset of the caret.
func (t *TextArea) Caret() int {
	return t.caret
}

// Insert replaces the selection with text and collapses the caret after it.
func (t *TextArea) Insert(text string) {
	t.SetSnapshot(t.Snapshot().ReplaceSelection(text))
}

// Apply performs the default handling of ev and reports whether the value
// changed. Caret movement alone returns false.
func (t *TextArea) Apply(ev key.Event) bool {
	extend := ev.Modifiers.HasShift()

	switch ev.Key {
	case key.KeyRune:
		if !ev.IsChar() {
			return false
		}
		t.Insert(string(ev.Rune))
		return true

	case key.KeyEnter:
		t.Insert("\n")
		return true

	case key.KeyBackspace:
		return t.deleteBackward()

	case key.KeyDelete:
		return t.deleteForward()

	case key.KeyLeft:
		t.moveHorizontal(-1, extend)
	case key.KeyRight:
		t.moveHorizontal(1, extend)
	case key.KeyUp:
		t.moveTo(t.verticalTarget(-1), extend)
	case key.KeyDown:
		t.moveTo(t.verticalTarget(1), extend)
	case key.KeyHome:
		t.moveTo(lineStart(t.value, t.caret), extend)
	case key.KeyEnd:
		t.moveTo(lineEnd(t.value, t.caret), extend)
	case key.KeyPageUp:
		t.moveTo(0, extend)
	case key.KeyPageDown:
		t.moveTo(len(t.value), extend)
	}
	return false
}

func (t *TextArea) deleteBackward() bool {
	tr := t.Snapshot()
	if !tr.IsCollapsed() {
		t.Insert("")
		return true
	}
	if t.caret == 0 {
		return false
	}
	prev := prevBoundary(t.value, t.caret)
	t.value = t.value[:prev] + t.value[t.caret:]
	t.anchor, t.caret = prev, prev
	return true
}

func (t *TextArea) deleteForward() bool {
	tr := t.Snapshot()
	if !tr.IsCollapsed() {
		t.Insert("")
		return true
	}
	if t.caret >= len(t.value) {
		return false
	}
	next := nextBoundary(t.value, t.caret)
	t.value = t.value[:t.caret] + t.value[next:]
	return true
}

// moveHorizontal moves the caret one grapheme. Without extend, a
// selection collapses to its edge in the direction of travel.
func (t *TextArea) moveHorizontal(dir int, extend bool) {
	tr := t.Snapshot()
	if !extend && !tr.IsCollapsed() {
		edge := tr.SelectionStart
		if dir > 0 {
			edge = tr.SelectionEnd
		}
		t.moveTo(edge, false)
		return
	}

	target := t.caret
	switch {
	case dir < 0 && t.caret > 0:
		target = prevBoundary(t.value, t.caret)
	case dir > 0 && t.caret < len(t.value):
		target = nextBoundary(t.value, t.caret)
	}
	t.moveTo(target, extend)
}

func (t *TextArea) moveTo(offset int, extend bool) {
	t.caret = offset
	if !extend {
		t.anchor = offset
	}
}

// verticalTarget returns the offset on the adjacent line closest to the
// caret's display column.
func (t *TextArea) verticalTarget(dir int) int {
	start := lineStart(t.value, t.caret)
	column := uniseg.StringWidth(t.value[start:t.caret])

	var target int
	if dir < 0 {
		if start == 0 {
			return 0
		}
		target = lineStart(t.value, start-1)
	} else {
		end := lineEnd(t.value, t.caret)
		if end == len(t.value) {
			return len(t.value)
		}
		target = end + 1
	}
	return offsetAtColumn(t.value, target, column)
}

// offsetAtColumn walks the line beginning at start until column display
// cells are covered.
func offsetAtColumn(value string, start, column int) int {
	end := lineEnd(value, start)
	offset, width := start, 0
	state := -1
	for offset < end && width < column {
		var cluster string
		var w int
		cluster, _, w, state = uniseg.FirstGraphemeClusterInString(value[offset:end], state)
		if width+w > column {
			break
		}
		width += w
		offset += len(cluster)
	}
	return offset
}

func lineStart(value string, offset int) int {
	return strings.LastIndexByte(value[:offset], '\n') + 1
}

func lineEnd(value string, offset int) int {
	if i := strings.IndexByte(value[offset:], '\n'); i >= 0 {
		return offset + i
	}
	return len(value)
}

// nextBoundary returns the end of the grapheme cluster starting at offset.
func nextBoundary(value string, offset int) int {
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(value[offset:], -1)
	return offset + len(cluster)
}

// prevBoundary returns the start of the grapheme cluster ending at offset.
// A newline is always its own cluster.
func prevBoundary(value string, offset int) int {
	start := lineStart(value, offset)
	if start == offset {
		return offset - 1
	}

	prev, pos := start, start
	state := -1
	for pos < offset {
		var cluster string
		prev = pos
		cluster, _, _, state = uniseg.FirstGraphemeClusterInString(value[pos:offset], state)
		pos += len(cluster)
	}
	return prev
}

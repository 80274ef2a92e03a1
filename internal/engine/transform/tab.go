package transform

import (
	"strings"

	"github.com/dshills/caret/internal/engine/textrange"
)

// Tab indents the selected lines, or inserts an indent at the caret when
// nothing is selected.
func Tab(tr textrange.TextRange, cfg Config) textrange.TextRange {
	if tr.IsCollapsed() {
		return InsertTab(tr, cfg)
	}
	return IndentLines(tr, cfg)
}

// InsertTab inserts one indent at the caret and collapses the caret after it.
func InsertTab(tr textrange.TextRange, cfg Config) textrange.TextRange {
	return tr.ReplaceSelection(cfg.TabCharacter())
}

// IndentLines prefixes every line touched by the selection with one indent.
// The selection start moves by one indent; the end moves by one indent per
// line.
func IndentLines(tr textrange.TextRange, cfg Config) textrange.TextRange {
	tab := cfg.TabCharacter()
	startLine, endLine := tr.StartLine(), tr.EndLine()

	lines := strings.Split(tr.Value, "\n")
	for i := startLine; i <= endLine && i < len(lines); i++ {
		lines[i] = tab + lines[i]
	}

	return textrange.TextRange{
		Value:          strings.Join(lines, "\n"),
		SelectionStart: tr.SelectionStart + len(tab),
		SelectionEnd:   tr.SelectionEnd + len(tab)*(endLine-startLine+1),
	}
}

// OutdentLines removes one leading indent from every line touched by the
// selection. It returns false when no line started with an indent.
//
// Each end of the selection moves back by the indent bytes removed before
// it, so a caret inside or before an indent stays on its own line.
func OutdentLines(tr textrange.TextRange, cfg Config) (textrange.TextRange, bool) {
	tab := cfg.TabCharacter()
	if tab == "" {
		return tr, false
	}
	startLine, endLine := tr.StartLine(), tr.EndLine()

	lines := strings.Split(tr.Value, "\n")
	start, end := tr.SelectionStart, tr.SelectionEnd
	removed := 0
	lineStart := 0
	for i := 0; i <= endLine && i < len(lines); i++ {
		if i >= startLine && strings.HasPrefix(lines[i], tab) {
			start -= removedBefore(tr.SelectionStart, lineStart, len(tab))
			end -= removedBefore(tr.SelectionEnd, lineStart, len(tab))
			removed += len(tab)
			lineStart += len(lines[i]) + 1
			lines[i] = lines[i][len(tab):]
			continue
		}
		lineStart += len(lines[i]) + 1
	}
	if removed == 0 {
		return tr, false
	}

	value := strings.Join(lines, "\n")
	return textrange.New(value, start, end), true
}

// removedBefore returns how many of the n bytes removed at lineStart lie
// before offset.
func removedBefore(offset, lineStart, n int) int {
	return min(max(offset-lineStart, 0), n)
}

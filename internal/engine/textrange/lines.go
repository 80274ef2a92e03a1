package textrange

import "strings"

// LineIndex returns the 0-based line containing offset, counting the
// newlines that precede it.
func LineIndex(value string, offset int) int {
	offset = clamp(offset, len(value))
	return strings.Count(value[:offset], "\n")
}

// LinesBefore splits the text preceding offset into lines.
// The last element is the partial line the offset sits on.
func LinesBefore(value string, offset int) []string {
	offset = clamp(offset, len(value))
	return strings.Split(value[:offset], "\n")
}

// CurrentLine returns the text between the last newline before offset and
// offset itself.
func CurrentLine(value string, offset int) string {
	offset = clamp(offset, len(value))
	head := value[:offset]
	if i := strings.LastIndexByte(head, '\n'); i >= 0 {
		return head[i+1:]
	}
	return head
}

// StartLine returns the index of the line holding the selection start.
func (r TextRange) StartLine() int {
	return LineIndex(r.Value, r.SelectionStart)
}

// EndLine returns the index of the line holding the selection end.
func (r TextRange) EndLine() int {
	return LineIndex(r.Value, r.SelectionEnd)
}

// CurrentLine returns the partial line before the selection start.
func (r TextRange) CurrentLine() string {
	return CurrentLine(r.Value, r.SelectionStart)
}

package transform

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/caret/internal/engine/textrange"
)

// NewlineIndent inserts a newline followed by the leading whitespace of the
// caret's line. It applies only to a collapsed caret on an indented line.
func NewlineIndent(tr textrange.TextRange) (textrange.TextRange, bool) {
	if !tr.IsCollapsed() {
		return tr, false
	}
	indent := leadingSpace(tr.CurrentLine())
	if indent == "" {
		return tr, false
	}
	return tr.ReplaceSelection("\n" + indent), true
}

// leadingSpace returns the run of whitespace that begins line.
// U+FEFF counts as whitespace and U+0085 does not.
func leadingSpace(line string) string {
	end := 0
	for end < len(line) {
		r, size := utf8.DecodeRuneInString(line[end:])
		if !isIndentSpace(r) {
			break
		}
		end += size
	}
	return line[:end]
}

func isIndentSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

package transform

import "github.com/dshills/caret/internal/engine/textrange"

// wrapPairs maps an opening character to its closing partner.
var wrapPairs = map[rune]rune{
	'(':  ')',
	'[':  ']',
	'{':  '}',
	'"':  '"',
	'\'': '\'',
	'`':  '`',
}

// Wrap surrounds the selection with open and its closing partner. The
// selection keeps its start and grows to cover both inserted characters.
func Wrap(tr textrange.TextRange, open rune) (textrange.TextRange, bool) {
	closing, ok := wrapPairs[open]
	if !ok || tr.IsCollapsed() {
		return tr, false
	}
	o, c := string(open), string(closing)
	return textrange.TextRange{
		Value:          tr.BeforeCaret() + o + tr.Selected() + c + tr.AfterSelection(),
		SelectionStart: tr.SelectionStart,
		SelectionEnd:   tr.SelectionEnd + len(o) + len(c),
	}, true
}

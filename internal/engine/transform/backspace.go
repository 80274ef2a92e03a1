package transform

import (
	"strings"

	"github.com/dshills/caret/internal/engine/textrange"
)

// Dedent deletes a whole indent ending at the caret. It applies only to a
// collapsed caret preceded by an indent; otherwise it returns false and the
// host deletes a single character as usual.
func Dedent(tr textrange.TextRange, cfg Config) (textrange.TextRange, bool) {
	tab := cfg.TabCharacter()
	if tab == "" || !tr.IsCollapsed() || !strings.HasSuffix(tr.BeforeCaret(), tab) {
		return tr, false
	}

	caret := tr.SelectionStart - len(tab)
	return textrange.TextRange{
		Value:          tr.Value[:caret] + tr.AfterSelection(),
		SelectionStart: caret,
		SelectionEnd:   caret,
	}, true
}

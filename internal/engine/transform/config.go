package transform

import "strings"

// Defaults for the indent configuration.
const (
	DefaultTabSize      = 2
	DefaultInsertSpaces = true
)

// indentLiteral is the unit repeated TabSize times when InsertSpaces is
// false. It is five characters wide, not a single tab glyph.
const indentLiteral = "     "

// Config controls how edits are computed.
type Config struct {
	// TabSize is how many units make up one indent.
	TabSize int

	// InsertSpaces selects single spaces as the indent unit.
	InsertSpaces bool

	// IgnoreTabKey lets Tab pass through to the host.
	IgnoreTabKey bool

	// OutdentOnShiftTab makes Shift+Tab remove indentation.
	OutdentOnShiftTab bool

	// WrapSelection makes bracket and quote keys wrap a selection.
	WrapSelection bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		TabSize:      DefaultTabSize,
		InsertSpaces: DefaultInsertSpaces,
	}
}

// TabCharacter returns the text inserted for one indent.
func (c Config) TabCharacter() string {
	unit := " "
	if !c.InsertSpaces {
		unit = indentLiteral
	}
	return strings.Repeat(unit, max(c.TabSize, 0))
}

package key

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{
		Key:       k,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character typed without
// command modifiers.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) &&
		!e.Modifiers.Has(ModCtrl|ModAlt|ModMeta)
}

// IsLetter reports whether the event is the character letter, ignoring case.
func (e Event) IsLetter(letter rune) bool {
	return e.IsRune() && unicode.ToLower(e.Rune) == unicode.ToLower(letter)
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared and letters compare case-insensitively when
// Shift is part of the modifiers.
func (e Event) Equals(other Event) bool {
	if e.Key != other.Key || e.Modifiers != other.Modifiers {
		return false
	}
	if e.Key != KeyRune {
		return true
	}
	if e.Modifiers.HasShift() || e.Modifiers.HasCtrl() {
		return unicode.ToLower(e.Rune) == unicode.ToLower(other.Rune)
	}
	return e.Rune == other.Rune
}

// Matches checks if this event matches a key specification string.
func (e Event) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return e.Equals(parsed)
}

// String returns a canonical representation such as "Ctrl+Shift+Z" or
// "Enter".
func (e Event) String() string {
	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	default:
		name = e.Key.String()
	}
	if mods := e.Modifiers.String(); mods != "" {
		return mods + "+" + name
	}
	return name
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key, e.Rune, strings.TrimSpace(e.Modifiers.String()))
}

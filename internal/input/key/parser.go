package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification like "Ctrl+Z", "Shift+Tab" or "a".
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	// "+" on its own, or as the final key ("Ctrl++"), is a character.
	var keyPart string
	var modParts []string
	if spec == "+" {
		keyPart = spec
	} else if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		modParts = strings.Split(strings.TrimSuffix(spec, "++"), "+")
	} else {
		parts := strings.Split(spec, "+")
		keyPart = parts[len(parts)-1]
		modParts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKey(strings.TrimSpace(keyPart), mods)
}

func parseKey(name string, mods Modifier) (Event, error) {
	if name == "" {
		return Event{}, ErrInvalidSpec
	}
	if strings.EqualFold(name, "space") {
		return NewRuneEvent(' ', mods), nil
	}
	if k := KeyFromName(name); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(name)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, name)
	}
	r := runes[0]
	if unicode.IsUpper(r) && mods.IsEmpty() {
		// Uppercase letters have implicit Shift
		mods = ModShift
	}
	if mods.HasCtrl() || mods.HasMeta() {
		r = unicode.ToLower(r)
	}
	return NewRuneEvent(r, mods), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	ev, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return ev
}

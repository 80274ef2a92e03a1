package transform

import (
	"github.com/dshills/caret/internal/engine/textrange"
	"github.com/dshills/caret/internal/input/key"
)

// Action identifies what the engine does with a key event.
type Action uint8

const (
	// PassThrough leaves the event to the host's default handling.
	PassThrough Action = iota

	// Suppress claims the event without changing the text.
	Suppress

	// Edit claims the event and commits Decision.Result.
	Edit

	// Undo claims the event and steps back through history.
	Undo

	// Redo claims the event and steps forward through history.
	Redo
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case PassThrough:
		return "pass-through"
	case Suppress:
		return "suppress"
	case Edit:
		return "edit"
	case Undo:
		return "undo"
	case Redo:
		return "redo"
	default:
		return "unknown"
	}
}

// HistoryLetter is the letter that triggers undo and redo.
const HistoryLetter = 'z'

// Decision is the outcome of resolving a key event.
type Decision struct {
	Action Action

	// Result is the new buffer state when Action is Edit.
	Result textrange.TextRange
}

// Intercepted reports whether the host must suppress its default handling.
func (d Decision) Intercepted() bool {
	return d.Action != PassThrough
}

func passThrough() Decision { return Decision{Action: PassThrough} }

func edit(tr textrange.TextRange) Decision {
	return Decision{Action: Edit, Result: tr}
}

// Resolve decides how the key event ev applies to tr.
func Resolve(ev key.Event, tr textrange.TextRange, cfg Config) Decision {
	switch ev.Key {
	case key.KeyTab:
		return resolveTab(ev, tr, cfg)

	case key.KeyBackspace:
		if out, ok := Dedent(tr, cfg); ok {
			return edit(out)
		}
		return passThrough()

	case key.KeyEnter:
		if out, ok := NewlineIndent(tr); ok {
			return edit(out)
		}
		return passThrough()

	case key.KeyRune:
		if IsHistoryKey(ev) {
			if ev.Modifiers.HasShift() {
				return Decision{Action: Redo}
			}
			return Decision{Action: Undo}
		}
		if cfg.WrapSelection && ev.IsChar() {
			if out, ok := Wrap(tr, ev.Rune); ok {
				return edit(out)
			}
		}
	}
	return passThrough()
}

func resolveTab(ev key.Event, tr textrange.TextRange, cfg Config) Decision {
	if cfg.IgnoreTabKey {
		return passThrough()
	}
	if cfg.OutdentOnShiftTab && ev.Modifiers.HasShift() {
		if out, ok := OutdentLines(tr, cfg); ok {
			return edit(out)
		}
		return Decision{Action: Suppress}
	}
	return edit(Tab(tr, cfg))
}

// IsHistoryKey reports whether ev is the undo/redo chord: the history
// letter with exactly one of Ctrl or Meta held and no Alt.
func IsHistoryKey(ev key.Event) bool {
	mods := ev.Modifiers
	return ev.IsLetter(HistoryLetter) && mods.HasCtrl() != mods.HasMeta() && !mods.HasAlt()
}

package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/input/key"
)

// specialKeys maps tcell keys to their key equivalents.
var specialKeys = map[tcell.Key]key.Key{
	tcell.KeyEnter:      key.KeyEnter,
	tcell.KeyTab:        key.KeyTab,
	tcell.KeyBacktab:    key.KeyTab,
	tcell.KeyBackspace:  key.KeyBackspace,
	tcell.KeyBackspace2: key.KeyBackspace,
	tcell.KeyDelete:     key.KeyDelete,
	tcell.KeyEscape:     key.KeyEscape,
	tcell.KeyHome:       key.KeyHome,
	tcell.KeyEnd:        key.KeyEnd,
	tcell.KeyPgUp:       key.KeyPageUp,
	tcell.KeyPgDn:       key.KeyPageDown,
	tcell.KeyUp:         key.KeyUp,
	tcell.KeyDown:       key.KeyDown,
	tcell.KeyLeft:       key.KeyLeft,
	tcell.KeyRight:      key.KeyRight,
}

// EventFromTcell converts a tcell key event. Control letters, which
// terminals report as KeyCtrlA..KeyCtrlZ, become the lowercase letter
// with Ctrl held. It returns false for keys with no equivalent.
func EventFromTcell(ev *tcell.EventKey) (key.Event, bool) {
	mods := modifiersFromTcell(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		r := ev.Rune()
		if (mods.HasCtrl() || mods.HasMeta()) && unicode.IsUpper(r) {
			r = unicode.ToLower(r)
			mods = mods.With(key.ModShift)
		}
		return key.Event{Key: key.KeyRune, Rune: r, Modifiers: mods, Timestamp: ev.When()}, true
	}

	if sk, ok := specialKeys[k]; ok {
		if k == tcell.KeyBacktab {
			mods = mods.With(key.ModShift)
		}
		return key.Event{Key: sk, Modifiers: mods, Timestamp: ev.When()}, true
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.Event{Key: key.KeyRune, Rune: r, Modifiers: mods.With(key.ModCtrl), Timestamp: ev.When()}, true
	}

	return key.Event{}, false
}

func modifiersFromTcell(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}

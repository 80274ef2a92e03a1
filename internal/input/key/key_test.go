package key

import (
	"errors"
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyTab, "Tab"},
		{KeyBackspace, "Backspace"},
		{KeyRune, "Rune"},
		{Key(200), "Key(200)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"tab", KeyTab},
		{"Enter", KeyEnter},
		{"return", KeyEnter},
		{"BS", KeyBackspace},
		{"esc", KeyEscape},
		{"rune", KeyNone},
		{"bogus", KeyNone},
	}
	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyClassification(t *testing.T) {
	if !KeyLeft.IsArrowKey() || KeyHome.IsArrowKey() {
		t.Error("IsArrowKey() misclassified")
	}
	if !KeyHome.IsNavigationKey() || KeyTab.IsNavigationKey() {
		t.Error("IsNavigationKey() misclassified")
	}
	if KeyRune.IsSpecial() || !KeyEnter.IsSpecial() {
		t.Error("IsSpecial() misclassified")
	}
}

func TestModifier(t *testing.T) {
	m := ModCtrl.With(ModShift)
	if !m.HasCtrl() || !m.HasShift() || m.HasAlt() || m.HasMeta() {
		t.Errorf("modifier flags wrong: %v", m)
	}
	if got := m.String(); got != "Ctrl+Shift" {
		t.Errorf("String() = %q, want %q", got, "Ctrl+Shift")
	}
	if m.Without(ModCtrl) != ModShift {
		t.Error("Without() did not remove Ctrl")
	}
	if !ModNone.IsEmpty() {
		t.Error("ModNone should be empty")
	}
	if ModifierFromName("Cmd") != ModMeta {
		t.Error("Cmd should map to Meta")
	}
}

func TestEventPredicates(t *testing.T) {
	ev := NewRuneEvent('Z', ModShift)
	if !ev.IsRune() || !ev.IsChar() {
		t.Error("shifted letter should be a printable char")
	}
	if !ev.IsLetter('z') {
		t.Error("IsLetter should ignore case")
	}
	ctrl := NewRuneEvent('z', ModCtrl)
	if ctrl.IsChar() {
		t.Error("Ctrl+z is not a printable char")
	}
	if NewSpecialEvent(KeyTab, ModNone).IsLetter('t') {
		t.Error("special keys are never letters")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent(' ', ModNone), "Space"},
		{NewRuneEvent('z', ModCtrl|ModShift), "Ctrl+Shift+z"},
		{NewSpecialEvent(KeyTab, ModShift), "Shift+Tab"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  Key
		wantRune rune
		wantMods Modifier
	}{
		{"a", KeyRune, 'a', ModNone},
		{"Z", KeyRune, 'Z', ModShift},
		{"Tab", KeyTab, 0, ModNone},
		{"Shift+Tab", KeyTab, 0, ModShift},
		{"Ctrl+Z", KeyRune, 'z', ModCtrl},
		{"Ctrl+Shift+Z", KeyRune, 'z', ModCtrl | ModShift},
		{"Cmd+z", KeyRune, 'z', ModMeta},
		{"Ctrl+Space", KeyRune, ' ', ModCtrl},
		{"+", KeyRune, '+', ModNone},
		{"Ctrl++", KeyRune, '+', ModCtrl},
		{"Alt+Enter", KeyEnter, 0, ModAlt},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			ev, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if ev.Key != tt.wantKey || ev.Rune != tt.wantRune || ev.Modifiers != tt.wantMods {
				t.Errorf("Parse(%q) = %#v, want key=%v rune=%q mods=%v",
					tt.spec, ev, tt.wantKey, tt.wantRune, tt.wantMods)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(""); !errors.Is(err, ErrEmptySpec) {
		t.Errorf("Parse(\"\") error = %v, want ErrEmptySpec", err)
	}
	for _, spec := range []string{"Hyper+a", "Ctrl+", "Ctrl+abc"} {
		if _, err := Parse(spec); !errors.Is(err, ErrInvalidSpec) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidSpec", spec, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on invalid spec")
		}
	}()
	MustParse("Hyper+q")
}

func TestEventMatches(t *testing.T) {
	if !NewRuneEvent('z', ModCtrl).Matches("Ctrl+Z") {
		t.Error("Ctrl+z should match Ctrl+Z")
	}
	if !NewRuneEvent('Z', ModCtrl|ModShift).Matches("Ctrl+Shift+Z") {
		t.Error("Ctrl+Shift+Z should match")
	}
	if NewRuneEvent('z', ModMeta).Matches("Ctrl+Z") {
		t.Error("Meta+z should not match Ctrl+Z")
	}
	if !NewSpecialEvent(KeyEnter, ModNone).Matches("Enter") {
		t.Error("Enter should match")
	}
	if NewRuneEvent('a', ModNone).Matches("Hyper+a") {
		t.Error("invalid spec should never match")
	}
}

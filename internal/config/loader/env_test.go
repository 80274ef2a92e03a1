package loader

import (
	"testing"
	"time"
)

func newTestEnvLoader(env ...string) *EnvLoader {
	l := NewEnvLoader(DefaultEnvPrefix)
	l.environ = func() []string { return env }
	return l
}

func TestEnvLoader_Load(t *testing.T) {
	l := newTestEnvLoader(
		"CARET_TAB_SIZE=4",
		"CARET_INSERT_SPACES=false",
		"CARET_LOG_LEVEL=debug",
		"CARET_HISTORY_LIMIT=20",
		"CARET_HISTORY_TIME_GAP=1500ms",
		"HOME=/root",
	)

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"editor.tabSize", int64(4)},
		{"editor.insertSpaces", false},
		{"logging.level", "debug"},
		{"history.limit", int64(20)},
		{"history.timeGap", 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		if got, ok := Lookup(config, tt.path); !ok || got != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, got, got, tt.want)
		}
	}

	if _, ok := config["home"]; ok {
		t.Error("unprefixed variable should be ignored")
	}
}

func TestEnvLoader_RealEnvironment(t *testing.T) {
	t.Setenv("CARET_WRAP_SELECTION", "yes")

	config, err := NewEnvLoader(DefaultEnvPrefix).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got, _ := Lookup(config, "editor.wrapSelection"); got != true {
		t.Errorf("editor.wrapSelection = %v, want true", got)
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	l := newTestEnvLoader("CARET_TS=3")
	l.AddMapping("CARET_TS", "editor.tabSize")

	config, _ := l.Load()
	if got, _ := Lookup(config, "editor.tabSize"); got != int64(3) {
		t.Errorf("editor.tabSize = %v, want 3", got)
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix)

	tests := []struct {
		env  string
		want string
	}{
		{"CARET_EDITOR_TAB_SIZE", "editor.tabSize"},
		{"CARET_HISTORY_LIMIT", "history.limit"},
		{"CARET_HISTORY_TIME_GAP", "history.timeGap"},
		{"CARET_DEBUG", "debug"},
	}

	for _, tt := range tests {
		if got := l.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"On", true},
		{"no", false},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-3", int64(-3)},
		{"1.5", 1.5},
		{"3s", 3 * time.Second},
		{"info", "info"},
	}

	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}

package textrange

import (
	"reflect"
	"testing"
)

func TestNewClamps(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		start, end int
		wantStart  int
		wantEnd    int
	}{
		{"in range", "hello", 1, 3, 1, 3},
		{"negative start", "hello", -4, 2, 0, 2},
		{"end past value", "hello", 2, 99, 2, 5},
		{"reversed", "hello", 4, 1, 1, 4},
		{"empty value", "", 3, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.value, tt.start, tt.end)
			if r.SelectionStart != tt.wantStart || r.SelectionEnd != tt.wantEnd {
				t.Errorf("New() selection = (%d,%d), want (%d,%d)",
					r.SelectionStart, r.SelectionEnd, tt.wantStart, tt.wantEnd)
			}
			if !r.Valid() {
				t.Errorf("New() produced invalid range %v", r)
			}
		})
	}
}

func TestCaret(t *testing.T) {
	r := Caret("abc", 2)
	if !r.IsCollapsed() {
		t.Error("Caret() should be collapsed")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestSelectedAndSurroundings(t *testing.T) {
	r := New("hello world", 6, 11)
	if got := r.Selected(); got != "world" {
		t.Errorf("Selected() = %q, want %q", got, "world")
	}
	if got := r.BeforeCaret(); got != "hello " {
		t.Errorf("BeforeCaret() = %q, want %q", got, "hello ")
	}
	if got := r.AfterSelection(); got != "" {
		t.Errorf("AfterSelection() = %q, want empty", got)
	}
}

func TestReplaceSelection(t *testing.T) {
	r := New("hello world", 0, 5).ReplaceSelection("hi")
	want := TextRange{Value: "hi world", SelectionStart: 2, SelectionEnd: 2}
	if r != want {
		t.Errorf("ReplaceSelection() = %v, want %v", r, want)
	}
}

func TestValid(t *testing.T) {
	if (TextRange{Value: "ab", SelectionStart: 2, SelectionEnd: 1}).Valid() {
		t.Error("reversed selection should be invalid")
	}
	if (TextRange{Value: "ab", SelectionStart: 0, SelectionEnd: 3}).Valid() {
		t.Error("selection past value should be invalid")
	}
}

func TestLineIndex(t *testing.T) {
	value := "one\ntwo\nthree"
	tests := []struct {
		offset int
		want   int
	}{
		{0, 0},
		{3, 0},
		{4, 1},
		{8, 2},
		{len(value), 2},
	}
	for _, tt := range tests {
		if got := LineIndex(value, tt.offset); got != tt.want {
			t.Errorf("LineIndex(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}

func TestLinesBefore(t *testing.T) {
	got := LinesBefore("ab\ncd\nef", 5)
	want := []string{"ab", "cd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LinesBefore() = %q, want %q", got, want)
	}
}

func TestCurrentLine(t *testing.T) {
	tests := []struct {
		value  string
		offset int
		want   string
	}{
		{"  foo", 5, "  foo"},
		{"a\n  bar", 7, "  bar"},
		{"a\n  bar", 4, "  "},
		{"a\n", 2, ""},
	}
	for _, tt := range tests {
		if got := CurrentLine(tt.value, tt.offset); got != tt.want {
			t.Errorf("CurrentLine(%q, %d) = %q, want %q", tt.value, tt.offset, got, tt.want)
		}
	}
}

func TestStartEndLine(t *testing.T) {
	r := New("a\nb\nc", 0, 4)
	if r.StartLine() != 0 || r.EndLine() != 2 {
		t.Errorf("lines = (%d,%d), want (0,2)", r.StartLine(), r.EndLine())
	}
}

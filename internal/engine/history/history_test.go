package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/dshills/caret/internal/engine/textrange"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// Helper to create a store with a controllable clock.
func newTestStore(opts ...Option) (*Store, *fakeClock) {
	clock := newFakeClock()
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	return NewStore(opts...), clock
}

func caret(value string) textrange.TextRange {
	return textrange.Caret(value, len(value))
}

// Store Tests

func TestNewStoreEmpty(t *testing.T) {
	s := NewStore()
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.Offset() != -1 {
		t.Errorf("Offset() = %d, want -1", s.Offset())
	}
	if _, ok := s.Current(); ok {
		t.Error("Current() should be empty")
	}
	if s.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", s.Limit(), DefaultLimit)
	}
	if s.TimeGap() != DefaultTimeGap {
		t.Errorf("TimeGap() = %v, want %v", s.TimeGap(), DefaultTimeGap)
	}
}

func TestStoreRecordAppends(t *testing.T) {
	s, _ := newTestStore()
	s.Record(caret(""), false)
	s.Record(caret("a"), false)
	s.Record(caret("ab"), false)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if s.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", s.Offset())
	}
	cur, _ := s.Current()
	if cur.Value != "ab" {
		t.Errorf("Current().Value = %q, want %q", cur.Value, "ab")
	}
}

func TestStoreRecordStampsTime(t *testing.T) {
	s, clock := newTestStore()
	s.Record(caret("a"), false)
	cur, _ := s.Current()
	if !cur.Timestamp.Equal(clock.Now()) {
		t.Errorf("Timestamp = %v, want %v", cur.Timestamp, clock.Now())
	}
}

func TestStoreRecordDropsRedoTail(t *testing.T) {
	s, _ := newTestStore()
	ctl := NewController(s)
	s.Record(caret("a"), false)
	s.Record(caret("ab"), false)
	s.Record(caret("abc"), false)

	ctl.Undo()
	ctl.Undo()
	if s.Offset() != 0 {
		t.Fatalf("Offset() = %d, want 0", s.Offset())
	}

	s.Record(caret("ax"), false)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.CanRedo() {
		t.Error("redo branch should be discarded")
	}
	if _, ok := ctl.Redo(); ok {
		t.Error("Redo() should be a no-op after a new edit")
	}
}

func TestStoreLimit(t *testing.T) {
	s, _ := newTestStore()
	for i := 0; i < 250; i++ {
		s.Record(caret(fmt.Sprintf("v%d", i)), false)
		if s.Len() > DefaultLimit {
			t.Fatalf("Len() = %d after %d records, exceeds %d", s.Len(), i+1, DefaultLimit)
		}
		if s.Offset() < -1 || s.Offset() > s.Len()-1 {
			t.Fatalf("Offset() = %d out of range for Len() = %d", s.Offset(), s.Len())
		}
	}

	first, _ := s.At(0)
	if first.Value != "v150" {
		t.Errorf("oldest record = %q, want %q", first.Value, "v150")
	}
	cur, _ := s.Current()
	if cur.Value != "v249" {
		t.Errorf("current record = %q, want %q", cur.Value, "v249")
	}
}

func TestStoreWithLimit(t *testing.T) {
	s, _ := newTestStore(WithLimit(3))
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		s.Record(caret(v), false)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if s.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", s.Offset())
	}
}

func TestStoreSetLimit(t *testing.T) {
	s, _ := newTestStore()
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		s.Record(caret(v), false)
	}
	s.SetLimit(2)
	if s.Len() != 5 {
		t.Errorf("Len() before next record = %d, want 5", s.Len())
	}

	s.Record(caret("f"), false)
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if s.Offset() != 1 {
		t.Errorf("Offset() = %d, want 1", s.Offset())
	}
	if first, _ := s.At(0); first.Value != "e" {
		t.Errorf("At(0) = %q, want e", first.Value)
	}

	s.SetLimit(0)
	if s.Limit() != DefaultLimit {
		t.Errorf("Limit() = %d, want %d", s.Limit(), DefaultLimit)
	}
}

func TestStoreSetLimitKeepsCurrent(t *testing.T) {
	s, _ := newTestStore()
	ctl := NewController(s)
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		s.Record(caret(v), false)
	}
	for i := 0; i < 4; i++ {
		ctl.Undo()
	}

	s.SetLimit(2)
	cur, _ := s.Current()
	if cur.Value != "a" || s.Offset() != 0 {
		t.Fatalf("Current() = %q at %d, want a at 0", cur.Value, s.Offset())
	}

	s.CaptureSelection(textrange.New("a", 0, 1))
	s.Record(caret("ab"), false)
	if s.Len() != 2 || s.Offset() != 1 {
		t.Errorf("Len/Offset = %d/%d, want 2/1", s.Len(), s.Offset())
	}
	prev, _ := s.At(0)
	if prev.TextRange != textrange.New("a", 0, 1) {
		t.Errorf("At(0) = %v, want a [0,1]", prev.TextRange)
	}
}

func TestStoreCaptureSelection(t *testing.T) {
	s, _ := newTestStore()
	s.Record(textrange.Caret("hello world", 11), false)

	s.CaptureSelection(textrange.New("hello world", 0, 5))

	cur, _ := s.Current()
	if cur.Value != "hello world" {
		t.Errorf("value changed to %q", cur.Value)
	}
	if cur.SelectionStart != 0 || cur.SelectionEnd != 5 {
		t.Errorf("selection = (%d,%d), want (0,5)", cur.SelectionStart, cur.SelectionEnd)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestStoreCaptureSelectionEmpty(t *testing.T) {
	s := NewStore()
	s.CaptureSelection(textrange.Caret("x", 1))
	if s.Len() != 0 || s.Offset() != -1 {
		t.Error("CaptureSelection on empty history should be a no-op")
	}
}

func TestStoreRecordsIsCopy(t *testing.T) {
	s, _ := newTestStore()
	s.Record(caret("a"), false)
	recs := s.Records()
	recs[0].Value = "changed"
	cur, _ := s.Current()
	if cur.Value != "a" {
		t.Error("Records() should return a copy")
	}
}

// Coalescing Tests

func TestCoalesceExtendsWord(t *testing.T) {
	s, clock := newTestStore()
	s.Record(caret(""), false)
	s.Record(caret("x fo"), true)
	clock.Advance(500 * time.Millisecond)

	merged := s.Record(caret("x foo"), true)
	if !merged {
		t.Error("Record() should report a merge")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	cur, _ := s.Current()
	if cur.Value != "x foo" {
		t.Errorf("Current().Value = %q, want %q", cur.Value, "x foo")
	}
	if !cur.Timestamp.Equal(clock.Now()) {
		t.Error("merged record should carry the new timestamp")
	}
}

func TestCoalesceRules(t *testing.T) {
	tests := []struct {
		name      string
		prev      textrange.TextRange
		next      textrange.TextRange
		gap       time.Duration
		overwrite bool
		wantMerge bool
	}{
		{"word extended", caret("a fo"), caret("a foo"), time.Second, true, true},
		{"case insensitive", caret("a Fo"), caret("a FoO"), time.Second, true, true},
		{"long s is not a letter", caret("x \u017f"), caret("x \u017fa"), time.Second, true, false},
		{"kelvin sign is not a letter", caret("x \u212a"), caret("x \u212ab"), time.Second, true, false},
		{"same word", caret("a foo"), caret("a foo"), time.Second, true, true},
		{"gap elapsed", caret("a fo"), caret("a foo"), DefaultTimeGap, true, false},
		{"gap just under", caret("a fo"), caret("a foo"), DefaultTimeGap - time.Millisecond, true, true},
		{"unrelated word", caret("a foo"), caret("a bar"), time.Second, true, false},
		{"word ended by space", caret("a foo"), caret("a foo "), time.Second, true, false},
		{"word at line start", caret("fo"), caret("foo"), time.Second, true, false},
		{"previous has no word", caret("a "), caret("a f"), time.Second, true, false},
		{"overwrite disabled", caret("a fo"), caret("a foo"), time.Second, false, false},
		{"only caret line counts", caret("a fo\nx"), caret("a fo\nx y"), time.Second, true, false},
		{"new line word", caret("z\n fo"), caret("z\n foo"), time.Second, true, true},
		{"word before caret", textrange.Caret("a fo!", 4), textrange.Caret("a foo!", 5), time.Second, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, clock := newTestStore()
			s.Record(tt.prev, false)
			clock.Advance(tt.gap)

			merged := s.Record(tt.next, tt.overwrite)
			if merged != tt.wantMerge {
				t.Errorf("Record() merged = %v, want %v", merged, tt.wantMerge)
			}
			wantLen := 2
			if tt.wantMerge {
				wantLen = 1
			}
			if s.Len() != wantLen {
				t.Errorf("Len() = %d, want %d", s.Len(), wantLen)
			}
			cur, _ := s.Current()
			if cur.TextRange != tt.next {
				t.Errorf("Current() = %v, want %v", cur.TextRange, tt.next)
			}
		})
	}
}

func TestCoalesceAfterUndo(t *testing.T) {
	s, clock := newTestStore()
	ctl := NewController(s)
	s.Record(caret("x f"), false)
	s.Record(caret("x fo"), false)
	ctl.Undo()

	clock.Advance(time.Second)
	s.Record(caret("x fa"), true)

	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	cur, _ := s.Current()
	if cur.Value != "x fa" {
		t.Errorf("Current().Value = %q, want %q", cur.Value, "x fa")
	}
}

func TestLastWord(t *testing.T) {
	tests := []struct {
		in     textrange.TextRange
		want   string
		wantOK bool
	}{
		{caret("say hello"), "hello", true},
		{caret("x.y2"), "y2", true},
		{caret("hello"), "", false},
		{caret("hello "), "", false},
		{caret(""), "", false},
		{textrange.Caret("a bc def", 4), "bc", true},
	}
	for _, tt := range tests {
		got, ok := lastWord(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("lastWord(%v) = (%q,%v), want (%q,%v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

// Controller Tests

func TestControllerUndoRedo(t *testing.T) {
	s, _ := newTestStore()
	ctl := NewController(s)
	s.Record(caret(""), false)
	s.Record(caret("a"), false)
	s.Record(caret("ab"), false)

	tr, ok := ctl.Undo()
	if !ok || tr.Value != "a" {
		t.Fatalf("Undo() = (%v,%v), want (a,true)", tr, ok)
	}
	tr, ok = ctl.Undo()
	if !ok || tr.Value != "" {
		t.Fatalf("Undo() = (%v,%v), want (\"\",true)", tr, ok)
	}
	if _, ok = ctl.Undo(); ok {
		t.Error("Undo() at start should be a no-op")
	}
	if s.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", s.Offset())
	}

	tr, ok = ctl.Redo()
	if !ok || tr.Value != "a" {
		t.Fatalf("Redo() = (%v,%v), want (a,true)", tr, ok)
	}
	tr, ok = ctl.Redo()
	if !ok || tr.Value != "ab" {
		t.Fatalf("Redo() = (%v,%v), want (ab,true)", tr, ok)
	}
	if _, ok = ctl.Redo(); ok {
		t.Error("Redo() at end should be a no-op")
	}
	if s.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", s.Offset())
	}
}

func TestControllerEmpty(t *testing.T) {
	s := NewStore()
	ctl := NewController(s)
	if _, ok := ctl.Undo(); ok {
		t.Error("Undo() on empty history should be a no-op")
	}
	if _, ok := ctl.Redo(); ok {
		t.Error("Redo() on empty history should be a no-op")
	}
	if s.Offset() != -1 {
		t.Errorf("Offset() = %d, want -1", s.Offset())
	}
	if ctl.Store() != s {
		t.Error("Store() should return the wrapped store")
	}
}

func TestControllerRoundTrip(t *testing.T) {
	s, _ := newTestStore()
	ctl := NewController(s)

	want := []textrange.TextRange{
		textrange.Caret("", 0),
		textrange.Caret("a", 1),
		textrange.New("ab", 0, 2),
		textrange.Caret("  ab", 2),
		textrange.New("  ab\ncd", 3, 7),
	}
	for _, tr := range want {
		s.Record(tr, false)
	}

	n := len(want) - 1
	for i := 0; i < n; i++ {
		tr, ok := ctl.Undo()
		if !ok || tr != want[n-1-i] {
			t.Fatalf("Undo() #%d = %v, want %v", i+1, tr, want[n-1-i])
		}
	}
	for i := 0; i < n; i++ {
		tr, ok := ctl.Redo()
		if !ok || tr != want[i+1] {
			t.Fatalf("Redo() #%d = %v, want %v", i+1, tr, want[i+1])
		}
	}
}

func TestCanUndoRedo(t *testing.T) {
	s, _ := newTestStore()
	ctl := NewController(s)
	if s.CanUndo() || s.CanRedo() {
		t.Error("empty history should not allow undo or redo")
	}
	s.Record(caret("a"), false)
	if s.CanUndo() {
		t.Error("single record should not allow undo")
	}
	s.Record(caret("ab"), false)
	if !s.CanUndo() {
		t.Error("CanUndo() = false, want true")
	}
	ctl.Undo()
	if !s.CanRedo() {
		t.Error("CanRedo() = false, want true")
	}
}

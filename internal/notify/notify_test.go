package notify

import (
	"testing"

	"github.com/dshills/caret/internal/engine/textrange"
)

func TestNotifierDeliversInOrder(t *testing.T) {
	n := New()
	var order []string
	n.Subscribe(func(c Change) { order = append(order, "first:"+c.Value()) })
	n.Subscribe(func(c Change) { order = append(order, "second:"+c.Value()) })

	n.Notify(Change{Snapshot: textrange.Caret("abc", 3), Source: SourceEdit})

	if len(order) != 2 || order[0] != "first:abc" || order[1] != "second:abc" {
		t.Errorf("delivery order = %v", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	n := New()
	calls := 0
	sub := n.Subscribe(func(Change) { calls++ })
	kept := 0
	n.Subscribe(func(Change) { kept++ })

	sub.Unsubscribe()
	sub.Unsubscribe()
	n.Notify(Change{})

	if calls != 0 {
		t.Errorf("unsubscribed observer called %d times", calls)
	}
	if kept != 1 {
		t.Errorf("remaining observer called %d times, want 1", kept)
	}
	if n.Len() != 1 {
		t.Errorf("Len() = %d, want 1", n.Len())
	}
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	n := New()
	var sub *Subscription
	calls := 0
	sub = n.Subscribe(func(Change) {
		calls++
		sub.Unsubscribe()
	})

	n.Notify(Change{})
	n.Notify(Change{})
	if calls != 1 {
		t.Errorf("observer called %d times, want 1", calls)
	}
}

func TestClose(t *testing.T) {
	n := New()
	calls := 0
	n.Subscribe(func(Change) { calls++ })
	n.Close()
	n.Close()
	n.Notify(Change{})
	if calls != 0 {
		t.Errorf("observer called after Close: %d", calls)
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		s    Source
		want string
	}{
		{SourceExternal, "external"},
		{SourceEdit, "edit"},
		{SourceUndo, "undo"},
		{SourceRedo, "redo"},
		{Source(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Source(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

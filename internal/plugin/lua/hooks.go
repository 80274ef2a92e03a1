package lua

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/caret/internal/logging"
	"github.com/dshills/caret/internal/notify"
)

// ModuleName is the global table scripts use to reach the editor.
const ModuleName = "caret"

// Subscriber is the part of a session that publishes value changes.
type Subscriber interface {
	Subscribe(observer notify.Observer) *notify.Subscription
}

// Hooks runs Lua callbacks registered with caret.on_change.
type Hooks struct {
	state  *State
	logger *logging.Logger

	mu        sync.Mutex
	callbacks []lua.LValue
	sub       *notify.Subscription
}

// NewHooks creates a state with the caret module installed.
func NewHooks(logger *logging.Logger, opts ...StateOption) (*Hooks, error) {
	if logger == nil {
		logger = logging.Null()
	}
	h := &Hooks{logger: logger.WithComponent("lua")}

	opts = append([]StateOption{WithPrinter(func(msg string) { h.logger.Info("%s", msg) })}, opts...)
	state, err := NewState(opts...)
	if err != nil {
		return nil, err
	}
	h.state = state

	state.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"on_change": h.luaOnChange,
		"log":       h.luaLog,
	})
	return h, nil
}

// LoadFile creates hooks and runs the script at path.
func LoadFile(path string, logger *logging.Logger, opts ...StateOption) (*Hooks, error) {
	h, err := NewHooks(logger, opts...)
	if err != nil {
		return nil, err
	}
	if err := h.state.DoFile(path); err != nil {
		_ = h.Close()
		return nil, fmt.Errorf("loading hook script %s: %w", path, err)
	}
	h.logger.Info("loaded %s: %d callback(s)", path, h.Len())
	return h, nil
}

// DoString runs a script fragment, typically to register callbacks.
func (h *Hooks) DoString(code string) error {
	return h.state.DoString(code)
}

// Attach subscribes the hooks to s. Attaching again moves the hooks to
// the new subscriber.
func (h *Hooks) Attach(s Subscriber) {
	sub := s.Subscribe(h.Dispatch)

	h.mu.Lock()
	old := h.sub
	h.sub = sub
	h.mu.Unlock()

	old.Unsubscribe()
}

// Dispatch calls every registered callback with change. A failing
// callback is logged and the rest still run.
func (h *Hooks) Dispatch(change notify.Change) {
	h.mu.Lock()
	callbacks := make([]lua.LValue, len(h.callbacks))
	copy(callbacks, h.callbacks)
	h.mu.Unlock()

	if len(callbacks) == 0 {
		return
	}

	arg := h.state.NewTable(map[string]lua.LValue{
		"value":           lua.LString(change.Value()),
		"selection_start": lua.LNumber(change.Snapshot.SelectionStart),
		"selection_end":   lua.LNumber(change.Snapshot.SelectionEnd),
		"source":          lua.LString(change.Source.String()),
	})

	for i, fn := range callbacks {
		if err := h.state.Call(fn, arg); err != nil {
			h.logger.Warn("on_change callback %d failed: %v", i+1, err)
		}
	}
}

// Len returns the number of registered callbacks.
func (h *Hooks) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.callbacks)
}

// Close detaches the hooks and closes the Lua state.
func (h *Hooks) Close() error {
	h.mu.Lock()
	sub := h.sub
	h.sub = nil
	h.callbacks = nil
	h.mu.Unlock()

	sub.Unsubscribe()
	return h.state.Close()
}

// luaOnChange implements caret.on_change(fn).
func (h *Hooks) luaOnChange(L *lua.LState) int {
	fn := L.CheckFunction(1)

	h.mu.Lock()
	h.callbacks = append(h.callbacks, fn)
	h.mu.Unlock()
	return 0
}

// luaLog implements caret.log(msg).
func (h *Hooks) luaLog(L *lua.LState) int {
	h.logger.Info("%s", L.CheckString(1))
	return 0
}

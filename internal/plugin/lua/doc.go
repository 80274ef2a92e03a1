// Package lua runs user Lua scripts that react to buffer changes.
//
// A script registers callbacks through the caret module:
//
//	caret.on_change(function(change)
//	    -- change.value, change.selection_start, change.selection_end,
//	    -- change.source ("edit", "external", "undo" or "redo")
//	    caret.log("length " .. #change.value)
//	end)
//
// # State
//
// The State type wraps gopher-lua with a restricted standard library
// (base, table, string and math; no io, os, debug or package) and a
// per-call execution timeout:
//
//	state, err := lua.NewState(lua.WithExecutionTimeout(time.Second))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer state.Close()
//
// # Hooks
//
// Hooks binds a State to a session's change notifications. Script errors
// are logged and never interrupt the edit that triggered them.
package lua

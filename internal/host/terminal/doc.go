// Package terminal is a tcell host for an editing session.
//
// It supplies what a browser text area would: a live value with a caret
// and selection (TextArea), the default handling of keys the session
// passes through, drawing (View), and an event loop (App) that routes
// every key to the session first.
package terminal

package terminal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/caret/internal/engine"
	"github.com/dshills/caret/internal/input/key"
	"github.com/dshills/caret/internal/logging"
)

// ErrNoScreen is returned by Run when the app has no screen.
var ErrNoScreen = errors.New("no screen")

// binding is a host-level key handler that runs before the session sees
// the key.
type binding struct {
	ev     key.Event
	action func()
}

// App routes terminal events through a session into a text area.
type App struct {
	screen  tcell.Screen
	area    *TextArea
	session *engine.Session
	view    *View
	logger  *logging.Logger

	bindings      []binding
	readClipboard func() (string, error)

	// Bracketed paste accumulates runes between start and end.
	pasting  bool
	pasteBuf strings.Builder

	quit   bool
	notice string
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClipboard sets the clipboard reader used by Ctrl+V.
func WithClipboard(read func() (string, error)) Option {
	return func(a *App) {
		a.readClipboard = read
	}
}

// NewApp creates an app. The screen must already be initialised; the
// caller owns its lifetime.
func NewApp(screen tcell.Screen, area *TextArea, session *engine.Session, opts ...Option) *App {
	a := &App{
		screen:        screen,
		area:          area,
		session:       session,
		logger:        logging.Null(),
		readClipboard: clipboard.ReadAll,
	}
	if screen != nil {
		a.view = NewView(screen)
	}

	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.WithComponent("terminal")

	a.bind("Ctrl+q", a.Quit)
	a.bind("Escape", a.Quit)
	a.bind("Ctrl+y", func() { a.session.Redo() })
	a.bind("Ctrl+v", a.paste)

	return a
}

func (a *App) bind(spec string, action func()) {
	a.bindings = append(a.bindings, binding{ev: key.MustParse(spec), action: action})
}

// Run processes events until Quit is called or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.screen == nil {
		return ErrNoScreen
	}
	a.screen.EnablePaste()
	a.draw()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = a.Post(a.Quit)
		case <-done:
		}
	}()

	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		a.HandleEvent(ev)
	}
	a.logger.Debug("event loop stopped")
	return nil
}

// Post schedules fn to run on the event loop. It is the only safe way for
// other goroutines, such as a config reloader, to reach the session.
func (a *App) Post(fn func()) error {
	return a.screen.PostEvent(tcell.NewEventInterrupt(fn))
}

// Quit stops the event loop after the current event.
func (a *App) Quit() {
	a.quit = true
}

// Notice shows msg in the status line until the next key.
func (a *App) Notice(msg string) {
	a.notice = msg
}

// HandleEvent processes a single tcell event and redraws.
func (a *App) HandleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		a.notice = ""
		if a.pasting {
			a.collectPaste(e)
			return
		}
		if kev, ok := EventFromTcell(e); ok {
			a.HandleKey(kev)
		}

	case *tcell.EventPaste:
		if e.Start() {
			a.pasting = true
			a.pasteBuf.Reset()
			return
		}
		a.pasting = false
		a.insert(a.pasteBuf.String())

	case *tcell.EventResize:
		a.screen.Sync()

	case *tcell.EventInterrupt:
		if fn, ok := e.Data().(func()); ok {
			fn()
		}
	}

	a.draw()
}

// HandleKey runs host bindings, then offers the key to the session, and
// finally applies the default handling when the session passes it
// through. Value changes made by default handling are reported back to
// the session so they enter history.
func (a *App) HandleKey(ev key.Event) {
	for _, b := range a.bindings {
		if b.ev.Equals(ev) {
			b.action()
			return
		}
	}

	if d := a.session.HandleKey(ev); d.Intercepted() {
		return
	}

	if a.area.Apply(ev) {
		a.session.OnExternalChange(a.area.Snapshot())
	}
}

func (a *App) collectPaste(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyRune:
		a.pasteBuf.WriteRune(e.Rune())
	case tcell.KeyEnter:
		a.pasteBuf.WriteByte('\n')
	case tcell.KeyTab:
		a.pasteBuf.WriteByte('\t')
	}
}

func (a *App) paste() {
	text, err := a.readClipboard()
	if err != nil {
		a.logger.Warn("clipboard read failed: %v", err)
		a.notice = fmt.Sprintf("paste failed: %v", err)
		return
	}
	a.insert(text)
}

// insert replaces the selection with text as one external change.
func (a *App) insert(text string) {
	if text == "" {
		return
	}
	a.area.Insert(text)
	a.session.OnExternalChange(a.area.Snapshot())
}

func (a *App) draw() {
	if a.view == nil {
		return
	}
	a.view.Draw(a.area.Snapshot(), a.area.Caret(), a.status())
}

func (a *App) status() string {
	if a.notice != "" {
		return " " + a.notice
	}

	cfg := a.session.Config()
	indent := "spaces"
	if !cfg.InsertSpaces {
		indent = "blocks"
	}
	tab := "tab"
	if !a.session.TabCapture() || cfg.IgnoreTabKey {
		tab = "tab off"
	}

	return fmt.Sprintf(" history %d/%d | %s %d %s | ^Z undo  ^Y redo  ^V paste  ^Q quit",
		a.session.Offset()+1, a.session.Len(), tab, cfg.TabSize, indent)
}

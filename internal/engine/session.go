package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/caret/internal/engine/history"
	"github.com/dshills/caret/internal/engine/textrange"
	"github.com/dshills/caret/internal/engine/transform"
	"github.com/dshills/caret/internal/input/key"
	"github.com/dshills/caret/internal/logging"
	"github.com/dshills/caret/internal/notify"
)

// Re-export commonly used types for convenience.
type (
	// TextRange is a text value with a selection span.
	TextRange = textrange.TextRange

	// Decision is the outcome of resolving a key event.
	Decision = transform.Decision

	// Change is a value-changed event.
	Change = notify.Change
)

// Buffer is the host's live text control.
type Buffer interface {
	// Snapshot returns the current value and selection.
	Snapshot() textrange.TextRange

	// SetSnapshot replaces the value and selection.
	SetSnapshot(tr textrange.TextRange)
}

// Session connects history and edit transforms to a host buffer.
type Session struct {
	id  uuid.UUID
	buf Buffer

	// Core components
	store    *history.Store
	ctl      *history.Controller
	notifier *notify.Notifier

	// Configuration
	cfg         transform.Config
	tabCapture  bool
	historyOpts []history.Option

	logger *logging.Logger
}

// New creates a session over buf and records the buffer's current
// snapshot, including its live selection, as the first history record.
func New(buf Buffer, opts ...Option) *Session {
	s := &Session{
		id:         uuid.New(),
		buf:        buf,
		notifier:   notify.New(),
		cfg:        transform.DefaultConfig(),
		tabCapture: true,
		logger:     logging.Null(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.WithComponent("session").WithField("session", s.id.String())
	s.store = history.NewStore(s.historyOpts...)
	s.ctl = history.NewController(s.store)
	s.store.Record(buf.Snapshot(), false)

	s.logger.Debug("session started: limit=%d gap=%s", s.store.Limit(), s.store.TimeGap())
	return s
}

// OnExternalChange records a change the host made on its own, such as
// typing a character, and notifies observers. Consecutive keystrokes that
// extend the same word are merged into one history record.
func (s *Session) OnExternalChange(snapshot textrange.TextRange) {
	merged := s.store.Record(snapshot, true)
	if merged {
		s.logger.Debug("coalesced external change at offset %d", s.store.Offset())
	} else {
		s.logger.Debug("recorded external change at offset %d", s.store.Offset())
	}
	s.notifier.Notify(notify.Change{Snapshot: snapshot, Source: notify.SourceExternal})
}

// HandleKey resolves ev against the buffer's current snapshot and applies
// the result. The returned Decision tells the host whether to suppress its
// default handling of the key.
func (s *Session) HandleKey(ev key.Event) transform.Decision {
	d := transform.Resolve(ev, s.buf.Snapshot(), s.effectiveConfig())

	switch d.Action {
	case transform.Edit:
		s.apply(d.Result)
	case transform.Undo:
		s.Undo()
	case transform.Redo:
		s.Redo()
	}

	if d.Intercepted() {
		s.logger.Debug("key %s intercepted: %s", ev, d.Action)
	}
	return d
}

// apply commits a transform result as its own history step, writes it to
// the buffer and notifies observers.
//
// Before recording, the current record's selection is updated to the
// buffer's live selection so that undoing this edit restores the caret
// where the user left it.
func (s *Session) apply(result textrange.TextRange) {
	s.store.CaptureSelection(s.buf.Snapshot())
	s.store.Record(result, false)
	s.logger.Debug("recorded edit at offset %d (len %d)", s.store.Offset(), s.store.Len())
	s.write(result, notify.SourceEdit)
}

// Undo restores the previous record. It returns false, with no observable
// effect, when there is nothing to undo.
func (s *Session) Undo() bool {
	tr, ok := s.ctl.Undo()
	if !ok {
		return false
	}
	s.logger.Debug("undo to offset %d", s.store.Offset())
	s.write(tr, notify.SourceUndo)
	return true
}

// Redo restores the next record. It returns false, with no observable
// effect, when there is nothing to redo.
func (s *Session) Redo() bool {
	tr, ok := s.ctl.Redo()
	if !ok {
		return false
	}
	s.logger.Debug("redo to offset %d", s.store.Offset())
	s.write(tr, notify.SourceRedo)
	return true
}

func (s *Session) write(tr textrange.TextRange, source notify.Source) {
	s.buf.SetSnapshot(tr)
	s.notifier.Notify(notify.Change{Snapshot: tr, Source: source})
}

// effectiveConfig applies the tab capture state to the configuration.
func (s *Session) effectiveConfig() transform.Config {
	cfg := s.cfg
	if !s.tabCapture {
		cfg.IgnoreTabKey = true
	}
	return cfg
}

// Subscribe registers observer for value changes.
func (s *Session) Subscribe(observer notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(observer)
}

// Config returns the edit configuration.
func (s *Session) Config() transform.Config {
	return s.cfg
}

// SetConfig replaces the edit configuration. History is unaffected.
func (s *Session) SetConfig(cfg transform.Config) {
	s.cfg = cfg
	s.logger.Debug("config updated: tabSize=%d insertSpaces=%v", cfg.TabSize, cfg.InsertSpaces)
}

// TabCapture reports whether Tab is taken over by the session.
func (s *Session) TabCapture() bool {
	return s.tabCapture
}

// SetTabCapture enables or disables Tab handling so a host can release the
// key for focus navigation.
func (s *Session) SetTabCapture(capture bool) {
	s.tabCapture = capture
}

// SetHistoryLimit changes the maximum number of history records.
func (s *Session) SetHistoryLimit(limit int) {
	s.store.SetLimit(limit)
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Snapshot returns the buffer's current state.
func (s *Session) Snapshot() textrange.TextRange {
	return s.buf.Snapshot()
}

// CanUndo returns true if undo is available.
func (s *Session) CanUndo() bool {
	return s.store.CanUndo()
}

// CanRedo returns true if redo is available.
func (s *Session) CanRedo() bool {
	return s.store.CanRedo()
}

// Len returns the number of history records.
func (s *Session) Len() int {
	return s.store.Len()
}

// Offset returns the index of the current history record.
func (s *Session) Offset() int {
	return s.store.Offset()
}

// History returns a copy of the history records, oldest first.
func (s *Session) History() []history.Record {
	return s.store.Records()
}

// Close releases observers. The session must not be used afterwards.
func (s *Session) Close() {
	s.notifier.Close()
}

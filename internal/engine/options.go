package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/dshills/caret/internal/engine/history"
	"github.com/dshills/caret/internal/engine/transform"
	"github.com/dshills/caret/internal/logging"
	"github.com/dshills/caret/internal/notify"
)

// Option configures a Session during creation.
type Option func(*Session)

// WithConfig sets the edit configuration.
func WithConfig(cfg transform.Config) Option {
	return func(s *Session) {
		s.cfg = cfg
	}
}

// WithHistoryLimit sets the maximum number of history records.
func WithHistoryLimit(limit int) Option {
	return func(s *Session) {
		s.historyOpts = append(s.historyOpts, history.WithLimit(limit))
	}
}

// WithHistoryTimeGap sets the window within which typed words coalesce.
func WithHistoryTimeGap(gap time.Duration) Option {
	return func(s *Session) {
		s.historyOpts = append(s.historyOpts, history.WithTimeGap(gap))
	}
}

// WithClock sets the time source used to stamp history records.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.historyOpts = append(s.historyOpts, history.WithClock(now))
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithOnChange subscribes observer to value changes.
func WithOnChange(observer notify.Observer) Option {
	return func(s *Session) {
		if observer != nil {
			s.notifier.Subscribe(observer)
		}
	}
}

// WithID sets the session identifier used in log fields.
func WithID(id uuid.UUID) Option {
	return func(s *Session) {
		s.id = id
	}
}

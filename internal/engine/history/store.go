package history

import (
	"slices"
	"time"

	"github.com/dshills/caret/internal/engine/textrange"
)

// Default history policy.
const (
	// DefaultLimit is the maximum number of records kept.
	DefaultLimit = 100

	// DefaultTimeGap is the window within which word edits coalesce.
	DefaultTimeGap = 3000 * time.Millisecond
)

// Record is a snapshot stored in the history.
type Record struct {
	textrange.TextRange
	Timestamp time.Time
}

// Store manages the bounded snapshot log for one session.
type Store struct {
	stack  []Record
	offset int

	// Configuration
	limit   int
	timeGap time.Duration
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLimit sets the maximum number of records.
func WithLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// WithTimeGap sets the coalescing window.
func WithTimeGap(gap time.Duration) Option {
	return func(s *Store) {
		if gap >= 0 {
			s.timeGap = gap
		}
	}
}

// WithClock sets the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty history.
func NewStore(opts ...Option) *Store {
	s := &Store{
		offset:  -1,
		limit:   DefaultLimit,
		timeGap: DefaultTimeGap,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record commits candidate to the history.
//
// Any redo records are discarded first. When overwrite is true and the
// current record continues the same word within the time gap, the current
// record is replaced in place and Record returns true. Otherwise a new
// record is appended and Record returns false.
func (s *Store) Record(candidate textrange.TextRange, overwrite bool) bool {
	if len(s.stack) > 0 && s.offset > -1 {
		s.stack = s.stack[:s.offset+1]
		s.trim()
	}

	timestamp := s.now()

	if overwrite && s.coalesce(candidate, timestamp) {
		return true
	}

	s.stack = append(s.stack, Record{TextRange: candidate, Timestamp: timestamp})
	s.offset++
	s.trim()
	return false
}

// trim drops the oldest records beyond the limit.
func (s *Store) trim() {
	excess := len(s.stack) - s.limit
	if excess <= 0 {
		return
	}
	s.stack = slices.Delete(s.stack, 0, excess)
	s.offset = max(s.offset-excess, 0)
}

// CaptureSelection rewrites the selection of the current record to match
// live, leaving its value and timestamp untouched. It is used before a
// structural edit so that undoing the edit restores the caret the user
// actually had, even if it moved since the record was made.
func (s *Store) CaptureSelection(live textrange.TextRange) {
	if s.offset < 0 || s.offset >= len(s.stack) {
		return
	}
	cur := s.stack[s.offset]
	cur.TextRange = cur.WithSelection(live.SelectionStart, live.SelectionEnd)
	s.stack[s.offset] = cur
}

// Current returns the record at the offset.
func (s *Store) Current() (Record, bool) {
	if s.offset < 0 || s.offset >= len(s.stack) {
		return Record{}, false
	}
	return s.stack[s.offset], true
}

// At returns the record at index i.
func (s *Store) At(i int) (Record, bool) {
	if i < 0 || i >= len(s.stack) {
		return Record{}, false
	}
	return s.stack[i], true
}

// Records returns a copy of the stored records, oldest first.
func (s *Store) Records() []Record {
	return slices.Clone(s.stack)
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	return len(s.stack)
}

// Offset returns the index of the current record, or -1 when empty.
func (s *Store) Offset() int {
	return s.offset
}

// CanUndo returns true if a record precedes the offset.
func (s *Store) CanUndo() bool {
	return s.offset > 0
}

// CanRedo returns true if a record follows the offset.
func (s *Store) CanRedo() bool {
	return s.offset+1 < len(s.stack)
}

// Limit returns the maximum number of records.
func (s *Store) Limit() int {
	return s.limit
}

// SetLimit changes the maximum number of records. Existing records are
// kept; a larger log is trimmed by the next Record, after the redo tail
// has been dropped, so the current record always survives.
func (s *Store) SetLimit(limit int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	s.limit = limit
}

// TimeGap returns the coalescing window.
func (s *Store) TimeGap() time.Duration {
	return s.timeGap
}

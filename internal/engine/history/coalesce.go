package history

import (
	"regexp"
	"strings"
	"time"

	"github.com/dshills/caret/internal/engine/textrange"
)

// trailingWord matches the ASCII alphanumeric word that ends a line,
// provided a non-alphanumeric character precedes it.
var trailingWord = regexp.MustCompile(`[^a-zA-Z0-9]([a-zA-Z0-9]+)$`)

// lastWord returns the word ending at the caret of r.
// Only the line holding the caret is considered.
func lastWord(r textrange.TextRange) (string, bool) {
	m := trailingWord.FindStringSubmatch(r.CurrentLine())
	if m == nil || m[1] == "" {
		return "", false
	}
	return m[1], true
}

// coalesce replaces the current record with candidate when candidate
// extends the word typed in that record within the time gap.
func (s *Store) coalesce(candidate textrange.TextRange, timestamp time.Time) bool {
	last, ok := s.Current()
	if !ok {
		return false
	}
	if timestamp.Sub(last.Timestamp) >= s.timeGap {
		return false
	}

	prev, ok := lastWord(last.TextRange)
	if !ok {
		return false
	}
	cur, ok := lastWord(candidate)
	if !ok || !strings.HasPrefix(cur, prev) {
		return false
	}

	s.stack[s.offset] = Record{TextRange: candidate, Timestamp: timestamp}
	return true
}

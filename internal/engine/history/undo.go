package history

import "github.com/dshills/caret/internal/engine/textrange"

// Controller navigates a Store backwards and forwards.
type Controller struct {
	store *Store
}

// NewController creates a controller over store.
func NewController(store *Store) *Controller {
	return &Controller{store: store}
}

// Undo moves to the previous record and returns it.
// Returns false, leaving the offset unchanged, when there is nothing to undo.
func (c *Controller) Undo() (textrange.TextRange, bool) {
	s := c.store
	rec, ok := s.At(s.offset - 1)
	if !ok {
		return textrange.TextRange{}, false
	}
	s.offset = max(s.offset-1, 0)
	return rec.TextRange, true
}

// Redo moves to the next record and returns it.
// Returns false, leaving the offset unchanged, when there is nothing to redo.
func (c *Controller) Redo() (textrange.TextRange, bool) {
	s := c.store
	rec, ok := s.At(s.offset + 1)
	if !ok {
		return textrange.TextRange{}, false
	}
	s.offset = min(s.offset+1, len(s.stack)-1)
	return rec.TextRange, true
}

// Store returns the underlying store.
func (c *Controller) Store() *Store {
	return c.store
}

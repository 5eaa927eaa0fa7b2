package board

import "errors"

var (
	// ErrNotFound reports an operation against a column or card id that
	// is no longer in the model. Ids can go stale between the moment the
	// UI rendered and the moment the action arrives, so callers treat
	// this as a benign no-op rather than a failure.
	ErrNotFound = errors.New("column or card not found")

	// ErrEmptyText rejects adding a fully formed card with blank text.
	// Cards never hold empty text; an empty commit deletes instead.
	ErrEmptyText = errors.New("card text is empty")
)

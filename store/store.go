package store

import "context"

// Storage keys. The names are inherited from the original browser build
// of Jello, which kept the board in localStorage under these entries.
const (
	// BoardKey holds the JSON array of columns with their cards.
	BoardKey = "jelloBoard"
	// NextColumnIDKey holds the column counter as a decimal string.
	NextColumnIDKey = "jelloNextColumnId"
)

// Store is the key-value persistence behind the board. Get reports
// whether the key was present; an absent key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

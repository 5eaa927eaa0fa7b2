package models

// Commit result values returned by PUT /cards/{id}
const (
	ResultCommitted = "committed"
	ResultDiscarded = "discarded"
)

// Request types

type CreateColumnRequest struct {
	Title string `json:"title"`
}

type RenameColumnRequest struct {
	Title string `json:"title"`
}

// Text is a pointer so the handler can tell "no text yet, start an
// editing card" apart from an explicit empty string.
type CreateCardRequest struct {
	Text *string `json:"text"`
}

type CommitCardRequest struct {
	Text string `json:"text"`
}

// MoveCardRequest relocates a card. One placement hint applies: an
// explicit index, or a pointer position plus the target column's measured
// layout (drag-and-drop), or neither (append to the end).
type MoveCardRequest struct {
	ColumnID string            `json:"column_id"`
	Index    *int              `json:"index,omitempty"`
	PointerY *float64          `json:"pointer_y,omitempty"`
	Layout   []CardLayoutEntry `json:"layout,omitempty"`
}

type CardLayoutEntry struct {
	CardID string  `json:"card_id"`
	Center float64 `json:"center"`
}

type ImportRequest struct {
	Text     string `json:"text"`
	ColumnID string `json:"column_id,omitempty"`
}

// Response types

type CreateColumnResponse struct {
	ColumnID string `json:"column_id"`
	Title    string `json:"title"`
}

type RenameColumnResponse struct {
	ColumnID string `json:"column_id"`
	Title    string `json:"title"`
}

type CreateCardResponse struct {
	CardID string `json:"card_id"`
	// Pending is true for an editing card awaiting its first commit.
	Pending bool `json:"pending"`
}

type CommitCardResponse struct {
	CardID string `json:"card_id"`
	Result string `json:"result"`
}

type VoteResponse struct {
	CardID string `json:"card_id"`
	Count  int    `json:"count"`
}

type MoveCardResponse struct {
	ColumnID  string   `json:"column_id"`
	CardOrder []string `json:"card_order"`
}

type ImportResponse struct {
	ColumnID   string `json:"column_id"`
	CardsAdded int    `json:"cards_added"`
}

// Board projection

type CardView struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

type ColumnView struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	CardCount int        `json:"card_count"`
	Cards     []CardView `json:"cards"`
}

type BoardView struct {
	Columns      []ColumnView `json:"columns"`
	NextColumnID int          `json:"next_column_id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

package board

import (
	"fmt"
	"slices"
	"strings"
)

// Card is a user-authored text item with its vote tallies. Text is always
// non-empty after trimming; a commit that trims to empty deletes the card
// instead. Vote counts only ever increase.
type Card struct {
	ID        string
	Text      string
	Upvotes   int
	Downvotes int
}

// Column is a named, ordered bucket of cards. CardOrder is the
// authoritative display order; a card belongs to exactly one column by
// membership in its CardOrder.
type Column struct {
	ID        string
	Title     string
	CardOrder []string
}

// CommitResult reports what CommitCardText did with the submitted text.
type CommitResult int

const (
	// Committed means the card now holds the trimmed text.
	Committed CommitResult = iota
	// Discarded means the text was blank and the card was deleted.
	Discarded
)

func (r CommitResult) String() string {
	if r == Discarded {
		return "discarded"
	}
	return "committed"
}

// Model is the board state: all columns and cards, plus the column-id
// counter. It is the single source of truth; callers re-render from it
// after every mutation and never read state back from anywhere else.
//
// Model is not safe for concurrent use. The serving layer holds a mutex
// so operations run one at a time, the way the original single-threaded
// event loop processed them.
type Model struct {
	columns []*Column
	cards   map[string]*Card
	// pending maps a freshly created, not-yet-committed card to its
	// target column. Pending cards are invisible: they are in no
	// CardOrder, not counted, and not serialized.
	pending map[string]string
	gen     *IDGenerator
}

// New returns an empty board with the column counter at 1.
func New() *Model {
	return &Model{
		cards:   make(map[string]*Card),
		pending: make(map[string]string),
		gen:     NewIDGenerator(1),
	}
}

// CreateColumn appends a new column and returns its id. A blank title
// defaults to "Column <N>" using the counter value the column is issued.
func (m *Model) CreateColumn(title string) string {
	if strings.TrimSpace(title) == "" {
		title = fmt.Sprintf("Column %d", m.gen.Peek())
	}
	id := fmt.Sprintf("column-%d", m.gen.Next())
	m.columns = append(m.columns, &Column{ID: id, Title: title})
	return id
}

// RenameColumn replaces the column title with the trimmed text. A blank
// submission keeps the prior title.
func (m *Model) RenameColumn(id, title string) error {
	col := m.column(id)
	if col == nil {
		return ErrNotFound
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	col.Title = title
	return nil
}

// DeleteColumn removes the column and destroys every card it holds,
// including pending cards that were being typed into it.
func (m *Model) DeleteColumn(id string) error {
	idx := slices.IndexFunc(m.columns, func(c *Column) bool { return c.ID == id })
	if idx == -1 {
		return ErrNotFound
	}
	for _, cardID := range m.columns[idx].CardOrder {
		delete(m.cards, cardID)
	}
	for cardID, colID := range m.pending {
		if colID == id {
			delete(m.pending, cardID)
			delete(m.cards, cardID)
		}
	}
	m.columns = slices.Delete(m.columns, idx, idx+1)
	return nil
}

// CreateCard starts a new card in the editing state: it exists but holds
// no text and is not part of the column until its first non-empty commit.
func (m *Model) CreateCard(columnID string) (string, error) {
	if m.column(columnID) == nil {
		return "", ErrNotFound
	}
	id := NewCardID()
	m.cards[id] = &Card{ID: id}
	m.pending[id] = columnID
	return id, nil
}

// AddCard appends a fully formed card with zero votes to the column.
func (m *Model) AddCard(columnID, text string) (string, error) {
	return m.InsertCard(columnID, text, 0, 0)
}

// InsertCard appends a card with the given text and vote tallies. Used by
// the load path, which rebuilds cards with their persisted votes.
func (m *Model) InsertCard(columnID, text string, upvotes, downvotes int) (string, error) {
	col := m.column(columnID)
	if col == nil {
		return "", ErrNotFound
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	id := NewCardID()
	m.cards[id] = &Card{ID: id, Text: text, Upvotes: upvotes, Downvotes: downvotes}
	col.CardOrder = append(col.CardOrder, id)
	return id, nil
}

// CommitCardText finalizes edited or newly entered text. A non-empty trim
// sets the text (and, for a pending card, places it at the end of its
// column). An empty trim always deletes the card, whether this was the
// first entry or a later edit.
func (m *Model) CommitCardText(cardID, text string) (CommitResult, error) {
	card, ok := m.cards[cardID]
	if !ok {
		return Discarded, ErrNotFound
	}
	text = strings.TrimSpace(text)
	if text == "" {
		m.DeleteCard(cardID)
		return Discarded, nil
	}
	card.Text = text
	if colID, pending := m.pending[cardID]; pending {
		col := m.column(colID)
		if col == nil {
			delete(m.pending, cardID)
			delete(m.cards, cardID)
			return Discarded, ErrNotFound
		}
		col.CardOrder = append(col.CardOrder, cardID)
		delete(m.pending, cardID)
	}
	return Committed, nil
}

// DeleteCard removes the card from its column and from the board. It is a
// no-op if the card is already gone, so stale delete clicks are harmless.
func (m *Model) DeleteCard(cardID string) {
	delete(m.pending, cardID)
	delete(m.cards, cardID)
	for _, col := range m.columns {
		if i := slices.Index(col.CardOrder, cardID); i != -1 {
			col.CardOrder = slices.Delete(col.CardOrder, i, i+1)
			return
		}
	}
}

// Upvote increments the card's upvote count and resorts its column, since
// upvotes drive display order.
func (m *Model) Upvote(cardID string) (int, error) {
	card, ok := m.cards[cardID]
	if !ok {
		return 0, ErrNotFound
	}
	card.Upvotes++
	if col := m.owningColumn(cardID); col != nil {
		m.resortColumn(col)
	}
	return card.Upvotes, nil
}

// Downvote increments the card's downvote count. Downvotes are cosmetic
// and do not reorder the column; only upvotes do.
func (m *Model) Downvote(cardID string) (int, error) {
	card, ok := m.cards[cardID]
	if !ok {
		return 0, ErrNotFound
	}
	card.Downvotes++
	return card.Downvotes, nil
}

// MoveCard relocates the card into the target column at the given index
// (clamped to the column bounds), then resorts the target by votes. With
// equal vote counts the stable sort keeps the dropped position.
func (m *Model) MoveCard(cardID, targetColumnID string, index int) error {
	if _, ok := m.cards[cardID]; !ok {
		return ErrNotFound
	}
	target := m.column(targetColumnID)
	if target == nil {
		return ErrNotFound
	}
	src := m.owningColumn(cardID)
	if src == nil {
		// Pending cards are not draggable yet.
		return ErrNotFound
	}
	i := slices.Index(src.CardOrder, cardID)
	src.CardOrder = slices.Delete(src.CardOrder, i, i+1)
	if index < 0 {
		index = 0
	}
	if index > len(target.CardOrder) {
		index = len(target.CardOrder)
	}
	target.CardOrder = slices.Insert(target.CardOrder, index, cardID)
	m.resortColumn(target)
	return nil
}

// CardCount reports the number of cards in the column. Pending cards do
// not count until committed.
func (m *Model) CardCount(columnID string) (int, error) {
	col := m.column(columnID)
	if col == nil {
		return 0, ErrNotFound
	}
	return len(col.CardOrder), nil
}

// Columns returns the board's columns in display order.
func (m *Model) Columns() []*Column {
	return m.columns
}

// Column looks up a column by id.
func (m *Model) Column(id string) (*Column, bool) {
	col := m.column(id)
	return col, col != nil
}

// Card looks up a card by id.
func (m *Model) Card(id string) (*Card, bool) {
	card, ok := m.cards[id]
	return card, ok
}

// CardsIn returns the column's cards in display order.
func (m *Model) CardsIn(columnID string) ([]*Card, error) {
	col := m.column(columnID)
	if col == nil {
		return nil, ErrNotFound
	}
	cards := make([]*Card, 0, len(col.CardOrder))
	for _, id := range col.CardOrder {
		cards = append(cards, m.cards[id])
	}
	return cards, nil
}

// NextColumnID exposes the counter value the next column will be issued.
// It is persisted alongside the board so ids never collide across sessions.
func (m *Model) NextColumnID() int {
	return m.gen.Peek()
}

// RestoreNextColumnID raises the counter to a persisted value. It never
// lowers the counter below what this session has already issued.
func (m *Model) RestoreNextColumnID(n int) {
	m.gen.Restore(n)
}

func (m *Model) column(id string) *Column {
	for _, col := range m.columns {
		if col.ID == id {
			return col
		}
	}
	return nil
}

func (m *Model) owningColumn(cardID string) *Column {
	for _, col := range m.columns {
		if slices.Contains(col.CardOrder, cardID) {
			return col
		}
	}
	return nil
}

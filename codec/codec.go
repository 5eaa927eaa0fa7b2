package codec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/diegopacheco/jello/board"
	"github.com/diegopacheco/jello/store"
)

// ErrCorruptData reports a persisted payload that matches neither the
// current shape nor any accepted legacy shape. Loading falls back to a
// fresh default board rather than halting.
var ErrCorruptData = errors.New("persisted board data is corrupt")

// columnPayload is the stored shape of a column. Card order in the array
// is the column's display order, already vote-sorted if a sort occurred.
type columnPayload struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Cards []cardPayload `json:"cards"`
}

type cardPayload struct {
	Text      string `json:"text"`
	Upvotes   int    `json:"upvotes"`
	Downvotes int    `json:"downvotes"`
}

// Serialize renders the board as the BoardKey JSON array. Pending cards
// are not part of any column order and therefore never persist.
func Serialize(m *board.Model) ([]byte, error) {
	cols := m.Columns()
	payload := make([]columnPayload, 0, len(cols))
	for _, col := range cols {
		cp := columnPayload{ID: col.ID, Title: col.Title, Cards: []cardPayload{}}
		for _, cardID := range col.CardOrder {
			card, ok := m.Card(cardID)
			if !ok {
				continue
			}
			cp.Cards = append(cp.Cards, cardPayload{
				Text:      card.Text,
				Upvotes:   card.Upvotes,
				Downvotes: card.Downvotes,
			})
		}
		payload = append(payload, cp)
	}
	return json.Marshal(payload)
}

// Deserialize rebuilds a board from the stored payload and counter
// string. The counter is restored first, then columns are recreated in
// order with freshly issued ids — stored ids are session-scoped and never
// reused. Each column is vote-sorted after its cards are rebuilt.
//
// A card entry may be a bare string (the oldest format, votes default to
// 0) or an object with text and optional vote counts. Anything else is
// ErrCorruptData.
func Deserialize(data []byte, nextColumnID string) (*board.Model, error) {
	m := board.New()
	if s := strings.TrimSpace(nextColumnID); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: bad next column id %q", ErrCorruptData, nextColumnID)
		}
		m.RestoreNextColumnID(n)
	}

	var cols []struct {
		Title string            `json:"title"`
		Cards []json.RawMessage `json:"cards"`
	}
	if err := json.Unmarshal(data, &cols); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	for _, cp := range cols {
		colID := m.CreateColumn(cp.Title)
		for _, raw := range cp.Cards {
			card, err := decodeCard(raw)
			if err != nil {
				return nil, err
			}
			if strings.TrimSpace(card.Text) == "" {
				// The original never saved blank cards; drop any stragglers.
				continue
			}
			if _, err := m.InsertCard(colID, card.Text, card.Upvotes, card.Downvotes); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
			}
		}
		m.ResortColumn(colID)
	}
	return m, nil
}

func decodeCard(raw json.RawMessage) (cardPayload, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return cardPayload{Text: text}, nil
	}
	var obj struct {
		Text      *string `json:"text"`
		Upvotes   int     `json:"upvotes"`
		Downvotes int     `json:"downvotes"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil || obj.Text == nil {
		return cardPayload{}, fmt.Errorf("%w: unrecognized card entry %s", ErrCorruptData, raw)
	}
	if obj.Upvotes < 0 || obj.Downvotes < 0 {
		return cardPayload{}, fmt.Errorf("%w: negative vote count in %s", ErrCorruptData, raw)
	}
	return cardPayload{Text: *obj.Text, Upvotes: obj.Upvotes, Downvotes: obj.Downvotes}, nil
}

// Load reads the board from the store. An absent board yields the default
// starter board; a corrupt one is logged and replaced by the default.
// Store I/O errors are returned as-is so the caller can fail fast.
func Load(ctx context.Context, st store.Store) (*board.Model, error) {
	counter := ""
	if v, ok, err := st.Get(ctx, store.NextColumnIDKey); err != nil {
		return nil, fmt.Errorf("load next column id: %w", err)
	} else if ok {
		counter = v
	}
	data, ok, err := st.Get(ctx, store.BoardKey)
	if err != nil {
		return nil, fmt.Errorf("load board: %w", err)
	}
	if !ok {
		return DefaultBoard(counter), nil
	}
	m, err := Deserialize([]byte(data), counter)
	if err != nil {
		slog.Warn("stored board is corrupt, starting fresh", "error", err)
		return DefaultBoard(counter), nil
	}
	return m, nil
}

// DefaultBoard is the fresh-start board: a single "To Do" column. The
// counter string is honored when parseable so ids keep advancing even
// after a corrupt board payload.
func DefaultBoard(nextColumnID string) *board.Model {
	m, err := Deserialize([]byte("[]"), nextColumnID)
	if err != nil {
		m = board.New()
	}
	m.CreateColumn("To Do")
	return m
}

// Save writes both storage entries. Callers invoke it synchronously after
// every mutation, so an acknowledged action survives a crash.
func Save(ctx context.Context, st store.Store, m *board.Model) error {
	data, err := Serialize(m)
	if err != nil {
		return fmt.Errorf("serialize board: %w", err)
	}
	if err := st.Set(ctx, store.BoardKey, string(data)); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	if err := st.Set(ctx, store.NextColumnIDKey, strconv.Itoa(m.NextColumnID())); err != nil {
		return fmt.Errorf("save next column id: %w", err)
	}
	return nil
}

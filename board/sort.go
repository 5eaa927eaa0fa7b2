package board

import "sort"

// SortByVotes returns the card ids ordered by descending upvote count.
// The sort is stable: cards with equal upvotes keep the relative order
// they arrived in, so resorting after every single vote never shuffles
// unrelated ties. Downvotes do not participate.
func SortByVotes(cards []*Card) []string {
	sorted := make([]*Card, len(cards))
	copy(sorted, cards)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Upvotes > sorted[j].Upvotes
	})
	ids := make([]string, len(sorted))
	for i, card := range sorted {
		ids[i] = card.ID
	}
	return ids
}

// ResortColumn recomputes the column's display order by votes. The load
// path calls this once per column after rebuilding its cards.
func (m *Model) ResortColumn(columnID string) error {
	col := m.column(columnID)
	if col == nil {
		return ErrNotFound
	}
	m.resortColumn(col)
	return nil
}

func (m *Model) resortColumn(col *Column) {
	cards := make([]*Card, 0, len(col.CardOrder))
	for _, id := range col.CardOrder {
		cards = append(cards, m.cards[id])
	}
	col.CardOrder = SortByVotes(cards)
}

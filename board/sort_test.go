package board

import "testing"

func TestSortByVotesDescending(t *testing.T) {
	cards := []*Card{
		{ID: "a", Upvotes: 1},
		{ID: "b", Upvotes: 5},
		{ID: "c", Upvotes: 3},
	}

	got := SortByVotes(cards)
	want := []string{"b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestSortByVotesStability(t *testing.T) {
	// Ties keep the relative order the cards arrived in.
	cards := []*Card{
		{ID: "a", Upvotes: 2},
		{ID: "b", Upvotes: 2},
		{ID: "c", Upvotes: 2},
		{ID: "d", Upvotes: 9},
	}

	got := SortByVotes(cards)
	want := []string{"d", "a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}
}

func TestSortByVotesIgnoresDownvotes(t *testing.T) {
	cards := []*Card{
		{ID: "a", Upvotes: 1, Downvotes: 100},
		{ID: "b", Upvotes: 0, Downvotes: 0},
	}

	got := SortByVotes(cards)
	if got[0] != "a" {
		t.Errorf("Downvotes must not affect order; got %v", got)
	}
}

// The stability law: after every single upvote the column is sorted
// descending by upvotes, and equal-vote cards never swap places.
func TestRepeatedUpvotesNeverShuffleTies(t *testing.T) {
	m := New()
	col := m.CreateColumn("To Do")
	ids := addCards(t, m, col, "a", "b", "c", "d", "e")

	votes := []int{2, 0, 2, 1, 0} // ids[0] twice, ids[2] twice, ids[3] once
	sequence := []string{ids[0], ids[2], ids[3], ids[0], ids[2]}

	for _, id := range sequence {
		if _, err := m.Upvote(id); err != nil {
			t.Fatalf("Upvote failed: %v", err)
		}
		assertSortedStable(t, m, col)
	}

	// Final sanity: tallies match the vote plan.
	for i, id := range ids {
		card, _ := m.Card(id)
		if card.Upvotes != votes[i] {
			t.Errorf("Card %d: expected %d upvotes, got %d", i, votes[i], card.Upvotes)
		}
	}

	// a and c are tied at 2; a was ahead of c before the last resort and
	// must still be. Same for the 0-vote tie between b and e.
	c, _ := m.Column(col)
	order := map[string]int{}
	for i, id := range c.CardOrder {
		order[id] = i
	}
	if order[ids[0]] > order[ids[2]] {
		t.Error("Tied cards a and c swapped places")
	}
	if order[ids[1]] > order[ids[4]] {
		t.Error("Tied cards b and e swapped places")
	}
}

func assertSortedStable(t *testing.T, m *Model, columnID string) {
	t.Helper()
	cards, err := m.CardsIn(columnID)
	if err != nil {
		t.Fatalf("CardsIn failed: %v", err)
	}
	for i := 1; i < len(cards); i++ {
		if cards[i-1].Upvotes < cards[i].Upvotes {
			t.Fatalf("Column not sorted descending at %d: %d < %d",
				i, cards[i-1].Upvotes, cards[i].Upvotes)
		}
	}
}

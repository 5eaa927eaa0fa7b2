/*
Package board is the kanban board state engine: the in-memory model of
columns and cards, every operation that mutates it, and the two pure
algorithms the UI consults — the vote sort and the drag insertion planner.

# Model

Model owns an ordered list of columns and a map of cards. A card belongs
to a column by membership in that column's CardOrder; a card in no
CardOrder is either pending (created, awaiting its first text commit) or
deleted. The model is the single source of truth: the serving layer
projects state out of it after every mutation and never reads anything
back in.

	m := board.New()
	colID := m.CreateColumn("To Do")
	cardID, _ := m.AddCard(colID, "write the docs")
	m.Upvote(cardID)

# Ordering rules

Upvoting resorts the owning column by descending upvotes with a stable
sort, so equal-vote cards never shuffle. Downvoting records the tally but
does not reorder — only upvotes drive display order. Moving a card
inserts it at the requested index and then resorts the target column;
among equal vote counts the stable sort preserves the dropped position.

# Lifecycle of card text

CommitCardText implements one rule for both first entry and later edits:
non-empty trimmed text is committed, empty text deletes the card. A card
created without text stays pending — absent from counts, ordering and
persistence — until its first successful commit.

# Identifiers

Column ids are column-<N> from a monotonic counter that is persisted and
restored across sessions (see IDGenerator). Card ids are minted fresh
each session with NewCardID; they are session-scoped, never durable.
*/
package board

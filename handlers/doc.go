/*
Package handlers contains the HTTP request handlers for the Jello board
API.

# Handler Types

Each handler is a struct around the shared State (the board model plus
its store, behind one mutex):

  - BoardHandler: the full board projection
  - ColumnHandler: column lifecycle (create, rename, delete)
  - CardHandler: card lifecycle, voting and moving
  - ImportHandler: bulk import from pasted text

Handlers are created via constructor functions that accept the State:

	state := handlers.NewState(model, st)
	cardHandler := handlers.NewCardHandler(state)

# Mutation discipline

Every mutating handler takes the lock, applies exactly one model
operation, persists the whole board synchronously, and only then answers.
A 2xx response therefore means the action is already durable. Stale ids
(the UI acted on an outdated snapshot) map to 404 and change nothing.

# Moving cards

POST /cards/{id}/move accepts three placements: an explicit index, a
drag gesture (pointer_y plus the target column's card centers, resolved
by the insertion planner in package board), or nothing, which appends.
The target column is vote-sorted after every move; among equal vote
counts the stable sort keeps the dropped position.

# Import

The line-splitting algorithm lives in import.go next to its handler:
split on newlines, trim, drop blanks, one card per surviving line.
*/
package handlers

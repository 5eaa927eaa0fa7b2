/*
Package models holds the request and response types of the Jello API.

Requests mirror the gestures of the board UI: create and rename columns,
add and commit card text, vote, move (with an optional drag layout), and
bulk import. Responses carry the ids and tallies the UI re-renders from,
plus the full BoardView projection served by GET /board.

These are wire types only; the domain lives in package board.
*/
package models

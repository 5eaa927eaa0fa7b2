/*
Package codec translates between the in-memory board and its persisted
form: the two storage keys the original browser build used.

jelloBoard is a JSON array of columns, each with its title and ordered
cards; jelloNextColumnId is the column counter as a decimal string.
Deserialization accepts three historical card shapes — a bare string, an
object with text and votes, and an object with the vote fields absent —
and rejects everything else as ErrCorruptData. A corrupt or absent board
falls back to a single "To Do" column; nothing here ever halts the server.

Identifiers do not survive a round trip. Columns and cards get fresh ids
on load; only relative order, titles and (text, upvotes, downvotes)
survive, with the counter restored before any column is rebuilt.
*/
package codec

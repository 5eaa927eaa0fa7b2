/*
Package main provides the entry point for the Jello board server.

Jello is a single-board kanban service: columns of cards with up/down
voting, vote-driven ordering, drag-and-drop placement, and bulk import,
persisted as two key-value entries and served over a small JSON API.

# Starting the Server

With no configuration the server listens on :8080 and keeps the board in
a local sqlite file:

	go run .

Or against postgres / an S3 bucket:

	go run . -t postgres -d "postgres://..."
	go run . -t s3 -s3-config s3.yml

# Configuration

Settings come from CLI flags with environment fallbacks (and an optional
.env file):

  - PORT (-p): server port (default: 8080)
  - STORE_TYPE (-t): sqlite, postgres or s3 (default: sqlite)
  - DATABASE_URL (-d): sqlite/postgres connection string
  - S3_CONFIG (-s3-config): YAML file for the S3 store

# Architecture

The server uses a handler-based architecture around one shared board:

  - board: the state engine — columns, cards, votes, ordering
  - codec: (de)serialization to the two storage keys, legacy upgrade
  - store: sqlite/postgres, S3 and in-memory key-value stores
  - handlers: HTTP handlers over the mutex-guarded board
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, CORS, JSON helpers
  - models: request/response types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main

/*
Package store provides the key-value persistence behind the board.

The board persists as exactly two entries: BoardKey, the JSON array of
columns with their cards, and NextColumnIDKey, the column counter as a
decimal string. Everything above this package speaks in those two keys;
the store only moves strings.

Three implementations:

  - SQLStore: one board_kv table over database/sql, running on sqlite
    (modernc.org/sqlite) or postgres (lib/pq) without SQL changes.
  - S3Store: one object per key in an S3-compatible bucket, configured
    from a YAML file. Works with MinIO for local setups.
  - MemStore: a map, for tests.

Open the SQL store with the driver name matching the configured type:

	st, err := store.OpenSQL("sqlite", "file:jello.db")
*/
package store

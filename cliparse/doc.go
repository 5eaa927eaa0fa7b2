/*
Package cliparse parses server configuration from CLI flags with
environment variable fallbacks.

Settings:

  - PORT (-p): server port (default: 8080)
  - STORE_TYPE (-t): sqlite, postgres or s3 (default: sqlite)
  - DATABASE_URL (-d): connection string for the sqlite/postgres store
    (sqlite defaults to file:jello.db)
  - S3_CONFIG (-s3-config): path to the YAML file for the S3 store

The sqlite default means a bare `jello` starts a working board server
with a local database file and no other setup.
*/
package cliparse

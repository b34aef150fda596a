// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the client's local store and creates its schema.

# Drivers

Two database/sql drivers are registered:

  - "sqlite" (modernc.org/sqlite, pure Go): the default, a single file
  - "postgres" (github.com/lib/pq): for sharing state between machines

# Schema Creation

	conn, err := db.Open(db.DriverSQLite, "/home/me/.local/state/lingo/lingo.db")
	if err != nil {
		log.Fatal(err)
	}
	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

kv_store holds one row per persisted key:

	key         TEXT PRIMARY KEY
	value       TEXT NOT NULL      JSON document
	updated_at  TIMESTAMP NOT NULL

The store package reads and writes it.
*/
package db

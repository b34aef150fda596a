// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the client's state: translation history, user settings
and the selected language pair.

# Persistence

KV is a durable string key-value store. SQLKV implements it on the kv_store
table created by package db, building statements with squirrel:

	kv := store.NewSQLKV(conn, db.DriverSQLite)

Persisted wraps one key as a typed value. It reads the JSON document once when
created and writes it back on every Set. Read failures fall back to the
default; write failures are logged and returned, but the in-memory value
still changes.

# Stores

  - History: newest-first list capped at HistoryCapacity, memory only
  - Settings: provider, auto-copy, history visibility and theme, memory only
  - LanguagePair: source, target and pending text, persisted under
    translator_source, translator_target and translator_text

None of the stores lock; each is owned by a single goroutine.
*/
package store

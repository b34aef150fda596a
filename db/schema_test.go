// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lingo.db")

	conn, err := Open(DriverSQLite, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	// Running twice must not fail
	for i := 0; i < 2; i++ {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema (run %d) failed: %v", i+1, err)
		}
	}

	if _, err := conn.Exec(`INSERT INTO kv_store (key, value) VALUES ('k', '"v"')`); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	var value string
	if err := conn.QueryRow(`SELECT value FROM kv_store WHERE key = 'k'`).Scan(&value); err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if value != `"v"` {
		t.Errorf("Expected value %q, got %q", `"v"`, value)
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected an error for an unsupported driver")
	}
}

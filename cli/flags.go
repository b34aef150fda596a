// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/danielhkuo/quickly-translate/client"
	"github.com/danielhkuo/quickly-translate/db"
)

// Flags holds all command-line flag values
type Flags struct {
	// Global flags
	CfgFile     string
	BaseURL     string
	Timeout     time.Duration
	StoreDriver string
	StoreDSN    string
	LogLevel    string

	// Translate flags
	From     string
	To       string
	Provider string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		BaseURL:     client.DefaultBaseURL,
		Timeout:     client.DefaultTimeout,
		StoreDriver: db.DriverSQLite,
		StoreDSN:    defaultStoreDSN(),
		LogLevel:    "warn",
	}
}

func defaultStoreDSN() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lingo.db"
	}
	return filepath.Join(home, ".local", "state", "lingo", "lingo.db")
}

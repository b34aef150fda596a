// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package cli provides the lingo command tree and its configuration.
// Commands are built with cobra; configuration comes from flags, the
// LINGO_* environment and $HOME/.lingo.yaml through viper.
package cli

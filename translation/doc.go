// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package translation drives a translation from user input to history entry.
//
// A Translator validates the text, resolves the provider from the settings
// store, calls the relay through a Gateway, records the result in the
// history store and optionally copies it to the clipboard. Clipboard
// failures are logged and otherwise ignored.
package translation

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"github.com/danielhkuo/quickly-translate/apperr"
)

// Themes
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const DefaultProvider = "baidu"

// Settings holds user preferences for the session. Nothing is persisted.
type Settings struct {
	defaultProvider string
	autoCopy        bool
	showHistory     bool
	theme           string
}

func NewSettings() *Settings {
	return &Settings{
		defaultProvider: DefaultProvider,
		autoCopy:        false,
		showHistory:     true,
		theme:           ThemeLight,
	}
}

func (s *Settings) DefaultProvider() string { return s.defaultProvider }
func (s *Settings) AutoCopy() bool { return s.autoCopy }
func (s *Settings) ShowHistory() bool { return s.showHistory }
func (s *Settings) Theme() string { return s.theme }

// SetDefaultProvider accepts only providers from the Providers table
func (s *Settings) SetDefaultProvider(id string) error {
	if !IsKnownProvider(id) {
		return apperr.NewValidationError("unknown translation provider: "+id, "provider")
	}
	s.defaultProvider = id
	return nil
}

func (s *Settings) SetAutoCopy(on bool) {
	s.autoCopy = on
}

func (s *Settings) SetShowHistory(on bool) {
	s.showHistory = on
}

// SetTheme accepts ThemeLight or ThemeDark
func (s *Settings) SetTheme(theme string) error {
	if theme != ThemeLight && theme != ThemeDark {
		return apperr.NewValidationError("unknown theme: "+theme, "theme")
	}
	s.theme = theme
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme
func (s *Settings) ToggleTheme() string {
	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	return s.theme
}

// ServiceName is the display name of the default provider
func (s *Settings) ServiceName() string {
	if name, ok := Providers[s.defaultProvider]; ok {
		return name
	}
	return Providers[DefaultProvider]
}

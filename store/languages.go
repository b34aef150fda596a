// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "sort"

// Languages maps the supported language codes to display names
var Languages = map[string]string{
	"zh":  "Chinese",
	"en":  "English",
	"jp":  "Japanese",
	"kor": "Korean",
	"fra": "French",
	"spa": "Spanish",
	"th":  "Thai",
	"ara": "Arabic",
	"ru":  "Russian",
	"de":  "German",
	"it":  "Italian",
	"pt":  "Portuguese",
	"el":  "Greek",
	"nl":  "Dutch",
	"pl":  "Polish",
	"bul": "Bulgarian",
}

// Providers maps translation provider ids to display names
var Providers = map[string]string{
	"baidu": "Baidu Translate",
}

func IsSupportedLanguage(code string) bool {
	_, ok := Languages[code]
	return ok
}

func IsKnownProvider(id string) bool {
	_, ok := Providers[id]
	return ok
}

// LanguageCodes returns the supported codes in sorted order
func LanguageCodes() []string {
	codes := make([]string, 0, len(Languages))
	for code := range Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/store"
)

// Translate translates text, or the stored pending text when text is empty.
// Empty from and to fall back to the stored language pair.
func (a *App) Translate(ctx context.Context, text, from, to, provider string) error {
	if text == "" {
		text = a.pair.Text()
	} else {
		// A failed save is logged by the store and does not block translating
		_ = a.pair.SetText(ctx, text)
	}
	if from == "" {
		from = a.pair.Source()
	}
	if to == "" {
		to = a.pair.Target()
	}

	res, err := a.translator.Translate(ctx, text, to, from, provider)
	if err != nil {
		return err
	}

	a.printf("%s\n", res.TranslatedText)
	if a.settings.AutoCopy() {
		a.printf("(copied to clipboard)\n")
	}
	return nil
}

// dictEntry is the subset of a dictionary entry the CLI prints
type dictEntry struct {
	Word     string        `json:"word"`
	Phonetic string        `json:"phonetic"`
	Meanings []dictMeaning `json:"meanings"`
}

type dictMeaning struct {
	PartOfSpeech string           `json:"partOfSpeech"`
	Definitions  []dictDefinition `json:"definitions"`
}

type dictDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// Dict looks up word and prints its definitions
func (a *App) Dict(ctx context.Context, word string) error {
	data, err := a.client.LookupWord(ctx, word)
	if err != nil {
		return err
	}

	var entries []dictEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// Unknown shape: show it as relayed
		a.printf("%s\n", data)
		return nil
	}

	for _, e := range entries {
		if e.Phonetic != "" {
			a.printf("%s %s\n", e.Word, e.Phonetic)
		} else {
			a.printf("%s\n", e.Word)
		}
		for _, m := range e.Meanings {
			a.printf("  %s\n", m.PartOfSpeech)
			for i, d := range m.Definitions {
				a.printf("    %d. %s\n", i+1, d.Definition)
				if d.Example != "" {
					a.printf("       e.g. %s\n", d.Example)
				}
			}
		}
	}
	return nil
}

// Photo prints one "id url" line per photo in relevance order
func (a *App) Photo(ctx context.Context, query string) error {
	photos, err := a.client.SearchPhotos(ctx, query)
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		a.printf("no photos found for %q\n", query)
		return nil
	}
	for _, p := range photos {
		a.printf("%d\t%s\n", p.ID, p.URL)
	}
	return nil
}

func (a *App) Health(ctx context.Context) error {
	health, err := a.client.Health(ctx)
	if err != nil {
		return err
	}
	a.printf("%s: %s (%s)\n", a.cfg.BaseURL, health.Status, health.Message)
	return nil
}

// ShowLanguages prints the current pair
func (a *App) ShowLanguages() {
	a.printf("%s (%s) -> %s (%s)\n",
		a.pair.Source(), store.Languages[a.pair.Source()],
		a.pair.Target(), store.Languages[a.pair.Target()])
}

// SetLanguages changes the stored pair. Empty codes are left alone.
func (a *App) SetLanguages(ctx context.Context, from, to string) error {
	if from != "" {
		if err := a.pair.SetSource(ctx, from); err != nil {
			return err
		}
	}
	if to != "" {
		if err := a.pair.SetTarget(ctx, to); err != nil {
			return err
		}
	}
	a.ShowLanguages()
	return nil
}

func (a *App) SwapLanguages(ctx context.Context) error {
	if err := a.pair.Swap(ctx); err != nil {
		return err
	}
	a.ShowLanguages()
	return nil
}

// ListLanguages prints the supported language table
func (a *App) ListLanguages() {
	for _, code := range store.LanguageCodes() {
		a.printf("%-4s %s\n", code, store.Languages[code])
	}
}

// PrintHistory lists this session's translations, newest first
func (a *App) PrintHistory() {
	if !a.settings.ShowHistory() {
		a.printf("history is hidden (settings.show_history)\n")
		return
	}
	records := a.history.Records()
	if len(records) == 0 {
		a.printf("no translations yet\n")
		return
	}
	for _, r := range records {
		a.printf("%s  [%s -> %s] %s => %s  (%s)\n",
			r.ID, r.SourceLang, r.TargetLang,
			oneLine(r.OriginalText), oneLine(r.TranslatedText),
			humanize.Time(r.CreatedAt))
	}
}

func (a *App) RemoveHistory(id string) error {
	if !a.history.Remove(id) {
		return apperr.NewValidationError("no history record "+id, "id")
	}
	return nil
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

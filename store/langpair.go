// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/apperr"
)

// Keys used in the KV store
const (
	KeySource = "translator_source"
	KeyTarget = "translator_target"
	KeyText   = "translator_text"
)

// Language pair defaults
const (
	DefaultSource = "zh"
	DefaultTarget = "en"
)

// LanguagePair holds the selected source and target languages and the
// pending input text. Every change is written to the KV store.
type LanguagePair struct {
	source *Persisted[string]
	target *Persisted[string]
	text   *Persisted[string]

	// contentChanged flips on every swap so views can refresh
	contentChanged bool
}

// NewLanguagePair restores the pair from kv. Stored codes that are no
// longer supported fall back to the defaults.
func NewLanguagePair(ctx context.Context, kv KV, logger *zap.Logger) *LanguagePair {
	lp := &LanguagePair{
		source: NewPersisted(ctx, kv, KeySource, DefaultSource, logger),
		target: NewPersisted(ctx, kv, KeyTarget, DefaultTarget, logger),
		text:   NewPersisted(ctx, kv, KeyText, "", logger),
	}

	if !IsSupportedLanguage(lp.source.Get()) {
		logger.Warn("stored source language unsupported, using default", zap.String("code", lp.source.Get()))
		lp.source.value = DefaultSource
	}
	if !IsSupportedLanguage(lp.target.Get()) {
		logger.Warn("stored target language unsupported, using default", zap.String("code", lp.target.Get()))
		lp.target.value = DefaultTarget
	}
	return lp
}

func (lp *LanguagePair) Source() string { return lp.source.Get() }
func (lp *LanguagePair) Target() string { return lp.target.Get() }
func (lp *LanguagePair) Text() string { return lp.text.Get() }
func (lp *LanguagePair) ContentChanged() bool { return lp.contentChanged }

func (lp *LanguagePair) SetSource(ctx context.Context, code string) error {
	if !IsSupportedLanguage(code) {
		return apperr.NewValidationError("unsupported language: "+code, "source")
	}
	return lp.source.Set(ctx, code)
}

func (lp *LanguagePair) SetTarget(ctx context.Context, code string) error {
	if !IsSupportedLanguage(code) {
		return apperr.NewValidationError("unsupported language: "+code, "target")
	}
	return lp.target.Set(ctx, code)
}

func (lp *LanguagePair) SetText(ctx context.Context, text string) error {
	return lp.text.Set(ctx, text)
}

// Swap exchanges source and target and persists both.
// The pending text is left alone.
func (lp *LanguagePair) Swap(ctx context.Context) error {
	source, target := lp.source.Get(), lp.target.Get()

	errSource := lp.source.Set(ctx, target)
	errTarget := lp.target.Set(ctx, source)
	lp.contentChanged = !lp.contentChanged

	if errSource != nil {
		return errSource
	}
	return errTarget
}

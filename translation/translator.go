// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package translation

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/models"
	"github.com/danielhkuo/quickly-translate/store"
)

// User-facing messages
const (
	MsgEmptyText     = "please enter text to translate"
	MsgGenericFailed = "translation failed, please retry"
)

// Gateway performs the relay call
type Gateway interface {
	Translate(ctx context.Context, req models.TranslationRequest) (models.TranslationResult, error)
}

// State is what a view renders after each call
type State struct {
	Loading bool
	Error   string
	Result  *models.TranslationResult
}

// Translator runs one translation at a time and records the outcome in
// the history store.
type Translator struct {
	gateway   Gateway
	history   *store.History
	settings  *store.Settings
	clipboard Clipboard
	logger    *zap.Logger

	mu    sync.Mutex
	state State
}

type Option func(*Translator)

func WithClipboard(c Clipboard) Option {
	return func(t *Translator) { t.clipboard = c }
}

func WithLogger(logger *zap.Logger) Option {
	return func(t *Translator) { t.logger = logger }
}

func New(gateway Gateway, history *store.History, settings *store.Settings, opts ...Option) *Translator {
	t := &Translator{
		gateway:   gateway,
		history:   history,
		settings:  settings,
		clipboard: SystemClipboard{},
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate translates text into targetLang. sourceLang defaults to auto
// detection and provider to the settings' default. On success the result
// is added to the history and, with auto-copy on, copied to the clipboard.
// The returned error is also reflected in State().Error.
func (t *Translator) Translate(ctx context.Context, text, targetLang, sourceLang, provider string) (models.TranslationResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		t.setState(State{Error: MsgEmptyText})
		return models.TranslationResult{}, apperr.NewValidationError(MsgEmptyText, "text")
	}

	t.setState(State{Loading: true})
	defer t.finish()

	if sourceLang == "" {
		sourceLang = models.DefaultSourceLang
	}
	if provider == "" {
		provider = t.settings.DefaultProvider()
	}

	result, err := t.gateway.Translate(ctx, models.TranslationRequest{
		Text:       trimmed,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Provider:   provider,
	})
	if err != nil {
		msg := errorMessage(err)
		t.logger.Warn("translation failed", zap.Error(err), zap.String("kind", apperr.KindOf(err).String()))
		t.mu.Lock()
		t.state.Error = msg
		t.mu.Unlock()
		return models.TranslationResult{}, err
	}

	t.mu.Lock()
	t.state.Result = &result
	t.mu.Unlock()

	t.history.Add(models.HistoryRecord{
		OriginalText:   text,
		TranslatedText: result.TranslatedText,
		SourceLang:     result.SourceLang,
		TargetLang:     result.TargetLang,
		Provider:       result.Provider,
	})

	if t.settings.AutoCopy() {
		if err := t.clipboard.WriteAll(result.TranslatedText); err != nil {
			t.logger.Warn("auto-copy failed", zap.Error(err))
		}
	}

	return result, nil
}

// State returns a snapshot of the latest call
func (t *Translator) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// ClearResult drops the last result and error
func (t *Translator) ClearResult() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Result = nil
	t.state.Error = ""
}

func (t *Translator) setState(s State) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = s
}

func (t *Translator) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.Loading = false
}

func errorMessage(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return MsgGenericFailed
}

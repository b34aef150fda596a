// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/models"
	"github.com/danielhkuo/quickly-translate/store"
)

type fakeGateway struct {
	result models.TranslationResult
	err    error

	calls int
	last  models.TranslationRequest

	// seen records Loading as observed during the call
	seen bool
	tr   *Translator
}

func (f *fakeGateway) Translate(ctx context.Context, req models.TranslationRequest) (models.TranslationResult, error) {
	f.calls++
	f.last = req
	if f.tr != nil {
		f.seen = f.tr.State().Loading
	}
	if f.err != nil {
		return models.TranslationResult{}, f.err
	}
	res := f.result
	res.Provider = req.Provider
	return res, nil
}

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return c.err
}

func newTranslator(gw *fakeGateway, clip *fakeClipboard) (*Translator, *store.History, *store.Settings) {
	history := store.NewHistory()
	settings := store.NewSettings()
	tr := New(gw, history, settings, WithClipboard(clip))
	gw.tr = tr
	return tr, history, settings
}

func okGateway() *fakeGateway {
	return &fakeGateway{result: models.TranslationResult{
		TranslatedText: "Hello",
		SourceLang:     "zh",
		TargetLang:     "en",
	}}
}

func TestTranslateRecordsHistory(t *testing.T) {
	inputs := []string{"你好", "  padded  ", "line one\nline two"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			gw := okGateway()
			tr, history, _ := newTranslator(gw, &fakeClipboard{})
			history.Add(models.HistoryRecord{OriginalText: "earlier"})

			if _, err := tr.Translate(context.Background(), input, "en", "", ""); err != nil {
				t.Fatalf("Translate failed: %v", err)
			}

			records := history.Records()
			if len(records) != 2 {
				t.Fatalf("Expected 2 records, got %d", len(records))
			}
			if records[0].OriginalText != input {
				t.Errorf("Expected original text %q at position 0, got %q", input, records[0].OriginalText)
			}
			if records[0].TranslatedText != "Hello" || records[0].Provider != "baidu" {
				t.Errorf("Unexpected record: %+v", records[0])
			}
		})
	}
}

func TestTranslateEmptyText(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		gw := okGateway()
		tr, history, _ := newTranslator(gw, &fakeClipboard{})

		_, err := tr.Translate(context.Background(), input, "en", "", "")
		if !apperr.Is(err, apperr.KindValidation) {
			t.Errorf("%q: expected validation error, got %v", input, err)
		}
		if gw.calls != 0 {
			t.Errorf("%q: gateway should not be called", input)
		}
		if got := tr.State().Error; got != MsgEmptyText {
			t.Errorf("%q: expected error state %q, got %q", input, MsgEmptyText, got)
		}
		if history.Len() != 0 {
			t.Errorf("%q: history should stay empty", input)
		}
	}
}

func TestTranslateRequestShape(t *testing.T) {
	gw := okGateway()
	tr, _, settings := newTranslator(gw, &fakeClipboard{})

	if _, err := tr.Translate(context.Background(), "  hi  ", "zh", "", ""); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if gw.last.Text != "hi" {
		t.Errorf("Expected trimmed text, got %q", gw.last.Text)
	}
	if gw.last.SourceLang != "auto" {
		t.Errorf("Expected auto source, got %q", gw.last.SourceLang)
	}
	if gw.last.Provider != settings.DefaultProvider() {
		t.Errorf("Expected default provider, got %q", gw.last.Provider)
	}

	if _, err := tr.Translate(context.Background(), "hi", "zh", "en", "other"); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if gw.last.SourceLang != "en" || gw.last.Provider != "other" {
		t.Errorf("Expected explicit source and provider override, got %+v", gw.last)
	}
}

func TestTranslateLoadingState(t *testing.T) {
	gw := okGateway()
	tr, _, _ := newTranslator(gw, &fakeClipboard{})

	res, err := tr.Translate(context.Background(), "hi", "en", "", "")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if !gw.seen {
		t.Error("Expected Loading during the gateway call")
	}

	state := tr.State()
	if state.Loading {
		t.Error("Expected Loading cleared after success")
	}
	if state.Result == nil || state.Result.TranslatedText != res.TranslatedText {
		t.Errorf("Expected result in state, got %+v", state.Result)
	}
	if state.Error != "" {
		t.Errorf("Expected no error, got %q", state.Error)
	}
}

func TestTranslateFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "timeout",
			err:  apperr.NewTimeoutError("translation request timed out, please retry later"),
			want: "translation request timed out, please retry later",
		},
		{
			name: "unreachable",
			err:  apperr.NewUnreachableError("cannot reach translation service, check that the relay is running", nil),
			want: "cannot reach translation service, check that the relay is running",
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "boom",
		},
		{
			name: "empty message",
			err:  errors.New(""),
			want: MsgGenericFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := &fakeGateway{err: tt.err}
			tr, history, _ := newTranslator(gw, &fakeClipboard{})

			if _, err := tr.Translate(context.Background(), "hi", "en", "", ""); err == nil {
				t.Fatal("Expected an error")
			}

			state := tr.State()
			if state.Error != tt.want {
				t.Errorf("Expected error %q, got %q", tt.want, state.Error)
			}
			if state.Loading {
				t.Error("Expected Loading cleared after failure")
			}
			if state.Result != nil {
				t.Error("Expected no result after failure")
			}
			if history.Len() != 0 {
				t.Error("Failures must not be recorded")
			}
		})
	}
}

func TestTranslateClearsPreviousState(t *testing.T) {
	gw := &fakeGateway{err: errors.New("down")}
	tr, _, _ := newTranslator(gw, &fakeClipboard{})

	tr.Translate(context.Background(), "hi", "en", "", "")
	if tr.State().Error == "" {
		t.Fatal("Expected error state")
	}

	gw.err = nil
	gw.result = models.TranslationResult{TranslatedText: "ok"}
	if _, err := tr.Translate(context.Background(), "hi", "en", "", ""); err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if tr.State().Error != "" {
		t.Errorf("Expected error cleared, got %q", tr.State().Error)
	}
}

func TestAutoCopy(t *testing.T) {
	t.Run("off", func(t *testing.T) {
		clip := &fakeClipboard{}
		tr, _, _ := newTranslator(okGateway(), clip)

		tr.Translate(context.Background(), "hi", "en", "", "")
		if clip.text != "" {
			t.Errorf("Clipboard should be untouched, got %q", clip.text)
		}
	})

	t.Run("on", func(t *testing.T) {
		clip := &fakeClipboard{}
		tr, _, settings := newTranslator(okGateway(), clip)
		settings.SetAutoCopy(true)

		tr.Translate(context.Background(), "hi", "en", "", "")
		if clip.text != "Hello" {
			t.Errorf("Expected 'Hello' copied, got %q", clip.text)
		}
	})

	t.Run("failure ignored", func(t *testing.T) {
		clip := &fakeClipboard{err: errors.New("no display")}
		tr, history, settings := newTranslator(okGateway(), clip)
		settings.SetAutoCopy(true)

		if _, err := tr.Translate(context.Background(), "hi", "en", "", ""); err != nil {
			t.Fatalf("Clipboard failure must not fail the translation: %v", err)
		}
		if tr.State().Error != "" || history.Len() != 1 {
			t.Error("Expected a normal successful outcome")
		}
	})
}

func TestClearResult(t *testing.T) {
	tr, _, _ := newTranslator(okGateway(), &fakeClipboard{})
	tr.Translate(context.Background(), "hi", "en", "", "")

	tr.ClearResult()
	state := tr.State()
	if state.Result != nil || state.Error != "" {
		t.Errorf("Expected cleared state, got %+v", state)
	}
}

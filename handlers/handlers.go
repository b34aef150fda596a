// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/middleware"
	"github.com/danielhkuo/quickly-translate/models"
)

// TranslationProvider forwards a signed translation request
type TranslationProvider interface {
	Configured() bool
	Translate(ctx context.Context, q, from, to string) (json.RawMessage, error)
}

// DictionaryProvider looks up English words
type DictionaryProvider interface {
	Lookup(ctx context.Context, word string) (json.RawMessage, error)
}

// PhotoProvider searches stock photos
type PhotoProvider interface {
	Configured() bool
	Search(ctx context.Context, query string) ([]models.Photo, error)
}

// decodeBody parses the JSON body. An empty body decodes to the zero value.
func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := middleware.ParseJSONBody(r, v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return apperr.NewValidationError("invalid JSON body", "body").WithCause(err)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/middleware"
	"github.com/danielhkuo/quickly-translate/models"
	"github.com/danielhkuo/quickly-translate/upstream"
)

type DictionaryHandler struct {
	provider DictionaryProvider
	logger   *zap.Logger
}

func NewDictionaryHandler(provider DictionaryProvider, logger *zap.Logger) *DictionaryHandler {
	return &DictionaryHandler{provider: provider, logger: logger}
}

// Lookup handles POST /dictionary
func (h *DictionaryHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req models.DictionaryRequest
	if err := decodeBody(r, &req); err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	if strings.TrimSpace(req.Word) == "" {
		middleware.ErrorResponse(w, apperr.NewValidationError("missing word to look up", "word"))
		return
	}

	h.logger.Info("dictionary lookup", zap.String("word", req.Word))

	data, err := h.provider.Lookup(r.Context(), req.Word)
	if err != nil {
		middleware.ErrorResponse(w, h.lookupError(req.Word, err))
		return
	}

	h.logger.Info("dictionary lookup succeeded", zap.String("word", req.Word))

	err = middleware.JSONResponse(w, http.StatusOK, models.DataResponse{
		Success: true,
		Data:    data,
	})
	if err != nil {
		h.logger.Error("failed to write dictionary response", zap.Error(err))
	}
}

func (h *DictionaryHandler) lookupError(word string, err error) error {
	if errors.Is(err, upstream.ErrTimeout) {
		h.logger.Warn("dictionary lookup timed out", zap.String("word", word))
		return apperr.NewTimeoutError("dictionary lookup timed out, please retry later").WithCause(err)
	}

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusNotFound {
			return apperr.NewUpstreamError("definition not found", http.StatusNotFound).
				WithContext("word", word)
		}
		h.logger.Error("dictionary provider error", zap.Int("status", statusErr.StatusCode))
		return apperr.NewUpstreamError(fmt.Sprintf("dictionary API error: %d", statusErr.StatusCode), statusErr.StatusCode)
	}

	h.logger.Error("dictionary lookup failed", zap.Error(err), zap.String("word", word))
	return apperr.NewInternalError("dictionary service unavailable", err).
		WithContext("message", err.Error())
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/middleware"
	"github.com/danielhkuo/quickly-translate/models"
	"github.com/danielhkuo/quickly-translate/upstream"
)

type TranslateHandler struct {
	provider TranslationProvider
	logger   *zap.Logger
}

func NewTranslateHandler(provider TranslationProvider, logger *zap.Logger) *TranslateHandler {
	return &TranslateHandler{provider: provider, logger: logger}
}

// Translate handles POST /translate
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req models.TranslateRequest
	if err := decodeBody(r, &req); err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	// Validate input
	if !req.HasText() {
		middleware.ErrorResponse(w, apperr.NewValidationError("missing text to translate", "q"))
		return
	}
	if !h.provider.Configured() {
		h.logger.Error("translation credentials are not configured")
		middleware.ErrorResponse(w, apperr.NewConfigurationError("translation service misconfigured"))
		return
	}

	req = req.Normalize()

	body, err := h.provider.Translate(r.Context(), req.Q, req.From, req.To)
	if err != nil {
		h.logger.Error("translation failed",
			zap.Error(err),
			zap.String("from", req.From),
			zap.String("to", req.To),
			zap.String("request_id", middleware.RequestIDFrom(r.Context())),
		)

		var statusErr *upstream.StatusError
		if errors.As(err, &statusErr) {
			middleware.ErrorResponse(w, apperr.NewUpstreamError("translation failed", http.StatusBadRequest).
				WithContext("details", statusErr.Details()).
				WithCause(err))
			return
		}
		middleware.ErrorResponse(w, apperr.NewInternalError("internal translation error", err).
			WithContext("message", err.Error()))
		return
	}

	middleware.RawJSONResponse(w, http.StatusOK, body)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/middleware"
	"github.com/danielhkuo/quickly-translate/models"
)

type ImageHandler struct {
	provider PhotoProvider
	logger   *zap.Logger
}

func NewImageHandler(provider PhotoProvider, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{provider: provider, logger: logger}
}

// Search handles POST /image-search
func (h *ImageHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.ImageSearchRequest
	if err := decodeBody(r, &req); err != nil {
		middleware.ErrorResponse(w, err)
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		middleware.ErrorResponse(w, apperr.NewValidationError("missing search query", "query"))
		return
	}
	if !h.provider.Configured() {
		h.logger.Error("photo search key is not configured")
		middleware.ErrorResponse(w, apperr.NewConfigurationError("image service misconfigured"))
		return
	}

	photos, err := h.provider.Search(r.Context(), req.Query)
	if err != nil {
		h.logger.Error("photo search failed", zap.Error(err), zap.String("query", req.Query))
		middleware.ErrorResponse(w, apperr.NewInternalError("image service internal error", err).
			WithContext("message", err.Error()))
		return
	}

	err = middleware.JSONResponse(w, http.StatusOK, models.DataResponse{
		Success: true,
		Data:    photos,
	})
	if err != nil {
		h.logger.Error("failed to write photo response", zap.Error(err))
	}
}

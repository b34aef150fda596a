// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-translate/middleware"
	"github.com/danielhkuo/quickly-translate/models"
)

// Health handles GET /health. It never touches a provider.
func Health(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Message: "translation relay running",
	})
}

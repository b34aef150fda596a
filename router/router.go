// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/cliparse"
	"github.com/danielhkuo/quickly-translate/handlers"
	"github.com/danielhkuo/quickly-translate/middleware"
	"github.com/danielhkuo/quickly-translate/upstream"
)

func NewRouter(cfg cliparse.Config, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	translateHandler := handlers.NewTranslateHandler(
		upstream.NewBaiduClient(cfg.BaiduAppID, cfg.BaiduSecretKey, cfg.BaiduURL, logger),
		logger,
	)
	dictionaryHandler := handlers.NewDictionaryHandler(
		upstream.NewDictionaryClient(cfg.DictionaryURL, cfg.DictionaryTimeout, logger),
		logger,
	)
	imageHandler := handlers.NewImageHandler(
		upstream.NewPixabayClient(cfg.PixabayKey, cfg.PixabayURL, logger),
		logger,
	)

	// Health check
	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("GET /api/health", handlers.Health)

	// Provider relays
	mux.HandleFunc("POST /translate", translateHandler.Translate)
	mux.HandleFunc("POST /api/translate", translateHandler.Translate)

	mux.HandleFunc("POST /dictionary", dictionaryHandler.Lookup)
	mux.HandleFunc("POST /api/dictionary", dictionaryHandler.Lookup)

	mux.HandleFunc("POST /image-search", imageHandler.Search)
	mux.HandleFunc("POST /api/image-search", imageHandler.Search)
	mux.HandleFunc("POST /api/pixabay", imageHandler.Search)

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-translate relay v1"))
	})

	return mux
}

// NewHandler wraps the router with the server-wide middleware. Every
// request is logged, preflights and panics included.
func NewHandler(cfg cliparse.Config, logger *zap.Logger) http.Handler {
	mux := NewRouter(cfg, logger)
	logged := middleware.WithLogging(logger, middleware.CORS(middleware.Recover(logger, mux)).ServeHTTP)
	return middleware.RequestID(logged)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the relay's HTTP routes using Go 1.22+ method patterns.

# Routes

	GET  /health         (alias /api/health)
	POST /translate      (alias /api/translate)
	POST /dictionary     (alias /api/dictionary)
	POST /image-search   (aliases /api/image-search, /api/pixabay)
	GET  /               banner

The /api paths keep older clients working.

# Usage

	handler := router.NewHandler(cfg, logger)
	server := http.Server{Addr: ":3000", Handler: handler}

NewRouter returns the bare mux; NewHandler adds request ids, request logging,
CORS and panic recovery around it.
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the quickly-translate relay.

The relay sits between the lingo client and three public providers: Baidu
Translate, the Free Dictionary API and Pixabay. It keeps the provider
credentials server-side and signs translation requests.

# Starting the Server

	BAIDU_APP_ID=... BAIDU_SECRET_KEY=... PIXABAY_KEY=... go run .

Or with flags:

	go run . -p 3000 -baidu-app-id ... -baidu-secret ... -pixabay-key ...

Outside production a .env file in the working directory is loaded first.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - APP_ENV (-env): "production" skips .env loading
  - LOG_LEVEL (-log-level), LOG_FILE (-log-file)
  - BAIDU_APP_ID, BAIDU_SECRET_KEY: translation credentials
  - PIXABAY_KEY: photo search key
  - DICTIONARY_TIMEOUT (-dict-timeout): dictionary deadline (default: 8s)

Missing credentials do not stop the server; the affected endpoint answers
500 until they are set.

# Architecture

  - handlers: HTTP request handlers (translate, dictionary, image search)
  - upstream: resty clients for the providers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request ids, logging, JSON helpers
  - models: Request/response types
  - auth: Request signing
  - apperr: Tagged errors and their HTTP mapping
  - logging: zap logger construction
  - cliparse: Configuration parsing

The client side lives under cmd/lingo and the client, translation and store
packages.
*/
package main

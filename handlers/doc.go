// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers of the relay.

# Handler Types

Each provider-bound handler is a struct holding its provider and a logger:

  - TranslateHandler: POST /translate
  - DictionaryHandler: POST /dictionary
  - ImageHandler: POST /image-search

Health is a plain function; it never touches a provider.

Handlers depend on small interfaces (TranslationProvider, DictionaryProvider,
PhotoProvider) that the upstream clients satisfy:

	h := handlers.NewTranslateHandler(upstream.NewBaiduClient(id, secret, url, logger), logger)

# Request Flow

Every handler follows the same order:

 1. decode the JSON body (empty body = empty request, malformed body = 400)
 2. validate required fields (400)
 3. check provider credentials (500)
 4. make exactly one upstream call
 5. map the outcome to a response or an apperr.Error

# Error Mapping

	translate   upstream non-2xx    → 400 {error: "translation failed", details}
	            anything else       → 500 {error: "internal translation error", message}
	dictionary  deadline exceeded   → 408
	            upstream 404        → 404 {error: "definition not found", word}
	            other non-2xx       → same status {error: "dictionary API error: <status>"}
	            anything else       → 500 {error: "dictionary service unavailable", message}
	image       any failure         → 500 {error: "image service internal error", message}

No handler writes a response that lacks an "error" field on failure.
*/
package handlers

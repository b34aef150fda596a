// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package apperr defines the error taxonomy shared by the relay and the client.

# Kinds

  - KindValidation: missing or empty required field (400)
  - KindConfiguration: relay credentials not set (500)
  - KindUpstream: a provider or the relay answered with an error status
  - KindTimeout: a fixed deadline expired (408)
  - KindUnreachable: the relay could not be reached at all (503)
  - KindInternal: anything else (500)

# Usage

Handlers build errors with the constructors and hand them to
middleware.ErrorResponse, which writes Body() with StatusCode:

	err := apperr.NewUpstreamError("definition not found", http.StatusNotFound).
		WithContext("word", word)

Callers branch on the kind, never on the message:

	if apperr.Is(err, apperr.KindTimeout) {
		// ...
	}
*/
package apperr

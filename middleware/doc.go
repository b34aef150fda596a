// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers for the relay.

# Server-wide Middleware

	inner := middleware.CORS(middleware.Recover(logger, mux))
	handler := middleware.RequestID(middleware.WithLogging(logger, inner.ServeHTTP))

  - RequestID: X-Request-ID from the caller or a fresh UUID, stored in the context
  - WithLogging: method, path, client IP and request id on entry, status and duration on exit
  - CORS: any origin, preflight answered with 204
  - Recover: a panicking handler still produces a JSON internal error, unless
    it had already started its response

# Response Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.RawJSONResponse(w, http.StatusOK, providerBody)
	middleware.ErrorResponse(w, apperr.NewTimeoutError("..."))

ErrorResponse writes {"error": ..., ...context} with the error's status.
Anything that is not an *apperr.Error becomes a 500 with a generic message.
Both return the encode error so callers can log it with their own logger.

# Request Parsing

	var req models.DictionaryRequest
	err := middleware.ParseJSONBody(r, &req)

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package upstream contains the HTTP clients for the three providers the relay
forwards to.

  - BaiduClient: form-encoded POST, signed with auth.Sign, body returned verbatim
  - DictionaryClient: GET with the word path-encoded, bounded by a timeout
  - PixabayClient: GET with key, q, image_type=photo, per_page=10; hits mapped to models.Photo

Each call makes exactly one request. Nothing is retried.

# Errors

A non-2xx answer is a *StatusError carrying the status and body. A call that
runs out of time wraps ErrTimeout. Any other transport failure is returned
wrapped with the provider name.
*/
package upstream

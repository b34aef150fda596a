// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is the lingo side of the relay API.

	c := client.New("http://localhost:3000", client.WithLogger(logger))
	res, err := c.Translate(ctx, models.TranslationRequest{Text: "你好", SourceLang: "auto", TargetLang: "en"})

# Errors

Every failure is an *apperr.Error classified where the call resolves:

  - KindUpstream: the relay answered outside 2xx, or the translation
    provider returned an error code. The message is the body's "error" field,
    then "message", then "<service> service error: <status>".
  - KindTimeout: the request deadline expired (10s, 5s for Health).
  - KindUnreachable: no response at all, typically because the relay is down.
  - KindInternal: anything else, such as an unreadable body.

Callers pick their wording with apperr.KindOf.
*/
package client

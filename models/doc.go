// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the request, response and domain types shared by the
relay and the client.

# Relay Requests

	TranslateRequest    POST /translate     {q, from, to} or {text, sourceLang, targetLang}
	DictionaryRequest   POST /dictionary    {word}
	ImageSearchRequest  POST /image-search  {query}

TranslateRequest.Normalize resolves the aliases and fills the defaults
(from "auto", to "en").

# Relay Responses

  - HealthResponse: {status, message}
  - the translation provider body, verbatim (BaiduResult)
  - DataResponse: {success: true, data: ...} for dictionary and image search
  - ErrorResponse: {error, message?, word?, details?} for every failure

# Domain Types

TranslationRequest and TranslationResult travel between the orchestration
layer and the gateway. HistoryRecord folds a result together with the
original text:

	rec := models.HistoryRecord{
		OriginalText:   text,
		TranslatedText: result.TranslatedText,
		SourceLang:     result.SourceLang,
		TargetLang:     result.TargetLang,
		Provider:       result.Provider,
	}
*/
package models

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Translation defaults
const (
	DefaultSourceLang = "auto"
	DefaultTargetLang = "en"

	ProviderBaidu = "baidu"

	// BaiduSuccessCode is the error_code some provider answers carry on success
	BaiduSuccessCode = "52000"
)

// Relay request types

// TranslateRequest accepts the short provider field names (q, from, to) and
// the descriptive ones (text, sourceLang, targetLang).
type TranslateRequest struct {
	Q          string `json:"q,omitempty"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Text       string `json:"text,omitempty"`
	SourceLang string `json:"sourceLang,omitempty"`
	TargetLang string `json:"targetLang,omitempty"`
}

// Normalize resolves aliases and applies defaults
func (r TranslateRequest) Normalize() TranslateRequest {
	out := TranslateRequest{
		Q:    firstNonEmpty(r.Q, r.Text),
		From: firstNonEmpty(r.From, r.SourceLang, DefaultSourceLang),
		To:   firstNonEmpty(r.To, r.TargetLang, DefaultTargetLang),
	}
	return out
}

// HasText reports whether the request carries non-blank text
func (r TranslateRequest) HasText() bool {
	return strings.TrimSpace(firstNonEmpty(r.Q, r.Text)) != ""
}

type DictionaryRequest struct {
	Word string `json:"word"`
}

type ImageSearchRequest struct {
	Query string `json:"query"`
}

// Relay response types

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// DataResponse wraps successful dictionary and image-search payloads
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Photo is one image-search hit, in upstream relevance order
type Photo struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// PhotoResponse is the client-side view of an image-search response
type PhotoResponse struct {
	Success bool    `json:"success"`
	Data    []Photo `json:"data"`
}

// DictionaryResponse is the client-side view of a dictionary response.
// Data is the provider payload, passed through untouched.
type DictionaryResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// ErrorResponse is the shape every relay failure shares
type ErrorResponse struct {
	Error   string          `json:"error"`
	Message string          `json:"message,omitempty"`
	Word    string          `json:"word,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

// Provider payload

// BaiduResult is the translation provider's response body
type BaiduResult struct {
	From        string         `json:"from"`
	To          string         `json:"to"`
	TransResult []BaiduSegment `json:"trans_result"`
	ErrorCode   string         `json:"error_code,omitempty"`
	ErrorMsg    string         `json:"error_msg,omitempty"`
}

type BaiduSegment struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// Domain types

// TranslationRequest is one user translation action
type TranslationRequest struct {
	Text       string
	SourceLang string
	TargetLang string
	Provider   string
}

// TranslationResult is a normalized translation response.
// SourceLang echoes the request unless the provider detected it.
type TranslationResult struct {
	TranslatedText string          `json:"translated_text"`
	SourceLang     string          `json:"source_lang"`
	TargetLang     string          `json:"target_lang"`
	Provider       string          `json:"provider"`
	Raw            json.RawMessage `json:"raw,omitempty"`
}

// HistoryRecord is one completed translation
type HistoryRecord struct {
	ID             string    `json:"id"`
	OriginalText   string    `json:"original_text"`
	TranslatedText string    `json:"translated_text"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	Provider       string    `json:"provider"`
	CreatedAt      time.Time `json:"created_at"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

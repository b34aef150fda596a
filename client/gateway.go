// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/models"
)

// Relay paths
const (
	pathTranslate  = "/api/translate"
	pathDictionary = "/api/dictionary"
	pathImages     = "/api/pixabay"
	pathHealth     = "/api/health"
)

// Translate asks the relay to translate req.Text. A provider answer carrying
// an error code is reported as an upstream error.
func (c *Client) Translate(ctx context.Context, req models.TranslationRequest) (models.TranslationResult, error) {
	body := map[string]string{
		"q":    req.Text,
		"from": req.SourceLang,
		"to":   req.TargetLang,
	}

	var raw json.RawMessage
	if err := c.post(ctx, serviceTranslation, pathTranslate, body, &raw); err != nil {
		return models.TranslationResult{}, err
	}

	var payload models.BaiduResult
	if err := json.Unmarshal(raw, &payload); err != nil {
		return models.TranslationResult{}, apperr.NewInternalError("translation request failed: unreadable response", err)
	}
	if payload.ErrorCode != "" && payload.ErrorCode != models.BaiduSuccessCode {
		msg := payload.ErrorMsg
		if msg == "" {
			msg = fmt.Sprintf("translation service error: %s", payload.ErrorCode)
		}
		c.logger.Warn("translation provider rejected the request",
			zap.String("code", payload.ErrorCode),
			zap.String("message", payload.ErrorMsg),
		)
		return models.TranslationResult{}, apperr.NewUpstreamError(msg, http.StatusBadGateway).
			WithContext("code", payload.ErrorCode)
	}

	lines := make([]string, 0, len(payload.TransResult))
	for _, seg := range payload.TransResult {
		lines = append(lines, seg.Dst)
	}

	return models.TranslationResult{
		TranslatedText: strings.Join(lines, "\n"),
		SourceLang:     firstNonEmpty(payload.From, req.SourceLang),
		TargetLang:     firstNonEmpty(payload.To, req.TargetLang),
		Provider:       req.Provider,
		Raw:            raw,
	}, nil
}

// LookupWord returns the dictionary entries for word as relayed
func (c *Client) LookupWord(ctx context.Context, word string) (json.RawMessage, error) {
	var resp models.DictionaryResponse
	if err := c.post(ctx, serviceDictionary, pathDictionary, models.DictionaryRequest{Word: word}, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// SearchPhotos returns up to ten photos for query in relevance order
func (c *Client) SearchPhotos(ctx context.Context, query string) ([]models.Photo, error) {
	var resp models.PhotoResponse
	if err := c.post(ctx, serviceImage, pathImages, models.ImageSearchRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Health checks that the relay is up. It uses a shorter deadline than other calls.
func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, HealthTimeout)
	defer cancel()

	resp, callErr := c.http.R().
		SetContext(ctx).
		Get(pathHealth)

	var health models.HealthResponse
	if err := c.decode(ctx, serviceTranslation, resp, callErr, &health); err != nil {
		return models.HealthResponse{}, err
	}
	return health, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

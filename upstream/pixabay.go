// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/models"
)

const (
	pixabayProvider = "pixabay"
	pixabayPerPage  = 10
)

// PixabayClient searches Pixabay for photos
type PixabayClient struct {
	apiKey   string
	endpoint string
	http     *resty.Client
	logger   *zap.Logger
}

// pixabayResponse is the part of the API response the relay reads
type pixabayResponse struct {
	Total     int            `json:"total"`
	TotalHits int            `json:"totalHits"`
	Hits      []pixabayImage `json:"hits"`
}

type pixabayImage struct {
	ID         int    `json:"id"`
	PreviewURL string `json:"previewURL"`
}

func NewPixabayClient(apiKey, endpoint string, logger *zap.Logger) *PixabayClient {
	return &PixabayClient{
		apiKey:   apiKey,
		endpoint: endpoint,
		http:     newHTTPClient(logger),
		logger:   logger,
	}
}

// Configured reports whether the API key is set
func (p *PixabayClient) Configured() bool {
	return p.apiKey != ""
}

// Search returns up to ten photos for query, in upstream relevance order
func (p *PixabayClient) Search(ctx context.Context, query string) ([]models.Photo, error) {
	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":        p.apiKey,
			"q":          query,
			"image_type": "photo",
			"per_page":   strconv.Itoa(pixabayPerPage),
		}).
		Get(p.endpoint)
	if err != nil {
		return nil, classify(ctx, pixabayProvider, err)
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{
			Provider:   pixabayProvider,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
	}

	var pixResp pixabayResponse
	if err := json.Unmarshal(resp.Body(), &pixResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	photos := make([]models.Photo, 0, len(pixResp.Hits))
	for _, hit := range pixResp.Hits {
		photos = append(photos, models.Photo{
			ID:  hit.ID,
			URL: hit.PreviewURL,
		})
	}

	p.logger.Debug("photo search finished",
		zap.String("query", query),
		zap.Int("hits", len(photos)),
		zap.Int("total_hits", pixResp.TotalHits),
	)

	return photos, nil
}

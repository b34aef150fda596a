// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const dictionaryProvider = "dictionary"

// DictionaryClient looks words up in the free English dictionary API
type DictionaryClient struct {
	endpoint string
	timeout  time.Duration
	http     *resty.Client
	logger   *zap.Logger
}

func NewDictionaryClient(endpoint string, timeout time.Duration, logger *zap.Logger) *DictionaryClient {
	return &DictionaryClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		timeout:  timeout,
		http:     newHTTPClient(logger),
		logger:   logger,
	}
}

// Lookup fetches the entries for word. The call is aborted after the client timeout
// and reported as ErrTimeout.
func (c *DictionaryClient) Lookup(ctx context.Context, word string) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		Get(c.endpoint + "/" + url.PathEscape(word))
	if err != nil {
		return nil, classify(ctx, dictionaryProvider, err)
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{
			Provider:   dictionaryProvider,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, ErrInvalidPayload
	}
	return json.RawMessage(body), nil
}

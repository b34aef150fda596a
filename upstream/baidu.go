// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/auth"
)

const baiduProvider = "baidu"

var ErrInvalidPayload = errors.New("provider returned a non-JSON body")

// BaiduClient calls the Baidu general translation API
type BaiduClient struct {
	appID    string
	secret   string
	endpoint string
	http     *resty.Client
	logger   *zap.Logger
	now      func() time.Time
}

func NewBaiduClient(appID, secret, endpoint string, logger *zap.Logger) *BaiduClient {
	return &BaiduClient{
		appID:    appID,
		secret:   secret,
		endpoint: endpoint,
		http:     newHTTPClient(logger),
		logger:   logger,
		now:      time.Now,
	}
}

// Configured reports whether both credentials are set
func (c *BaiduClient) Configured() bool {
	return c.appID != "" && c.secret != ""
}

// Translate signs and forwards one translation request.
// The provider body is returned verbatim.
func (c *BaiduClient) Translate(ctx context.Context, q, from, to string) (json.RawMessage, error) {
	salt := auth.Salt(c.now())
	sign := auth.Sign(c.appID, q, salt, c.secret)

	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"q":     q,
			"from":  from,
			"to":    to,
			"appid": c.appID,
			"salt":  salt,
			"sign":  sign,
		}).
		Post(c.endpoint)
	if err != nil {
		return nil, classify(ctx, baiduProvider, err)
	}

	if !resp.IsSuccess() {
		return nil, &StatusError{
			Provider:   baiduProvider,
			StatusCode: resp.StatusCode(),
			Body:       resp.Body(),
		}
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, ErrInvalidPayload
	}

	c.logger.Debug("translation provider answered",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("bytes", len(body)),
	)

	return json.RawMessage(body), nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/models"
)

// Defaults for reaching the relay
const (
	DefaultBaseURL = "http://localhost:3000"
	DefaultTimeout = 10 * time.Second
	HealthTimeout  = 5 * time.Second
)

// Service names used in error messages
const (
	serviceTranslation = "translation"
	serviceDictionary  = "dictionary"
	serviceImage       = "image"
)

// Client calls the relay. Every error it returns is an *apperr.Error.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

type Option func(*Client)

// WithTimeout overrides the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.http.SetLogger(logger.Sugar())
	}
}

// New creates a client for the relay at baseURL (DefaultBaseURL when empty)
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(DefaultTimeout).
			SetHeader("Content-Type", "application/json"),
		logger: zap.NewNop(),
	}
	c.http.SetLogger(c.logger.Sugar())
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// post sends body to path and decodes a 2xx answer into out
func (c *Client) post(ctx context.Context, service, path string, body, out any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	return c.decode(ctx, service, resp, err, out)
}

func (c *Client) decode(ctx context.Context, service string, resp *resty.Response, err error, out any) error {
	if err != nil {
		c.logger.Warn("relay call failed", zap.String("service", service), zap.Error(err))
		return transportError(ctx, service, err)
	}
	if !resp.IsSuccess() {
		c.logger.Warn("relay reported an error",
			zap.String("service", service),
			zap.Int("status", resp.StatusCode()),
		)
		return responseError(service, resp.StatusCode(), resp.Body())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return apperr.NewInternalError(fmt.Sprintf("%s request failed: unreadable response", service), err)
	}
	return nil
}

// responseError builds the error for a relay answer outside 2xx.
// The message comes from the body's error field, then message, then the status.
func responseError(service string, status int, body []byte) *apperr.Error {
	var payload models.ErrorResponse
	_ = json.Unmarshal(body, &payload)

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	if msg == "" {
		msg = fmt.Sprintf("%s service error: %d", service, status)
	}
	return apperr.NewUpstreamError(msg, status).WithContext("status", status)
}

// transportError classifies a call that produced no response
func transportError(ctx context.Context, service string, err error) *apperr.Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return apperr.NewTimeoutError(fmt.Sprintf("%s request timed out, please retry later", service)).WithCause(err)
	case errors.Is(err, context.Canceled):
		return apperr.NewInternalError(fmt.Sprintf("%s request canceled", service), err)
	default:
		return apperr.NewUnreachableError(
			fmt.Sprintf("cannot reach %s service, check that the relay is running", service), err)
	}
}

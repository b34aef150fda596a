// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Providers without a deadline of their own still give up eventually
const defaultTimeout = 30 * time.Second

// ErrTimeout marks a call aborted by its deadline
var ErrTimeout = errors.New("upstream deadline exceeded")

// StatusError reports a non-2xx answer from a provider
type StatusError struct {
	Provider   string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
}

// Details returns the body as JSON when it parses, else as a string
func (e *StatusError) Details() any {
	if len(e.Body) > 0 && json.Valid(e.Body) {
		return json.RawMessage(e.Body)
	}
	return string(e.Body)
}

func newHTTPClient(logger *zap.Logger) *resty.Client {
	return resty.New().
		SetTimeout(defaultTimeout).
		SetLogger(logger.Sugar())
}

// classify turns a transport error into ErrTimeout when ctx (or the client timeout) expired
func classify(ctx context.Context, provider string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", provider, ErrTimeout)
	}
	return fmt.Errorf("%s request failed: %w", provider, err)
}

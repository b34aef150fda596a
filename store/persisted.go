// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Persisted is a typed value mirrored to one KV key as JSON.
// It is read once on construction and written on every Set.
type Persisted[T any] struct {
	kv     KV
	key    string
	value  T
	logger *zap.Logger
}

// NewPersisted loads key from kv. A missing or unreadable value leaves def in place.
func NewPersisted[T any](ctx context.Context, kv KV, key string, def T, logger *zap.Logger) *Persisted[T] {
	p := &Persisted[T]{kv: kv, key: key, value: def, logger: logger}

	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		logger.Error("failed to read stored value", zap.String("key", key), zap.Error(err))
		return p
	}
	if !ok || raw == "" {
		return p
	}

	var stored T
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logger.Error("stored value is not valid JSON", zap.String("key", key), zap.Error(err))
		return p
	}
	p.value = stored
	return p
}

func (p *Persisted[T]) Get() T {
	return p.value
}

// Set changes the value and writes it through. The in-memory value changes
// even when the write fails.
func (p *Persisted[T]) Set(ctx context.Context, v T) error {
	p.value = v

	data, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("failed to encode value", zap.String("key", p.key), zap.Error(err))
		return fmt.Errorf("encode %q: %w", p.key, err)
	}
	if err := p.kv.Set(ctx, p.key, string(data)); err != nil {
		p.logger.Error("failed to persist value", zap.String("key", p.key), zap.Error(err))
		return err
	}
	return nil
}

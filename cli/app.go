// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/apperr"
	"github.com/danielhkuo/quickly-translate/client"
	"github.com/danielhkuo/quickly-translate/db"
	"github.com/danielhkuo/quickly-translate/store"
	"github.com/danielhkuo/quickly-translate/translation"
)

// App wires the gateway, the stores and the translator for one CLI run
type App struct {
	cfg    Config
	out    io.Writer
	logger *zap.Logger
	conn   *sql.DB

	client     *client.Client
	history    *store.History
	settings   *store.Settings
	pair       *store.LanguagePair
	translator *translation.Translator
}

type AppOption func(*appOptions)

type appOptions struct {
	clipboard translation.Clipboard
}

// WithClipboard replaces the system clipboard used for auto-copy
func WithClipboard(c translation.Clipboard) AppOption {
	return func(o *appOptions) { o.clipboard = c }
}

// NewApp opens the local store and builds the client side from cfg
func NewApp(ctx context.Context, cfg Config, out io.Writer, logger *zap.Logger, opts ...AppOption) (*App, error) {
	var o appOptions
	for _, opt := range opts {
		opt(&o)
	}

	conn, err := db.Open(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		return nil, err
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	settings := store.NewSettings()
	if err := applySettings(settings, cfg); err != nil {
		conn.Close()
		return nil, err
	}

	app := &App{
		cfg:      cfg,
		out:      out,
		logger:   logger,
		conn:     conn,
		client:   client.New(cfg.BaseURL, client.WithTimeout(cfg.Timeout), client.WithLogger(logger)),
		history:  store.NewHistory(),
		settings: settings,
		pair:     store.NewLanguagePair(ctx, store.NewSQLKV(conn, cfg.StoreDriver), logger),
	}

	trOpts := []translation.Option{translation.WithLogger(logger)}
	if o.clipboard != nil {
		trOpts = append(trOpts, translation.WithClipboard(o.clipboard))
	}
	app.translator = translation.New(app.client, app.history, app.settings, trOpts...)

	return app, nil
}

func applySettings(s *store.Settings, cfg Config) error {
	if cfg.DefaultProvider != "" {
		if err := s.SetDefaultProvider(cfg.DefaultProvider); err != nil {
			return err
		}
	}
	if cfg.Theme != "" {
		if err := s.SetTheme(cfg.Theme); err != nil {
			return err
		}
	}
	s.SetAutoCopy(cfg.AutoCopy)
	s.SetShowHistory(cfg.ShowHistory)
	return nil
}

func (a *App) Close() error {
	return a.conn.Close()
}

// UserMessage is the text shown for err: the application message when
// there is one, else the error itself.
func UserMessage(err error) string {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

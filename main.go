// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/danielhkuo/quickly-translate/auth"
	"github.com/danielhkuo/quickly-translate/cliparse"
	"github.com/danielhkuo/quickly-translate/logging"
	"github.com/danielhkuo/quickly-translate/router"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// .env is a development convenience; production reads the real environment
	if err = cliparse.LoadEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("baidu_app_id", auth.Mask(cfg.BaiduAppID)),
		zap.String("baidu_secret", auth.Mask(cfg.BaiduSecretKey)),
		zap.String("pixabay_key", auth.Mask(cfg.PixabayKey)),
		zap.Duration("dictionary_timeout", cfg.DictionaryTimeout),
	)
	if cfg.BaiduAppID == "" || cfg.BaiduSecretKey == "" {
		logger.Warn("translation credentials missing, /translate will answer 500")
	}
	if cfg.PixabayKey == "" {
		logger.Warn("photo search key missing, /image-search will answer 500")
	}

	// Create server
	server := http.Server{
		Handler:           router.NewHandler(cfg, logger),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Wait for Ctrl-C signal, then let in-flight relays finish
		<-ctrlc
		logger.Info("shutting down", zap.Duration("drain", shutdownTimeout))
		shutdown(&server, shutdownTimeout, logger)
	}()

	// Start server
	logger.Info("listening", zap.Int("port", cfg.Port))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server closed", zap.Error(err))
		return
	}

	// ListenAndServe returns as soon as Shutdown starts
	<-done
	logger.Info("server closed")
}

// shutdown stops accepting connections and waits up to timeout for active
// requests, then closes whatever is left
func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		server.Close()
		return err
	}
	return nil
}

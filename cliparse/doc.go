// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration
for the relay server.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadEnvFile(); err != nil {
		// malformed .env
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p              Server port
	-env            Runtime mode (development or production)
	-log-level      Log level
	-log-file       Log file
	-dict-timeout   Dictionary lookup timeout
	-baidu-app-id   Baidu translate app id
	-baidu-secret   Baidu translate secret
	-pixabay-key    Pixabay API key

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p (default 3000)
	APP_ENV            → -env (default development)
	LOG_LEVEL          → -log-level (default info)
	LOG_FILE           → -log-file
	DICTIONARY_TIMEOUT → -dict-timeout (default 8s)
	BAIDU_APP_ID       → -baidu-app-id
	BAIDU_SECRET_KEY   → -baidu-secret
	PIXABAY_KEY        → -pixabay-key

Upstream endpoints can be redirected with BAIDU_API_URL, DICTIONARY_API_URL
and PIXABAY_API_URL.

CLI flags take precedence over environment variables. Outside production,
LoadEnvFile reads a .env file first; variables already set are kept.

# Validation

Missing provider credentials do not fail startup. The affected endpoints
answer with a configuration error instead, so the remaining endpoints keep
working.
*/
package cliparse

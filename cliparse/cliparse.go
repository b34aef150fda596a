// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default upstream endpoints
const (
	DefaultBaiduURL      = "https://fanyi-api.baidu.com/api/trans/vip/translate"
	DefaultDictionaryURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultPixabayURL    = "https://pixabay.com/api/"

	DefaultPort              = 3000
	DefaultDictionaryTimeout = 8 * time.Second
)

type Config struct {
	Port     int
	Env      string
	LogLevel string
	LogFile  string

	BaiduAppID     string
	BaiduSecretKey string
	PixabayKey     string

	BaiduURL          string
	DictionaryURL     string
	PixabayURL        string
	DictionaryTimeout time.Duration
}

// IsProduction reports whether the relay runs in production mode
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadEnvFile loads .env into the environment outside production.
// A missing file is not an error.
func LoadEnvFile(filenames ...string) error {
	if os.Getenv("APP_ENV") == "production" {
		return nil
	}
	err := godotenv.Load(filenames...)
	if err != nil && errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ParseFlags parses flags and falls back to environment variables.
// Provider credentials are optional here; handlers report them as missing per request.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("quickly-translate", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Env, "env", "", "Runtime mode (development or production)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Log file (default stdout)")
	fs.DurationVar(&cfg.DictionaryTimeout, "dict-timeout", 0, "Dictionary lookup timeout")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.BaiduAppID, "baidu-app-id", "", "Baidu translate app id (prefer env)")
	fs.StringVar(&cfg.BaiduSecretKey, "baidu-secret", "", "Baidu translate secret (prefer env)")
	fs.StringVar(&cfg.PixabayKey, "pixabay-key", "", "Pixabay API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}

	if cfg.DictionaryTimeout == 0 {
		if s := os.Getenv("DICTIONARY_TIMEOUT"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid DICTIONARY_TIMEOUT env variable")
			}
			cfg.DictionaryTimeout = d
		} else {
			cfg.DictionaryTimeout = DefaultDictionaryTimeout
		}
	}

	cfg.Env = firstNonEmpty(cfg.Env, os.Getenv("APP_ENV"), "development")
	cfg.LogLevel = firstNonEmpty(cfg.LogLevel, os.Getenv("LOG_LEVEL"), "info")
	cfg.LogFile = firstNonEmpty(cfg.LogFile, os.Getenv("LOG_FILE"))

	cfg.BaiduAppID = firstNonEmpty(cfg.BaiduAppID, os.Getenv("BAIDU_APP_ID"))
	cfg.BaiduSecretKey = firstNonEmpty(cfg.BaiduSecretKey, os.Getenv("BAIDU_SECRET_KEY"))
	cfg.PixabayKey = firstNonEmpty(cfg.PixabayKey, os.Getenv("PIXABAY_KEY"))

	cfg.BaiduURL = firstNonEmpty(os.Getenv("BAIDU_API_URL"), DefaultBaiduURL)
	cfg.DictionaryURL = firstNonEmpty(os.Getenv("DICTIONARY_API_URL"), DefaultDictionaryURL)
	cfg.PixabayURL = firstNonEmpty(os.Getenv("PIXABAY_API_URL"), DefaultPixabayURL)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, errors.New("port out of range")
	}

	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

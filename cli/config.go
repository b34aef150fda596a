// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/danielhkuo/quickly-translate/client"
	"github.com/danielhkuo/quickly-translate/db"
	"github.com/danielhkuo/quickly-translate/store"
)

// Config is the resolved client configuration
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	StoreDriver string
	StoreDSN    string
	LogLevel    string

	DefaultProvider string
	AutoCopy        bool
	ShowHistory     bool
	Theme           string
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	setDefaults()

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".lingo" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".lingo")
	}

	// Environment variables: LINGO_API_BASE_URL, LINGO_SETTINGS_AUTO_COPY, ...
	viper.SetEnvPrefix("LINGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setDefaults() {
	viper.SetDefault("api.base_url", client.DefaultBaseURL)
	viper.SetDefault("api.timeout", client.DefaultTimeout)
	viper.SetDefault("store.driver", db.DriverSQLite)
	viper.SetDefault("store.dsn", defaultStoreDSN())
	viper.SetDefault("settings.default_provider", store.DefaultProvider)
	viper.SetDefault("settings.auto_copy", false)
	viper.SetDefault("settings.show_history", true)
	viper.SetDefault("settings.theme", store.ThemeLight)
	viper.SetDefault("log.level", "warn")
}

// LoadConfig reads the resolved configuration from viper
func LoadConfig() Config {
	return Config{
		BaseURL:         viper.GetString("api.base_url"),
		Timeout:         viper.GetDuration("api.timeout"),
		StoreDriver:     viper.GetString("store.driver"),
		StoreDSN:        viper.GetString("store.dsn"),
		LogLevel:        viper.GetString("log.level"),
		DefaultProvider: viper.GetString("settings.default_provider"),
		AutoCopy:        viper.GetBool("settings.auto_copy"),
		ShowHistory:     viper.GetBool("settings.show_history"),
		Theme:           viper.GetString("settings.theme"),
	}
}

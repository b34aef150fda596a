// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/danielhkuo/quickly-translate/logging"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lingo",
		Short: "Translate, define and illustrate words from the terminal",
		Long: `lingo talks to a quickly-translate relay to translate text, look up
English words and find stock photos.

Examples:
  lingo translate 你好                # Translate with the saved language pair
  lingo translate --to jp "good day"  # Override the target language
  lingo dict serendipity              # Dictionary lookup
  lingo photo apple                   # Photo search
  lingo shell                         # Interactive session`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		newTranslateCommand(flags),
		newDictCommand(),
		newPhotoCommand(),
		newHealthCommand(),
		newLangCommand(),
		newShellCommand(),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.lingo.yaml)")
	cmd.PersistentFlags().StringVar(&flags.BaseURL, "api", flags.BaseURL, "Relay base URL")
	cmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Relay request timeout")
	cmd.PersistentFlags().StringVar(&flags.StoreDriver, "store-driver", flags.StoreDriver, "Local store driver: sqlite or postgres")
	cmd.PersistentFlags().StringVar(&flags.StoreDSN, "store-dsn", flags.StoreDSN, "Local store path (sqlite) or connection string (postgres)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("api.base_url", cmd.PersistentFlags().Lookup("api"))
	viper.BindPFlag("api.timeout", cmd.PersistentFlags().Lookup("timeout"))
	viper.BindPFlag("store.driver", cmd.PersistentFlags().Lookup("store-driver"))
	viper.BindPFlag("store.dsn", cmd.PersistentFlags().Lookup("store-dsn"))
	viper.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
}

// withApp builds an App from the resolved configuration, runs fn and closes it
func withApp(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	cfg := LoadConfig()
	logger := logging.NewWriter(cfg.LogLevel, os.Stderr)
	defer logger.Sync()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := NewApp(ctx, cfg, cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(ctx, app)
}

func newTranslateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [text...]",
		Short: "Translate text (defaults to the saved pending text)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				return app.Translate(ctx, strings.Join(args, " "), flags.From, flags.To, flags.Provider)
			})
		},
	}
	cmd.Flags().StringVar(&flags.From, "from", "", "Source language code or auto (default: saved pair)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Target language code (default: saved pair)")
	cmd.Flags().StringVar(&flags.Provider, "provider", "", "Translation provider (default: settings.default_provider)")
	return cmd
}

func newDictCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dict <word>",
		Short: "Look up an English word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				return app.Dict(ctx, args[0])
			})
		},
	}
}

func newPhotoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "photo <query...>",
		Short: "Search stock photos",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				return app.Photo(ctx, strings.Join(args, " "))
			})
		},
	}
}

func newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the relay is running",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				return app.Health(ctx)
			})
		},
	}
}

func newLangCommand() *cobra.Command {
	var from, to string

	langCmd := &cobra.Command{
		Use:   "lang",
		Short: "Show the saved language pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				app.ShowLanguages()
				return nil
			})
		},
	}

	setCmd := &cobra.Command{
		Use:   "set",
		Short: "Change the saved language pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				return app.SetLanguages(ctx, from, to)
			})
		},
	}
	setCmd.Flags().StringVar(&from, "from", "", "Source language code")
	setCmd.Flags().StringVar(&to, "to", "", "Target language code")

	swapCmd := &cobra.Command{
		Use:   "swap",
		Short: "Swap source and target languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				return app.SwapLanguages(ctx)
			})
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				app.ListLanguages()
				return nil
			})
		},
	}

	langCmd.AddCommand(setCmd, swapCmd, listCmd)
	return langCmd
}

func newShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive translation session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, app *App) error {
				return app.Shell(ctx, cmd.InOrStdin())
			})
		},
	}
}

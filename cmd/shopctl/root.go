package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shop-assistant/config"
	"shop-assistant/internal/app"
	"shop-assistant/pkg/log"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:          "shopctl",
	Short:        "Command line client for the shop assistant",
	SilenceUsage: true,
	Long: `shopctl ingests the FAQ corpus, classifies messages and chats with the
assistant using the same configuration as the API server (config.yaml and .env).`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at the configured level instead of warn")
}

// loadApp loads configuration and wires every component.
func loadApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	level := cfg.Logger.Level
	if !flagVerbose {
		level = "warn"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a, err := app.New(cmd.Context(), cfg, logger)
	if err != nil {
		return nil, err
	}
	return a, nil
}

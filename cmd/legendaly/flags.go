package main

import (
	"fmt"
	"log/slog"

	"github.com/abdulachik/legendaly/internal/config"
	"github.com/abdulachik/legendaly/internal/locale"
	"github.com/spf13/cobra"
)

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("tone") {
		cfg.Tone, _ = flags.GetString("tone")
	}
	if flags.Changed("lang") {
		lang, _ := flags.GetString("lang")
		cfg.Language = locale.Parse(lang)
	}
	if flags.Changed("category") {
		cfg.Category, _ = flags.GetString("category")
	}
	if flags.Changed("count") {
		count, _ := flags.GetInt("count")
		cfg.QuoteCount = min(max(count, 1), config.MaxQuoteCount)
	}
	if flags.Lookup("interactive") != nil && flags.Changed("interactive") {
		cfg.Interactive, _ = flags.GetBool("interactive")
	}

	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	return cfg, nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdulachik/legendaly/internal/app"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently generated quotes",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int64P("limit", "n", 20, "number of quotes")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg, slog.Default(), app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	limit, _ := cmd.Flags().GetInt64("limit")
	entries, err := a.Store.ListRecentHistory(ctx, limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "[%s] %s『%s』: %s (tone: %s, lang: %s)\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Speaker, e.Source, e.Text, e.Tone, e.Language)
	}
	return nil
}

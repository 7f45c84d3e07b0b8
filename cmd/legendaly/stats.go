package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdulachik/legendaly/internal/app"
	"github.com/abdulachik/legendaly/internal/echolog"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show history, favorites and ratings statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg, slog.Default(), app.Options{Index: true})
	if err != nil {
		return err
	}
	defer a.Close()

	totalQuotes, err := a.Store.CountHistory(ctx)
	if err != nil {
		return fmt.Errorf("count history: %w", err)
	}
	sessions, err := a.Store.CountSessions(ctx)
	if err != nil {
		return fmt.Errorf("count sessions: %w", err)
	}
	byLanguage, err := a.Store.CountHistoryByLanguage(ctx)
	if err != nil {
		return fmt.Errorf("count history by language: %w", err)
	}
	favorites, err := a.Store.CountFavorites(ctx)
	if err != nil {
		return fmt.Errorf("count favorites: %w", err)
	}
	ratings, avgRating, err := a.Store.RatingSummary(ctx)
	if err != nil {
		return fmt.Errorf("summarize ratings: %w", err)
	}

	echoFiles, err := echolog.Sessions(a.Paths.Echoes)
	if err != nil {
		slog.Warn("failed to list echoes", "error", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Legendaly Statistics ===")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Home: %s\n", a.Paths.Home)
	fmt.Fprintf(out, "Database: %s\n", cfg.DatabasePath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Quotes:")
	fmt.Fprintf(out, "  Total shown: %d\n", totalQuotes)
	fmt.Fprintf(out, "  Sessions: %d\n", sessions)
	fmt.Fprintf(out, "  Echo files: %d\n", len(echoFiles))
	fmt.Fprintln(out)

	if len(byLanguage) > 0 {
		fmt.Fprintln(out, "  By language:")
		for _, row := range byLanguage {
			fmt.Fprintf(out, "    %s: %d\n", row.Language, row.Count)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Feedback:")
	fmt.Fprintf(out, "  Favorites: %d\n", favorites)
	fmt.Fprintf(out, "  Ratings: %d (avg %.2f)\n", ratings, avgRating)
	fmt.Fprintln(out)

	if a.Index != nil {
		fmt.Fprintln(out, "VecLite:")
		fmt.Fprintf(out, "  Path: %s\n", cfg.VecLitePath)
		fmt.Fprintf(out, "  Echoes indexed: %d\n", a.Index.Count())
		fmt.Fprintln(out)
	}

	return nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/abdulachik/legendaly/internal/app"
	"github.com/abdulachik/legendaly/internal/db"
	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List or export favorite quotes",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print favorite quotes",
	RunE:  runFavoritesList,
}

var favoritesExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write favorite quotes to a text file",
	Long:  `Write every favorite quote to a text file, separated by blank lines. Use "-" for stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesExport,
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd, favoritesExportCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func loadFavorites(cmd *cobra.Command) ([]db.Favorite, error) {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg, slog.Default(), app.Options{})
	if err != nil {
		return nil, err
	}
	defer a.Close()

	favs, err := a.Store.ListFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favs, nil
}

func runFavoritesList(cmd *cobra.Command, args []string) error {
	favs, err := loadFavorites(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(favs) == 0 {
		fmt.Fprintln(out, "No favorites yet. Run with --interactive and press f to save one.")
		return nil
	}
	for _, f := range favs {
		fmt.Fprintf(out, "%s  (saved %s)\n\n", f.QuoteText, f.CreatedAt.Local().Format("2006-01-02"))
	}
	return nil
}

func runFavoritesExport(cmd *cobra.Command, args []string) error {
	favs, err := loadFavorites(cmd)
	if err != nil {
		return err
	}

	if args[0] == "-" {
		return writeFavorites(cmd.OutOrStdout(), favs)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := writeFavorites(f, favs); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	slog.Info("favorites exported", "path", args[0], "count", len(favs))
	return nil
}

func writeFavorites(w io.Writer, favs []db.Favorite) error {
	for i, f := range favs {
		sep := "\n\n"
		if i == len(favs)-1 {
			sep = "\n"
		}
		if _, err := io.WriteString(w, f.QuoteText+sep); err != nil {
			return fmt.Errorf("write favorites: %w", err)
		}
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abdulachik/legendaly/internal/app"
	"github.com/abdulachik/legendaly/internal/locale"
	"github.com/abdulachik/legendaly/internal/vectorstore"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search past quotes",
	Long: `Search every quote legendaly has shown. By default the query is
embedded and matched semantically; --text uses BM25 keyword search and
--hybrid combines both.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntP("limit", "n", 5, "maximum results")
	searchCmd.Flags().Bool("text", false, "keyword search only")
	searchCmd.Flags().Bool("hybrid", false, "combine semantic and keyword search")
	searchCmd.Flags().String("only-lang", "", "restrict semantic search to one language")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg, slog.Default(), app.Options{RequireIndex: true})
	if err != nil {
		return err
	}
	defer a.Close()

	query := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")
	textOnly, _ := cmd.Flags().GetBool("text")
	hybrid, _ := cmd.Flags().GetBool("hybrid")
	onlyLang, _ := cmd.Flags().GetString("only-lang")

	var results []vectorstore.SearchResult
	switch {
	case textOnly:
		results, err = a.Index.TextSearch(ctx, query, limit)
	case hybrid:
		results, err = a.Index.HybridSearch(ctx, query, limit)
	case onlyLang != "":
		results, err = a.Index.SearchLanguage(ctx, query, string(locale.Parse(onlyLang)), limit)
	default:
		results, err = a.Index.Search(ctx, query, limit)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		fmt.Fprintln(out, "No matching quotes.")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(out, "%.3f %s\n", r.Similarity, r.Record.Display().String())
		fmt.Fprintf(out, "      (tone: %s, lang: %s)\n\n", r.Tone, r.Language)
	}
	return nil
}

package main

import (
	"log/slog"
	"os"

	"github.com/abdulachik/legendaly/internal/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	verbose  bool
	logLevel = new(slog.LevelVar)
)

var rootCmd = &cobra.Command{
	Use:   "legendaly",
	Short: "Fictional quotes, typed out in your terminal",
	Long: `Legendaly asks a language model for batches of quotes from people
and works that never existed, then types them out one by one.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logLevel.Set(slog.LevelDebug)
		}
	},
	RunE: runDisplay,
}

func init() {
	// Load .env file if present
	_ = godotenv.Load()

	logLevel.Set(logging.ParseLevel(os.Getenv("LOG_LEVEL")))
	slog.SetDefault(logging.New(os.Stderr, logLevel))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("tone", "", "quote tone, e.g. epic or cyberpunk+zen (env TONE)")
	rootCmd.PersistentFlags().String("lang", "", "quote language: ja, en, zh, ko, fr, es, de (env LANGUAGE)")
	rootCmd.PersistentFlags().String("category", "", "theme for the quotes (env CATEGORY)")
	rootCmd.PersistentFlags().Int("count", 0, "quotes per batch, at most 10 (env QUOTE_COUNT)")
	rootCmd.Flags().Bool("interactive", false, "ask to favorite or rate each quote (env INTERACTIVE)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/abdulachik/legendaly/internal/app"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one batch and print it",
	Long: `Generate a single batch of quotes and print them without animation.
The batch is echoed and archived like any other.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Bool("json", false, "print the batch as JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForGeneration(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(ctx, cfg, slog.Default(), app.Options{Generation: true, Index: true})
	if err != nil {
		return err
	}
	defer a.Close()

	displays := a.Generator.GenerateBatch(ctx, a.Request())

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(displays); err != nil {
			return fmt.Errorf("encode batch: %w", err)
		}
		return nil
	}

	for _, d := range displays {
		fmt.Fprintln(out, d.String())
		fmt.Fprintln(out)
	}
	slog.Info("batch generated", "quotes", len(displays), "echoes", a.Echoes.SessionPath())
	return nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdulachik/legendaly/internal/app"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  `Create the home directory layout and apply pending database migrations.`,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	slog.Info("connecting to database", "path", cfg.DatabasePath)
	a, err := app.New(ctx, cfg, slog.Default(), app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	slog.Info("migrations completed successfully", "home", a.Paths.Home)
	return nil
}

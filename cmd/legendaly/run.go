package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdulachik/legendaly/internal/app"
	"github.com/abdulachik/legendaly/internal/display"
	"github.com/abdulachik/legendaly/internal/interactive"
	"github.com/abdulachik/legendaly/internal/notify"
	"github.com/abdulachik/legendaly/internal/scheduler"
	"github.com/spf13/cobra"
)

func runDisplay(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.ValidateForGeneration(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	// Info logs would tear through the animation.
	if logLevel.Level() < slog.LevelWarn && !verbose && !cfg.Verbose {
		logLevel.Set(slog.LevelWarn)
	}

	a, err := app.New(ctx, cfg, slog.Default(), app.Options{Generation: true, Index: true})
	if err != nil {
		return err
	}
	defer a.Close()

	var asker scheduler.Asker
	if cfg.Interactive {
		asker = interactive.New(os.Stdin, os.Stdout, a.Store, slog.Default())
	}

	var notifier notify.Notifier
	if cfg.EnableNotifications {
		notifier = notify.Multi{notify.NewDesktopNotifier(), notify.NewLogNotifier(slog.Default())}
	}

	screen := display.New(os.Stdout, display.Config{
		Tone:        cfg.Tone,
		Language:    string(cfg.Language),
		TypeSpeed:   cfg.TypeSpeed,
		DisplayTime: cfg.DisplayTime,
		FadeSteps:   cfg.FadeSteps,
		FadeDelay:   cfg.FadeDelay,
	})

	sched := scheduler.New(scheduler.Config{
		Generator: a.Generator,
		Screen:    screen,
		Request:   a.Request(),
		Interval:  cfg.FetchInterval,
		MinRating: cfg.MinRating,
		Ratings:   a.Store,
		Asker:     asker,
		Notifier:  notifier,
		Health:    a.Health,
		Logger:    slog.Default(),
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- sched.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Debug("received shutdown signal", "signal", sig)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("display loop: %w", err)
		}
	}

	fmt.Fprintln(os.Stdout)
	return nil
}

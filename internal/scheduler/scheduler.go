// Package scheduler runs the display loop: fetch a batch, show each quote,
// then fetch again.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdulachik/legendaly/internal/display"
	"github.com/abdulachik/legendaly/internal/notify"
	"github.com/abdulachik/legendaly/internal/quotes"
)

// Generator produces display lines for a request.
type Generator interface {
	GenerateBatch(ctx context.Context, req quotes.Request) []quotes.Display
}

// Screen renders quotes. *display.Renderer implements it.
type Screen interface {
	Banner()
	HideCursor()
	ShowCursor()
	Loading(ctx context.Context) (stop func())
	Show(ctx context.Context, d quotes.Display) error
}

// Ratings returns the latest rating per quote.
type Ratings interface {
	RatingsByQuote(ctx context.Context) (map[string]int64, error)
}

// Asker collects feedback after a quote was shown.
type Asker interface {
	Ask(ctx context.Context, d quotes.Display) error
}

var errEmptyBatch = errors.New("model returned no usable quotes")

// Config holds scheduler configuration. Ratings, Asker and Notifier are
// optional.
type Config struct {
	Generator Generator
	Screen    Screen
	Request   quotes.Request
	// Interval is the pause after each quote when not interactive.
	Interval  time.Duration
	MinRating int
	Ratings   Ratings
	Asker     Asker
	Notifier  notify.Notifier
	Health    *Health
	Logger    *slog.Logger
	// MaxBatches stops the loop after that many batches; zero runs until
	// the context ends.
	MaxBatches int
	Sleep      func(ctx context.Context, d time.Duration) error
}

// Scheduler drives the display loop.
type Scheduler struct {
	cfg    Config
	health *Health
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// New creates a new scheduler.
func New(cfg Config) *Scheduler {
	s := &Scheduler{
		cfg:    cfg,
		health: cfg.Health,
		logger: cfg.Logger,
		sleep:  cfg.Sleep,
	}
	if s.health == nil {
		s.health = NewHealth()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.sleep == nil {
		s.sleep = display.Sleep
	}
	return s
}

// Run shows batches until ctx is done or MaxBatches is reached.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("starting display loop",
		"tone", s.cfg.Request.Tone,
		"language", s.cfg.Request.Language,
		"count", s.cfg.Request.Count,
		"interval", s.cfg.Interval,
	)

	s.cfg.Screen.HideCursor()
	defer s.cfg.Screen.ShowCursor()
	s.cfg.Screen.Banner()

	for batch := 1; ; batch++ {
		if err := ctx.Err(); err != nil {
			s.logger.Info("display loop shutting down")
			return err
		}

		displays := s.fetch(ctx)
		if len(displays) == 0 {
			if err := s.sleep(ctx, s.cfg.Interval); err != nil {
				return err
			}
		}

		for _, d := range s.filter(ctx, displays) {
			if err := s.cfg.Screen.Show(ctx, d); err != nil {
				return fmt.Errorf("show quote: %w", err)
			}
			if err := s.afterQuote(ctx, d); err != nil {
				return err
			}
		}

		if s.cfg.MaxBatches > 0 && batch >= s.cfg.MaxBatches {
			return nil
		}
	}
}

// fetch generates one batch behind the loading animation and records the outcome.
func (s *Scheduler) fetch(ctx context.Context) []quotes.Display {
	stop := s.cfg.Screen.Loading(ctx)
	displays := s.cfg.Generator.GenerateBatch(ctx, s.cfg.Request)
	stop()

	switch {
	case len(displays) == 0:
		s.health.SetUnhealthy("generator", errEmptyBatch)
		s.logger.Warn("empty batch")
	case len(displays) == 1 && displays[0].IsPlaceholder():
		err := errors.New(displays[0].Text())
		s.health.SetUnhealthy("generator", err)
		s.notify(ctx, err.Error())
	default:
		s.health.SetHealthy("generator", fmt.Sprintf("%d quotes", len(displays)))
		s.notify(ctx, fmt.Sprintf("%d new quotes ready", len(displays)))
	}
	return displays
}

// filter keeps quotes rated at least MinRating. If none qualify, all are kept.
func (s *Scheduler) filter(ctx context.Context, displays []quotes.Display) []quotes.Display {
	if s.cfg.MinRating <= 0 || s.cfg.Ratings == nil || len(displays) == 0 {
		return displays
	}

	ratings, err := s.cfg.Ratings.RatingsByQuote(ctx)
	if err != nil {
		s.health.SetUnhealthy("store", err)
		s.logger.Warn("load ratings", "error", err)
		return displays
	}

	kept := make([]quotes.Display, 0, len(displays))
	for _, d := range displays {
		if ratings[d.String()] >= int64(s.cfg.MinRating) {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		s.logger.Debug("no quotes meet minimum rating, showing all", "min_rating", s.cfg.MinRating)
		return displays
	}
	return kept
}

func (s *Scheduler) afterQuote(ctx context.Context, d quotes.Display) error {
	if s.cfg.Asker == nil {
		return s.sleep(ctx, s.cfg.Interval)
	}
	if err := s.cfg.Asker.Ask(ctx, d); err != nil {
		s.health.SetUnhealthy("store", err)
		s.logger.Warn("save feedback", "error", err)
		return ctx.Err()
	}
	return nil
}

func (s *Scheduler) notify(ctx context.Context, body string) {
	if s.cfg.Notifier == nil {
		return
	}
	if err := s.cfg.Notifier.Send(ctx, notify.Notification{Subject: "Legendaly", Body: body}); err != nil {
		s.logger.Debug("send notification", "error", err)
	}
}

// Health returns the health tracker.
func (s *Scheduler) Health() *Health {
	return s.health
}

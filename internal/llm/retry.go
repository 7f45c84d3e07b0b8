package llm

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/abdulachik/legendaly/internal/metrics"
	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = 500 * time.Millisecond
)

// RetryConfig holds the retry policy.
type RetryConfig struct {
	// MaxRetries is the total number of attempts, including the first.
	MaxRetries   int
	InitialDelay time.Duration

	// Timer replaces the wall-clock timer between attempts. Nil uses a real timer.
	Timer  backoff.Timer
	Logger *slog.Logger
}

// Retrier wraps a ChatCompleter with bounded exponential backoff. Auth
// failures are returned immediately; everything else is retried.
type Retrier struct {
	completer    ChatCompleter
	maxRetries   int
	initialDelay time.Duration
	timer        backoff.Timer
	logger       *slog.Logger
}

// NewRetrier creates a new Retrier.
func NewRetrier(completer ChatCompleter, cfg RetryConfig) *Retrier {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.InitialDelay <= 0 {
		cfg.InitialDelay = DefaultInitialDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Retrier{
		completer:    completer,
		maxRetries:   cfg.MaxRetries,
		initialDelay: cfg.InitialDelay,
		timer:        cfg.Timer,
		logger:       cfg.Logger,
	}
}

// policy waits initialDelay * 2^n before attempt n+1, without jitter.
func (r *Retrier) policy(ctx context.Context) backoff.BackOff {
	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = r.initialDelay
	expo.RandomizationFactor = 0
	expo.Multiplier = 2
	expo.MaxInterval = r.initialDelay << uint(r.maxRetries)
	expo.MaxElapsedTime = 0

	return backoff.WithContext(backoff.WithMaxRetries(expo, uint64(r.maxRetries-1)), ctx)
}

// Complete runs the chat completion under the retry policy and returns the
// trimmed text. When every attempt fails the last error is returned.
func (r *Retrier) Complete(ctx context.Context, model string, messages []Message) (string, error) {
	var (
		attempt int
		text    string
	)

	op := func() error {
		attempt++
		r.logger.Debug("calling model", "model", model, "attempt", attempt, "max_attempts", r.maxRetries)

		out, err := r.completer.Chat(ctx, model, messages)
		if err != nil {
			if Classify(err) == KindAuth {
				return backoff.Permanent(err)
			}
			return err
		}

		text = out
		return nil
	}

	notify := func(err error, wait time.Duration) {
		metrics.ModelCalls.WithLabelValues("retry").Inc()
		r.logger.Debug("model call failed, backing off",
			"attempt", attempt,
			"max_attempts", r.maxRetries,
			"kind", Classify(err),
			"delay", wait,
			"error", err,
		)
	}

	if err := backoff.RetryNotifyWithTimer(op, r.policy(ctx), notify, r.timer); err != nil {
		metrics.ModelCalls.WithLabelValues("failure").Inc()
		r.logger.Warn("model call failed",
			"model", model,
			"attempts", attempt,
			"kind", Classify(err),
			"error", err,
		)
		return "", err
	}

	metrics.ModelCalls.WithLabelValues("success").Inc()
	return strings.TrimSpace(text), nil
}

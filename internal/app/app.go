// Package app wires configuration, storage and the quote pipeline together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdulachik/legendaly/internal/config"
	"github.com/abdulachik/legendaly/internal/db"
	"github.com/abdulachik/legendaly/internal/echolog"
	"github.com/abdulachik/legendaly/internal/llm"
	"github.com/abdulachik/legendaly/internal/quotes"
	"github.com/abdulachik/legendaly/internal/scheduler"
	"github.com/abdulachik/legendaly/internal/vectorstore"
	"github.com/google/uuid"
)

const echoesMaxAge = 30 * 24 * time.Hour

// Options selects which parts of the container are built.
type Options struct {
	// Generation builds the model client, cache, echo log and generator.
	Generation bool
	// Index opens the VecLite echo index. A failure to open it is logged,
	// not returned, unless the caller needs it for search.
	Index bool
	// RequireIndex turns an index failure into an error.
	RequireIndex bool
}

// App is the main application container holding all dependencies.
type App struct {
	Config    *config.Config
	Paths     echolog.Paths
	Store     *db.Store
	Index     *vectorstore.EchoStore
	Echoes    *echolog.Logger
	Generator *quotes.Generator
	Health    *scheduler.Health
	SessionID string
	Logger    *slog.Logger
}

// New creates a new application instance with the requested dependencies wired up.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	paths := echolog.NewPaths(cfg.Home)
	if err := paths.Ensure(); err != nil {
		return nil, fmt.Errorf("prepare home: %w", err)
	}

	store, err := db.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	a := &App{
		Config:    cfg,
		Paths:     paths,
		Store:     store,
		Health:    scheduler.NewHealth(),
		SessionID: uuid.NewString(),
		Logger:    logger,
	}
	a.Health.SetHealthy("store", "migrated")

	if opts.Index || opts.RequireIndex {
		index, err := vectorstore.New(vectorstore.Config{Path: cfg.VecLitePath, Logger: logger})
		if err != nil {
			if opts.RequireIndex {
				a.Close()
				return nil, fmt.Errorf("open echo index: %w", err)
			}
			logger.Warn("echo index unavailable, continuing without search", "error", err)
		} else {
			a.Index = index
			a.Health.SetHealthy("index", fmt.Sprintf("%d echoes", index.Count()))
		}
	}

	if opts.Generation {
		if err := a.buildGenerator(); err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

func (a *App) buildGenerator() error {
	cfg := a.Config

	completer, err := llm.NewCompleter(llm.ProviderConfig{
		Provider:     cfg.Provider,
		OpenAIKey:    cfg.OpenAIAPIKey,
		OpenAIBase:   cfg.OpenAIBaseURL,
		AnthropicKey: cfg.AnthropicAPIKey,
	})
	if err != nil {
		return fmt.Errorf("create model client: %w", err)
	}

	start := time.Now()
	if removed, err := echolog.CleanOldEchoes(a.Paths.Echoes, echoesMaxAge, start); err != nil {
		a.Logger.Warn("clean old echoes", "error", err)
	} else if removed > 0 {
		a.Logger.Info("removed old echoes", "files", removed)
	}

	a.Echoes = echolog.New(echolog.Config{
		RollingPath: a.Paths.LogFile(),
		SessionPath: a.Paths.SessionFile(start, cfg.Tone, cfg.Language),
	})

	archivers := []quotes.Archiver{&historyArchiver{store: a.Store, sessionID: a.SessionID}}
	if a.Index != nil {
		archivers = append(archivers, a.Index)
	}

	a.Generator = quotes.NewGenerator(quotes.GeneratorConfig{
		Client:    llm.NewRetrier(completer, llm.RetryConfig{Logger: a.Logger}),
		Cache:     quotes.NewCache(),
		Echoes:    a.Echoes,
		Archivers: archivers,
		Logger:    a.Logger,
	})

	a.Logger.Debug("generator ready",
		"provider", cfg.Provider,
		"model", cfg.Model,
		"session", a.SessionID,
		"echoes", a.Echoes.SessionPath(),
	)
	return nil
}

// Request builds a batch request from the configuration.
func (a *App) Request() quotes.Request {
	cfg := a.Config
	return quotes.Request{
		Model:        cfg.Model,
		Language:     cfg.Language,
		Tone:         cfg.Tone,
		Count:        cfg.QuoteCount,
		CustomPrompt: cfg.UserPrompt,
		Category:     cfg.Category,
	}
}

// Close closes all resources.
func (a *App) Close() error {
	var firstErr error
	if a.Index != nil {
		if err := a.Index.Close(); err != nil {
			firstErr = err
		}
	}
	if a.Store != nil {
		if err := a.Store.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

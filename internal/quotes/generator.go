package quotes

import (
	"context"
	"log/slog"
	"time"

	"github.com/abdulachik/legendaly/internal/llm"
	"github.com/abdulachik/legendaly/internal/locale"
	"github.com/abdulachik/legendaly/internal/metrics"
)

// Completer runs a chat completion, retrying as it sees fit.
type Completer interface {
	Complete(ctx context.Context, model string, messages []llm.Message) (string, error)
}

// BatchMeta describes the request a batch of records came from.
type BatchMeta struct {
	Tone        string
	Language    locale.Language
	GeneratedAt time.Time
}

// Echoer appends accepted records to the human-readable logs.
type Echoer interface {
	Append(records []Record, meta BatchMeta) error
}

// Archiver receives accepted records after they were echoed, e.g. a
// history table or a search index.
type Archiver interface {
	Archive(ctx context.Context, records []Record, meta BatchMeta) error
}

// Request describes one batch.
type Request struct {
	Model string
	// System defaults to the locale's system prompt.
	System string
	// Prompt builds the user prompt; defaults to the locale's batch prompt for Tone.
	Prompt       func(count int, category string) string
	Language     locale.Language
	Tone         string
	Count        int
	CustomPrompt string
	Category     string
}

// GeneratorConfig holds the generator's collaborators. Cache, Echoes and
// Archivers are optional.
type GeneratorConfig struct {
	Client    Completer
	Table     locale.Table
	Cache     *Cache
	Echoes    Echoer
	Archivers []Archiver
	Clock     func() time.Time
	Logger    *slog.Logger
}

// Generator turns a Request into display lines.
type Generator struct {
	client    Completer
	table     locale.Table
	cache     *Cache
	echoes    Echoer
	archivers []Archiver
	now       func() time.Time
	logger    *slog.Logger
}

// NewGenerator creates a new Generator.
func NewGenerator(cfg GeneratorConfig) *Generator {
	if cfg.Table == nil {
		cfg.Table = locale.Builtin
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Generator{
		client:    cfg.Client,
		table:     cfg.Table,
		cache:     cfg.Cache,
		echoes:    cfg.Echoes,
		archivers: cfg.Archivers,
		now:       cfg.Clock,
		logger:    cfg.Logger,
	}
}

// GenerateBatch returns the display lines for req. A fresh cached batch is
// returned without calling the model. A failed model call yields a single
// placeholder line chosen by error kind; GenerateBatch never fails.
func (g *Generator) GenerateBatch(ctx context.Context, req Request) []Display {
	fp := NewFingerprint(req.Language, req.Tone, req.Count, req.CustomPrompt, req.Category)

	if g.cache != nil {
		if entry, ok := g.cache.Get(fp); ok {
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			g.logger.Debug("quote cache hit", "fingerprint", fp, "quotes", len(entry.Records))
			return Displays(entry.Records)
		}
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	}

	start := g.now()
	raw, err := g.client.Complete(ctx, req.Model, g.messages(req))
	now := g.now()
	if err != nil {
		kind := llm.Classify(err)
		metrics.Placeholders.WithLabelValues(kind.String()).Inc()
		g.logger.Error("generate quotes", "kind", kind, "error", err)
		return []Display{Placeholder(kind, req.Language, now).Display()}
	}
	g.logger.Debug("model responded", "elapsed", now.Sub(start), "bytes", len(raw))

	result := ParseBatch(raw, req.Language, g.table, now)
	metrics.QuotesParsed.Add(float64(len(result.Records)))
	metrics.BlocksDropped.Add(float64(result.Dropped))
	g.logger.Debug("parsed batch",
		"fingerprint", fp,
		"quotes", len(result.Records),
		"dropped", result.Dropped,
	)

	meta := BatchMeta{Tone: req.Tone, Language: req.Language, GeneratedAt: now}
	if len(result.Records) > 0 {
		if g.echoes != nil {
			if err := g.echoes.Append(result.Records, meta); err != nil {
				g.logger.Warn("append echoes", "error", err)
			}
		}
		for _, a := range g.archivers {
			if err := a.Archive(ctx, result.Records, meta); err != nil {
				g.logger.Warn("archive quotes", "error", err)
			}
		}
	}

	if g.cache != nil {
		g.cache.Put(fp, result.Records)
	}

	return Displays(result.Records)
}

func (g *Generator) messages(req Request) []llm.Message {
	loc := g.table.Lookup(req.Language)

	system := req.System
	if system == "" {
		system = loc.System
	}
	prompt := req.Prompt
	if prompt == nil {
		prompt = loc.Prompter(req.Tone)
	}

	messages := []llm.Message{
		llm.SystemMessage(system),
		llm.UserMessage(prompt(req.Count, req.Category)),
	}
	if req.CustomPrompt != "" {
		messages = append(messages, llm.UserMessage(req.CustomPrompt))
	}
	return messages
}

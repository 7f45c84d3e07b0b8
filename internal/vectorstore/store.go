// Package vectorstore indexes echoed quotes in VecLite for later search.
package vectorstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abdul-hamid-achik/veclite"
	"github.com/abdulachik/legendaly/internal/quotes"
)

const echoesCollection = "echoes"

// Config holds configuration for the EchoStore.
type Config struct {
	// Path to the VecLite database file, e.g. ~/.legendaly/data/echoes.veclite.
	Path string

	// ConfigPath is the path to veclite.yaml (optional).
	// If empty, searches ./veclite.yaml, ~/.veclite/config.yaml.
	ConfigPath string

	Logger *slog.Logger
}

// EchoStore wraps a VecLite collection of every quote shown.
type EchoStore struct {
	vecdb    *veclite.DB
	coll     *veclite.Collection
	embedder veclite.Embedder
	logger   *slog.Logger
}

// SearchResult is one matching echo.
type SearchResult struct {
	ID         uint64
	Record     quotes.Record
	Tone       string
	Language   string
	Similarity float32
}

// New opens the echo index using veclite.yaml for the embedder.
func New(cfg Config) (*EchoStore, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	vecliteCfg, err := veclite.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load veclite config: %w", err)
	}

	embedder, err := veclite.NewEmbedderFromConfig(vecliteCfg.Embedder)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}
	logger.Debug("embedder created", "provider", vecliteCfg.Embedder.Provider, "dimension", embedder.Dimension())

	vecdb, err := veclite.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open veclite db: %w", err)
	}

	coll, err := vecdb.CreateCollection(echoesCollection,
		veclite.WithDimension(embedder.Dimension()),
		veclite.WithDistanceType(veclite.DistanceCosine),
		veclite.WithHNSW(16, 200),
		veclite.WithTextIndex("text", "speaker", "source"),
		veclite.WithEmbedder(embedder),
	)
	if err != nil {
		coll, err = vecdb.GetCollection(echoesCollection)
		if err != nil {
			vecdb.Close()
			return nil, fmt.Errorf("get collection: %w", err)
		}
	}

	return &EchoStore{
		vecdb:    vecdb,
		coll:     coll,
		embedder: embedder,
		logger:   logger,
	}, nil
}

// Close closes the VecLite database.
func (s *EchoStore) Close() error {
	if s.vecdb != nil {
		return s.vecdb.Close()
	}
	return nil
}

// Archive embeds and stores a batch, then syncs it to disk.
func (s *EchoStore) Archive(ctx context.Context, records []quotes.Record, meta quotes.BatchMeta) error {
	inserted, errs := insertEach(records, func(rec quotes.Record) error {
		_, err := s.coll.InsertText(rec.Text, payload(rec, meta))
		return err
	})
	if err := s.vecdb.Sync(); err != nil {
		errs = append(errs, fmt.Errorf("sync index: %w", err))
	}
	s.logger.Debug("indexed echoes", "count", inserted, "total", s.coll.Count())
	return errors.Join(errs...)
}

// insertEach reports how many records insert accepted, plus one error per rejected record.
func insertEach(records []quotes.Record, insert func(quotes.Record) error) (int, []error) {
	var (
		inserted int
		errs     []error
	)
	for _, rec := range records {
		if err := insert(rec); err != nil {
			errs = append(errs, fmt.Errorf("insert echo: %w", err))
			continue
		}
		inserted++
	}
	return inserted, errs
}

// Search finds echoes semantically close to query.
func (s *EchoStore) Search(ctx context.Context, query string, k int) ([]SearchResult, error) {
	results, err := s.coll.SearchText(query, veclite.TopK(k))
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return convertResults(results), nil
}

// SearchLanguage restricts Search to echoes generated in lang.
func (s *EchoStore) SearchLanguage(ctx context.Context, query, lang string, k int) ([]SearchResult, error) {
	queryVec, err := s.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := s.coll.Search(queryVec,
		veclite.TopK(k),
		veclite.WithFilter(veclite.Equal("language", lang)),
	)
	if err != nil {
		return nil, fmt.Errorf("search by language: %w", err)
	}
	return convertResults(results), nil
}

// HybridSearch combines vector and BM25 text search.
func (s *EchoStore) HybridSearch(ctx context.Context, query string, k int) ([]SearchResult, error) {
	queryVec, err := s.embedder.Embed(query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	results, err := s.coll.HybridSearch(queryVec, query,
		veclite.TopK(k),
		veclite.WithVectorWeight(0.7),
		veclite.WithTextWeight(0.3),
	)
	if err != nil {
		return nil, fmt.Errorf("hybrid search: %w", err)
	}
	return convertResults(results), nil
}

// TextSearch performs BM25 search over text, speaker and source.
func (s *EchoStore) TextSearch(ctx context.Context, query string, k int) ([]SearchResult, error) {
	results, err := s.coll.TextSearch(query, veclite.TopK(k))
	if err != nil {
		return nil, fmt.Errorf("text search: %w", err)
	}
	return convertResults(results), nil
}

// Count returns the number of indexed echoes.
func (s *EchoStore) Count() int {
	return s.coll.Count()
}

func payload(rec quotes.Record, meta quotes.BatchMeta) map[string]any {
	return map[string]any{
		"text":         rec.Text,
		"speaker":      rec.Speaker,
		"source":       rec.Source,
		"date":         rec.Date,
		"tone":         meta.Tone,
		"language":     string(meta.Language),
		"generated_at": meta.GeneratedAt.UTC().Unix(),
	}
}

func convertResults(results []veclite.Result) []SearchResult {
	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		sr := fromPayload(r.Record.Payload, r.Record.Content)
		sr.ID = r.Record.ID
		sr.Similarity = r.Score
		out = append(out, sr)
	}
	return out
}

func fromPayload(p map[string]any, content string) SearchResult {
	str := func(key string) string {
		v, _ := p[key].(string)
		return v
	}

	sr := SearchResult{
		Record: quotes.Record{
			Text:    str("text"),
			Speaker: str("speaker"),
			Source:  str("source"),
			Date:    str("date"),
		},
		Tone:     str("tone"),
		Language: str("language"),
	}
	if sr.Record.Text == "" {
		sr.Record.Text = content
	}
	return sr
}

// Package server serves quotes over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/abdulachik/legendaly/internal/metrics"
	"github.com/abdulachik/legendaly/internal/quotes"
	"github.com/abdulachik/legendaly/internal/scheduler"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger checks a backing store. *db.Store implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Config holds server configuration. Store and Logger are optional.
type Config struct {
	Port      int
	Generator scheduler.Generator
	// Request is generated once per /quote call; only its first quote is returned.
	Request quotes.Request
	Health  *scheduler.Health
	Store   Pinger
	Logger  *slog.Logger
	// RequestTimeout bounds one /quote call, retries included.
	RequestTimeout time.Duration
}

// Server is the quote HTTP API.
type Server struct {
	cfg        Config
	router     *chi.Mux
	httpServer *http.Server
	log        *slog.Logger
}

// QuoteResponse is the body of GET /quote.
type QuoteResponse struct {
	Quote quotes.Display `json:"quote"`
}

// New creates a server with its routes.
func New(cfg Config) *Server {
	if cfg.Health == nil {
		cfg.Health = scheduler.NewHealth()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 2 * time.Minute
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		log:    cfg.Logger,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/quote", s.handleQuote)
	s.router.Get("/healthz", s.handleHealth)
	s.router.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Start listens until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("starting HTTP server", "addr", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	s.log.Info("HTTP server stopped")
	return nil
}

// Router returns the handler, for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RequestTimeout)
	defer cancel()

	displays := s.cfg.Generator.GenerateBatch(ctx, s.cfg.Request)
	if len(displays) == 0 {
		s.cfg.Health.SetUnhealthy("generator", errors.New("model returned no usable quotes"))
		s.respondError(w, http.StatusServiceUnavailable, "no quote available")
		return
	}

	d := displays[0]
	if d.IsPlaceholder() {
		s.cfg.Health.SetUnhealthy("generator", errors.New(d.Text()))
	} else {
		s.cfg.Health.SetHealthy("generator", "served quote")
	}

	metrics.QuotesServed.Inc()
	s.log.Debug("served quote", "request_id", middleware.GetReqID(ctx))
	s.respondJSON(w, http.StatusOK, QuoteResponse{Quote: d})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Store != nil {
		if err := s.cfg.Store.PingContext(r.Context()); err != nil {
			s.cfg.Health.SetUnhealthy("store", err)
		} else {
			s.cfg.Health.SetHealthy("store", "ok")
		}
	}

	report := s.cfg.Health.Snapshot()
	status := http.StatusOK
	if !report.Healthy {
		status = http.StatusServiceUnavailable
	}
	s.respondJSON(w, status, report)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("encode JSON response", "error", err)
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]any{
		"error": map[string]any{
			"status":  status,
			"message": message,
		},
	})
}

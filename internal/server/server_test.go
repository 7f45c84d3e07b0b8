package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdulachik/legendaly/internal/llm"
	"github.com/abdulachik/legendaly/internal/locale"
	"github.com/abdulachik/legendaly/internal/quotes"
	"github.com/abdulachik/legendaly/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	displays []quotes.Display
	got      quotes.Request
}

func (f *fakeGenerator) GenerateBatch(ctx context.Context, req quotes.Request) []quotes.Display {
	f.got = req
	return f.displays
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(ctx context.Context) error { return f.err }

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandleQuote(t *testing.T) {
	first := quotes.Record{Text: "Every orbit returns", Speaker: "Vega", Source: "Orbit", Date: "2500"}.Display()
	second := quotes.Record{Text: "unused", Speaker: "x", Source: "y", Date: "z"}.Display()

	t.Run("returns first quote", func(t *testing.T) {
		gen := &fakeGenerator{displays: []quotes.Display{first, second}}
		s := New(Config{Generator: gen, Request: quotes.Request{Count: 1, Tone: "epic"}})

		rec := get(t, s, "/quote")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body struct {
			Quote []string `json:"quote"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, []string{first[0], first[1]}, body.Quote)
		assert.Equal(t, 1, gen.got.Count)
	})

	t.Run("placeholder is served and marks health", func(t *testing.T) {
		ph := quotes.Placeholder(llm.KindNetwork, locale.Japanese, time.Now()).Display()
		health := scheduler.NewHealth()
		s := New(Config{Generator: &fakeGenerator{displays: []quotes.Display{ph}}, Health: health})

		rec := get(t, s, "/quote")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ネットワーク接続を確認してください")
		assert.False(t, health.GetStatus("generator").Healthy)
	})

	t.Run("empty batch", func(t *testing.T) {
		s := New(Config{Generator: &fakeGenerator{}})

		rec := get(t, s, "/quote")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "no quote available")
	})
}

func TestHandleHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		s := New(Config{Generator: &fakeGenerator{}, Store: fakePinger{}})

		rec := get(t, s, "/healthz")
		require.Equal(t, http.StatusOK, rec.Code)

		var report scheduler.HealthReport
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
		assert.True(t, report.Healthy)
		assert.True(t, report.Components["store"].Healthy)
	})

	t.Run("store down", func(t *testing.T) {
		s := New(Config{Generator: &fakeGenerator{}, Store: fakePinger{err: errors.New("disk I/O error")}})

		rec := get(t, s, "/healthz")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "disk I/O error")
	})
}

func TestMetricsAndNotFound(t *testing.T) {
	s := New(Config{Generator: &fakeGenerator{}})

	rec := get(t, s, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "legendaly_quotes_served_total")

	assert.Equal(t, http.StatusNotFound, get(t, s, "/nope").Code)
}

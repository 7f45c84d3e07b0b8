package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abdulachik/legendaly/internal/llm"
	"github.com/abdulachik/legendaly/internal/locale"
	"github.com/abdulachik/legendaly/internal/notify"
	"github.com/abdulachik/legendaly/internal/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	batches [][]quotes.Display
	calls   int
}

func (f *fakeGenerator) GenerateBatch(ctx context.Context, req quotes.Request) []quotes.Display {
	b := f.batches[min(f.calls, len(f.batches)-1)]
	f.calls++
	return b
}

type fakeScreen struct {
	mu       sync.Mutex
	shown    []quotes.Display
	banners  int
	loadings int
	hidden   bool
	showErr  error
}

func (f *fakeScreen) Banner()     { f.banners++ }
func (f *fakeScreen) HideCursor() { f.hidden = true }
func (f *fakeScreen) ShowCursor() { f.hidden = false }

func (f *fakeScreen) Loading(ctx context.Context) func() {
	f.loadings++
	return func() {}
}

func (f *fakeScreen) Show(ctx context.Context, d quotes.Display) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.showErr != nil {
		return f.showErr
	}
	f.shown = append(f.shown, d)
	return nil
}

type fakeRatings map[string]int64

func (f fakeRatings) RatingsByQuote(ctx context.Context) (map[string]int64, error) {
	return f, nil
}

type fakeAsker struct {
	asked []quotes.Display
	err   error
}

func (f *fakeAsker) Ask(ctx context.Context, d quotes.Display) error {
	f.asked = append(f.asked, d)
	return f.err
}

type recordingNotifier struct {
	sent []notify.Notification
}

func (r *recordingNotifier) Send(ctx context.Context, n notify.Notification) error {
	r.sent = append(r.sent, n)
	return nil
}

func quoteOf(text string) quotes.Display {
	return quotes.Record{Text: text, Speaker: "Orion", Source: "Nebula", Date: "2400"}.Display()
}

func noSleep(waits *[]time.Duration) func(context.Context, time.Duration) error {
	return func(ctx context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return ctx.Err()
	}
}

func TestScheduler_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("shows each quote then pauses", func(t *testing.T) {
		gen := &fakeGenerator{batches: [][]quotes.Display{{quoteOf("a"), quoteOf("b")}}}
		screen := &fakeScreen{}
		var waits []time.Duration

		s := New(Config{
			Generator:  gen,
			Screen:     screen,
			Interval:   3 * time.Second,
			MaxBatches: 2,
			Sleep:      noSleep(&waits),
		})

		require.NoError(t, s.Run(ctx))
		assert.Equal(t, 2, gen.calls)
		assert.Equal(t, 2, screen.loadings)
		assert.Equal(t, 1, screen.banners)
		assert.False(t, screen.hidden)
		assert.Equal(t, []quotes.Display{quoteOf("a"), quoteOf("b"), quoteOf("a"), quoteOf("b")}, screen.shown)
		assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second, 3 * time.Second, 3 * time.Second}, waits)
		assert.True(t, s.Health().GetStatus("generator").Healthy)
	})

	t.Run("minimum rating filter", func(t *testing.T) {
		gen := &fakeGenerator{batches: [][]quotes.Display{{quoteOf("a"), quoteOf("b"), quoteOf("c")}}}
		screen := &fakeScreen{}
		var waits []time.Duration

		s := New(Config{
			Generator:  gen,
			Screen:     screen,
			MinRating:  4,
			Ratings:    fakeRatings{quoteOf("a").String(): 5, quoteOf("b").String(): 2},
			MaxBatches: 1,
			Sleep:      noSleep(&waits),
		})

		require.NoError(t, s.Run(ctx))
		assert.Equal(t, []quotes.Display{quoteOf("a")}, screen.shown)
	})

	t.Run("filter falls back to all quotes", func(t *testing.T) {
		gen := &fakeGenerator{batches: [][]quotes.Display{{quoteOf("a"), quoteOf("b")}}}
		screen := &fakeScreen{}
		var waits []time.Duration

		s := New(Config{
			Generator:  gen,
			Screen:     screen,
			MinRating:  3,
			Ratings:    fakeRatings{},
			MaxBatches: 1,
			Sleep:      noSleep(&waits),
		})

		require.NoError(t, s.Run(ctx))
		assert.Len(t, screen.shown, 2)
	})

	t.Run("interactive asks instead of pausing", func(t *testing.T) {
		gen := &fakeGenerator{batches: [][]quotes.Display{{quoteOf("a"), quoteOf("b")}}}
		screen := &fakeScreen{}
		asker := &fakeAsker{}
		var waits []time.Duration

		s := New(Config{
			Generator:  gen,
			Screen:     screen,
			Asker:      asker,
			Interval:   time.Second,
			MaxBatches: 1,
			Sleep:      noSleep(&waits),
		})

		require.NoError(t, s.Run(ctx))
		assert.Equal(t, screen.shown, asker.asked)
		assert.Empty(t, waits)
	})

	t.Run("feedback errors are not fatal", func(t *testing.T) {
		gen := &fakeGenerator{batches: [][]quotes.Display{{quoteOf("a"), quoteOf("b")}}}
		screen := &fakeScreen{}
		asker := &fakeAsker{err: errors.New("database is locked")}

		s := New(Config{Generator: gen, Screen: screen, Asker: asker, MaxBatches: 1})

		require.NoError(t, s.Run(ctx))
		assert.Len(t, screen.shown, 2)
		assert.False(t, s.Health().GetStatus("store").Healthy)
	})

	t.Run("placeholder marks generator unhealthy and notifies", func(t *testing.T) {
		ph := quotes.Placeholder(llm.KindAuth, locale.English, time.Now()).Display()
		gen := &fakeGenerator{batches: [][]quotes.Display{{ph}}}
		screen := &fakeScreen{}
		notifier := &recordingNotifier{}
		var waits []time.Duration

		s := New(Config{
			Generator:  gen,
			Screen:     screen,
			Notifier:   notifier,
			MaxBatches: 1,
			Sleep:      noSleep(&waits),
		})

		require.NoError(t, s.Run(ctx))
		assert.Equal(t, []quotes.Display{ph}, screen.shown)
		status := s.Health().GetStatus("generator")
		assert.False(t, status.Healthy)
		assert.Equal(t, "Please check your API key", status.Message)
		require.Len(t, notifier.sent, 1)
		assert.Equal(t, "Please check your API key", notifier.sent[0].Body)
	})

	t.Run("success notifies with count", func(t *testing.T) {
		gen := &fakeGenerator{batches: [][]quotes.Display{{quoteOf("a"), quoteOf("b")}}}
		notifier := &recordingNotifier{}
		var waits []time.Duration

		s := New(Config{
			Generator:  gen,
			Screen:     &fakeScreen{},
			Notifier:   notifier,
			MaxBatches: 1,
			Sleep:      noSleep(&waits),
		})

		require.NoError(t, s.Run(ctx))
		require.Len(t, notifier.sent, 1)
		assert.Equal(t, "Legendaly", notifier.sent[0].Subject)
		assert.Equal(t, "2 new quotes ready", notifier.sent[0].Body)
	})

	t.Run("empty batch waits and retries", func(t *testing.T) {
		gen := &fakeGenerator{batches: [][]quotes.Display{{}, {quoteOf("a")}}}
		screen := &fakeScreen{}
		var waits []time.Duration

		s := New(Config{
			Generator:  gen,
			Screen:     screen,
			Interval:   time.Second,
			MaxBatches: 2,
			Sleep:      noSleep(&waits),
		})

		require.NoError(t, s.Run(ctx))
		assert.Equal(t, []quotes.Display{quoteOf("a")}, screen.shown)
		assert.Len(t, waits, 2)
	})

	t.Run("cancelled context stops the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		gen := &fakeGenerator{batches: [][]quotes.Display{{quoteOf("a")}}}
		screen := &fakeScreen{}

		s := New(Config{
			Generator: gen,
			Screen:    screen,
			Interval:  time.Second,
			Sleep: func(context.Context, time.Duration) error {
				cancel()
				return context.Canceled
			},
		})

		err := s.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, gen.calls)
		assert.False(t, screen.hidden)
	})

	t.Run("show error stops the loop", func(t *testing.T) {
		gen := &fakeGenerator{batches: [][]quotes.Display{{quoteOf("a")}}}
		screen := &fakeScreen{showErr: context.DeadlineExceeded}

		err := New(Config{Generator: gen, Screen: screen}).Run(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

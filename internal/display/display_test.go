package display

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/abdulachik/legendaly/internal/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sleepRecorder struct {
	mu     sync.Mutex
	waits  []time.Duration
	failAt int
}

func (s *sleepRecorder) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waits = append(s.waits, d)
	if s.failAt > 0 && len(s.waits) >= s.failAt {
		return context.Canceled
	}
	return nil
}

func newTestRenderer(buf *bytes.Buffer, rec *sleepRecorder) *Renderer {
	return New(buf, Config{
		Tone:        "epic",
		Language:    "en",
		Width:       60,
		TypeSpeed:   10 * time.Millisecond,
		DisplayTime: 2 * time.Second,
		FadeSteps:   4,
		FadeDelay:   100 * time.Millisecond,
	}, WithSleep(rec.Sleep), WithSeed(1))
}

var sample = quotes.Record{Text: "Seek the truth", Speaker: "John Doe", Source: "Epic", Date: "3021"}.Display()

func TestRenderer_Show(t *testing.T) {
	t.Run("types, holds and fades", func(t *testing.T) {
		var buf bytes.Buffer
		rec := &sleepRecorder{}
		r := newTestRenderer(&buf, rec)

		require.NoError(t, r.Show(context.Background(), sample))

		out := buf.String()
		assert.Contains(t, out, "S")
		assert.Contains(t, out, "『")
		assert.Contains(t, out, clearLine)

		typed := len([]rune("--- Seek the truth")) + len([]rune("John Doe『Epic』 3021"))
		require.Len(t, rec.waits, typed+1+4)
		assert.Equal(t, 10*time.Millisecond, rec.waits[0])
		assert.Equal(t, 2*time.Second, rec.waits[typed])
		assert.Equal(t, 100*time.Millisecond, rec.waits[typed+1])
	})

	t.Run("stops when the wait is interrupted", func(t *testing.T) {
		var buf bytes.Buffer
		rec := &sleepRecorder{failAt: 3}
		r := newTestRenderer(&buf, rec)

		err := r.Show(context.Background(), sample)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, rec.waits, 3)
	})
}

func TestRenderer_Layout(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, &sleepRecorder{})

	lines := r.layout(sample)

	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat(" ", 21)+"--- Seek the truth", lines[0])
	// Attribution ends where the quote ends, or is centred when wider.
	assert.True(t, strings.HasSuffix(lines[1], "John Doe『Epic』 3021"))
}

func TestRenderer_LayoutWideText(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, &sleepRecorder{})

	lines := r.layout(quotes.Display{"  --- 星は沈黙", "     天城『蒼穹』 2345年"})

	// "--- 星は沈黙" is 4 + 8 columns wide.
	assert.Equal(t, strings.Repeat(" ", 24)+"--- 星は沈黙", lines[0])
}

func TestFadeRunes(t *testing.T) {
	line := []rune("ab星")
	order := []int{2, 0, 1}

	assert.Equal(t, "ab星", fadeRunes(line, order, 0, 3))
	assert.Equal(t, "ab　", fadeRunes(line, order, 1, 3))
	assert.Equal(t, " b　", fadeRunes(line, order, 2, 3))
	assert.Equal(t, "  　", fadeRunes(line, order, 3, 3))
	assert.Equal(t, "ab星", string(line), "input is not modified")
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, themes["zen"], ThemeFor("zen"))
	assert.Equal(t, themes["epic"], ThemeFor("Epic+zen"))
	assert.Equal(t, defaultTheme, ThemeFor("gothic"))
}

func TestRenderer_Banner(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRenderer(&buf, &sleepRecorder{})

	r.Banner()

	assert.Contains(t, buf.String(), "L E G E N D A L Y")
	assert.Contains(t, buf.String(), "tone: epic  lang: en")
}

func TestRenderer_Loading(t *testing.T) {
	var buf syncBuffer
	r := New(&buf, Config{Tone: "zen", FrameDelay: time.Millisecond})

	stop := r.Loading(context.Background())
	time.Sleep(10 * time.Millisecond)
	stop()

	assert.Contains(t, buf.String(), "Contemplating wisdom...")
}

func TestSleep(t *testing.T) {
	assert.NoError(t, Sleep(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	name string
	args []string
}

func recordingRunner(calls *[]call, err error) Runner {
	return func(ctx context.Context, name string, args ...string) error {
		*calls = append(*calls, call{name: name, args: args})
		return err
	}
}

func TestDesktopNotifier_Send(t *testing.T) {
	ctx := context.Background()

	t.Run("linux uses notify-send", func(t *testing.T) {
		var calls []call
		d := &DesktopNotifier{goos: "linux", run: recordingRunner(&calls, nil)}

		require.NoError(t, d.Send(ctx, Notification{Subject: "Legendaly", Body: `10 "new" quotes`}))

		require.Len(t, calls, 1)
		assert.Equal(t, "notify-send", calls[0].name)
		assert.Equal(t, []string{"Legendaly", `10 "new" quotes`}, calls[0].args)
	})

	t.Run("macOS uses osascript with escaped strings", func(t *testing.T) {
		var calls []call
		d := &DesktopNotifier{goos: "darwin", run: recordingRunner(&calls, nil)}

		require.NoError(t, d.Send(ctx, Notification{Body: `say "hi"`}))

		require.Len(t, calls, 1)
		assert.Equal(t, "osascript", calls[0].name)
		assert.Equal(t, []string{"-e", `display notification "say \"hi\"" with title "Legendaly"`}, calls[0].args)
	})

	t.Run("wraps command errors", func(t *testing.T) {
		var calls []call
		d := &DesktopNotifier{goos: "linux", run: recordingRunner(&calls, errors.New("not found"))}

		err := d.Send(ctx, Notification{Body: "x"})
		assert.ErrorContains(t, err, "run notify-send")
	})
}

func TestLogNotifier_Send(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, n.Send(context.Background(), Notification{Subject: "Batch ready", Body: "10 quotes"}))

	assert.Contains(t, buf.String(), `subject="Batch ready"`)
	assert.Contains(t, buf.String(), `body="10 quotes"`)
}

type failingNotifier struct{ err error }

func (f failingNotifier) Send(ctx context.Context, n Notification) error { return f.err }

func TestMulti_Send(t *testing.T) {
	var calls []call
	first := errors.New("first")
	m := Multi{
		failingNotifier{err: first},
		&DesktopNotifier{goos: "linux", run: recordingRunner(&calls, nil)},
		failingNotifier{err: errors.New("second")},
	}

	err := m.Send(context.Background(), Notification{Body: "x"})

	assert.ErrorIs(t, err, first)
	assert.Len(t, calls, 1, "later notifiers still run")
}

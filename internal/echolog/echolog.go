// Package echolog appends accepted quotes to the rolling log and to the
// session's echoes file.
package echolog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/abdulachik/legendaly/internal/locale"
	"github.com/abdulachik/legendaly/internal/quotes"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeMB  = 10
	defaultMaxAgeDays = 30
)

// Config holds the log destinations.
type Config struct {
	RollingPath string
	SessionPath string
	MaxSizeMB   int
	MaxAgeDays  int
}

// Logger writes one line per quote to two files. The appends are
// independent; a failure in one does not undo the other.
type Logger struct {
	mu      sync.Mutex
	rolling *lumberjack.Logger
	session string
}

// New creates a Logger. Files are opened on each Append and closed again.
func New(cfg Config) *Logger {
	if cfg.MaxSizeMB == 0 {
		cfg.MaxSizeMB = defaultMaxSizeMB
	}
	if cfg.MaxAgeDays == 0 {
		cfg.MaxAgeDays = defaultMaxAgeDays
	}

	return &Logger{
		rolling: &lumberjack.Logger{
			Filename: cfg.RollingPath,
			MaxSize:  cfg.MaxSizeMB,
			MaxAge:   cfg.MaxAgeDays,
		},
		session: cfg.SessionPath,
	}
}

// SessionPath returns the session echoes file.
func (l *Logger) SessionPath() string {
	return l.session
}

// Append writes records to both logs.
func (l *Logger) Append(records []quotes.Record, meta quotes.BatchMeta) error {
	if len(records) == 0 {
		return nil
	}

	var sb strings.Builder
	for _, rec := range records {
		sb.WriteString(FormatLine(rec, meta.Tone, meta.Language, meta.GeneratedAt))
	}
	lines := []byte(sb.String())

	l.mu.Lock()
	defer l.mu.Unlock()

	var errs []error
	if err := l.appendRolling(lines); err != nil {
		errs = append(errs, fmt.Errorf("append rolling log: %w", err))
	}
	if l.session != "" {
		if err := appendFile(l.session, lines); err != nil {
			errs = append(errs, fmt.Errorf("append session echoes: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (l *Logger) appendRolling(lines []byte) error {
	if l.rolling.Filename == "" {
		return nil
	}
	if _, err := l.rolling.Write(lines); err != nil {
		l.rolling.Close()
		return err
	}
	return l.rolling.Close()
}

func appendFile(path string, lines []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(lines); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatLine renders one log line, newline included.
func FormatLine(rec quotes.Record, tone string, lang locale.Language, ts time.Time) string {
	return "[" + rec.Date + "] " + rec.Speaker + "『" + rec.Source + "』：「" + rec.Text + "」 (tone: " +
		tone + ", lang: " + string(lang) + ", time: " + ts.UTC().Format("2006-01-02T15:04:05.000Z") + ")\n"
}

// CleanOldEchoes removes echoes files last modified more than maxAge ago
// and returns how many were removed.
func CleanOldEchoes(dir string, maxAge time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("read echoes dir: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != echoesExt {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}

// Sessions lists echoes files in dir, oldest first.
func Sessions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read echoes dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == echoesExt {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

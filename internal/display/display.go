// Package display animates quotes in the terminal.
package display

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/abdulachik/legendaly/internal/quotes"
	"github.com/charmbracelet/lipgloss"
)

const (
	clearLine  = "\r\033[K"
	hideCursor = "\033[?25l"
	showCursor = "\033[?25h"
)

// Config holds animation timings.
type Config struct {
	Tone        string
	Language    string
	Width       int
	TypeSpeed   time.Duration
	DisplayTime time.Duration
	FadeSteps   int
	FadeDelay   time.Duration
	FrameDelay  time.Duration
}

// Renderer writes animated quotes to out.
type Renderer struct {
	mu    sync.Mutex
	out   io.Writer
	cfg   Config
	theme Theme
	text  lipgloss.Style
	meta  lipgloss.Style
	lg    *lipgloss.Renderer
	rng   *rand.Rand
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSleep replaces the wait between animation frames.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(r *Renderer) { r.sleep = fn }
}

// WithSeed makes fades reproducible.
func WithSeed(seed uint64) Option {
	return func(r *Renderer) { r.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// New creates a Renderer writing to out.
func New(out io.Writer, cfg Config, opts ...Option) *Renderer {
	if cfg.Width <= 0 {
		cfg.Width = 80
	}
	if cfg.FadeSteps <= 0 {
		cfg.FadeSteps = 8
	}
	if cfg.FrameDelay <= 0 {
		cfg.FrameDelay = 150 * time.Millisecond
	}

	lg := lipgloss.NewRenderer(out)
	theme := ThemeFor(cfg.Tone)
	r := &Renderer{
		out:   out,
		cfg:   cfg,
		theme: theme,
		text:  lg.NewStyle().Foreground(theme.Text),
		meta:  lg.NewStyle().Foreground(theme.Accent),
		lg:    lg,
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		sleep: Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// HideCursor hides the terminal cursor.
func (r *Renderer) HideCursor() {
	r.write(hideCursor)
}

// ShowCursor restores the terminal cursor.
func (r *Renderer) ShowCursor() {
	r.write(showCursor)
}

func (r *Renderer) write(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	io.WriteString(r.out, s)
}

// Banner prints the title box.
func (r *Renderer) Banner() {
	title := r.lg.NewStyle().
		Bold(true).
		Foreground(r.theme.Text).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(r.theme.Accent).
		Padding(0, 4).
		Render("L E G E N D A L Y")

	subtitle := r.meta.Render(fmt.Sprintf("tone: %s  lang: %s", r.cfg.Tone, r.cfg.Language))
	block := lipgloss.JoinVertical(lipgloss.Center, title, subtitle)

	r.write(lipgloss.PlaceHorizontal(r.cfg.Width, lipgloss.Center, block) + "\n\n")
}

// Show types out both lines, holds them, then fades them away.
func (r *Renderer) Show(ctx context.Context, d quotes.Display) error {
	lines := r.layout(d)

	for i, line := range lines {
		style := r.text
		if i > 0 {
			style = r.meta
		}
		if err := r.typeOut(ctx, line, style); err != nil {
			return err
		}
	}

	if err := r.sleep(ctx, r.cfg.DisplayTime); err != nil {
		return err
	}
	return r.fade(ctx, lines)
}

// layout centres the quote and right-aligns the attribution under it.
func (r *Renderer) layout(d quotes.Display) []string {
	text := strings.TrimSpace(d[0])
	attribution := strings.TrimSpace(d[1])

	w1 := lipgloss.Width(text)
	indent1 := max(0, (r.cfg.Width-w1)/2)

	w2 := lipgloss.Width(attribution)
	indent2 := indent1 + w1 - w2
	if indent2 < 0 || indent2+w2 > r.cfg.Width {
		indent2 = max(0, (r.cfg.Width-w2)/2)
	}

	return []string{
		strings.Repeat(" ", indent1) + text,
		strings.Repeat(" ", indent2) + attribution,
	}
}

func (r *Renderer) typeOut(ctx context.Context, line string, style lipgloss.Style) error {
	indent := len(line) - len(strings.TrimLeft(line, " "))
	r.write(line[:indent])

	for _, ch := range line[indent:] {
		r.write(style.Render(string(ch)))
		if err := r.sleep(ctx, r.cfg.TypeSpeed); err != nil {
			r.write("\n")
			return err
		}
	}
	r.write("\n")
	return nil
}

// fade blanks a growing share of characters each step, then clears the lines.
func (r *Renderer) fade(ctx context.Context, lines []string) error {
	steps := r.cfg.FadeSteps
	delay := time.Duration(float64(r.cfg.FadeDelay) * r.theme.Pace)

	runes := make([][]rune, len(lines))
	orders := make([][]int, len(lines))
	for i, line := range lines {
		runes[i] = []rune(line)
		orders[i] = r.rng.Perm(len(runes[i]))
	}

	for step := 1; step <= steps; step++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "\033[%dA", len(lines))
		for i := range lines {
			faded := fadeRunes(runes[i], orders[i], step, steps)
			style := r.text
			if i > 0 {
				style = r.meta
			}
			sb.WriteString(clearLine + style.Render(faded) + "\n")
		}
		r.write(sb.String())

		if err := r.sleep(ctx, delay); err != nil {
			return err
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\033[%dA", len(lines))
	for range lines {
		sb.WriteString(clearLine + "\n")
	}
	fmt.Fprintf(&sb, "\033[%dA", len(lines))
	r.write(sb.String())
	return nil
}

// fadeRunes blanks the first step/steps of order. Wide runes become
// full-width spaces so the layout does not shift.
func fadeRunes(line []rune, order []int, step, steps int) string {
	out := append([]rune(nil), line...)
	n := len(order) * step / steps
	for _, idx := range order[:n] {
		if lipgloss.Width(string(out[idx])) > 1 {
			out[idx] = '　'
		} else {
			out[idx] = ' '
		}
	}
	return string(out)
}

// Loading animates a status line until the returned stop function is called.
func (r *Renderer) Loading(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(r.cfg.FrameDelay)
		defer ticker.Stop()

		for frame := 0; ; frame++ {
			f := r.theme.Frames[frame%len(r.theme.Frames)]
			text := f + " " + r.theme.Loading
			indent := max(0, (r.cfg.Width-utf8.RuneCountInString(text))/2)
			r.write(clearLine + strings.Repeat(" ", indent) + r.meta.Render(text))

			select {
			case <-ctx.Done():
				r.write(clearLine)
				return
			case <-ticker.C:
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}

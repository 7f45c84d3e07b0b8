// Package interactive asks the viewer what to do with each quote.
package interactive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/abdulachik/legendaly/internal/quotes"
)

const prompt = "[Enter] next, [f] favorite, 1-5 rate: "

// Store persists favorites and ratings keyed by the quote's display text.
type Store interface {
	AddFavorite(ctx context.Context, quoteText string) (bool, error)
	AddRating(ctx context.Context, quoteText string, rating int64) error
}

// Prompter reads one answer per quote from in.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	store  Store
	logger *slog.Logger
}

// New creates a Prompter. A nil logger uses slog.Default.
func New(in io.Reader, out io.Writer, store Store, logger *slog.Logger) *Prompter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		store:  store,
		logger: logger,
	}
}

// Ask prompts once and applies the answer to d. Anything other than "f"
// or a rating from 1 to 5 moves on. End of input also moves on.
func (p *Prompter) Ask(ctx context.Context, d quotes.Display) error {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	key := d.String()

	if answer == "f" {
		added, err := p.store.AddFavorite(ctx, key)
		if err != nil {
			return fmt.Errorf("add favorite: %w", err)
		}
		p.logger.Debug("favorite saved", "new", added)
		return nil
	}

	if rating, err := strconv.Atoi(answer); err == nil && rating >= 1 && rating <= 5 {
		if err := p.store.AddRating(ctx, key, int64(rating)); err != nil {
			return fmt.Errorf("add rating: %w", err)
		}
		p.logger.Debug("rating saved", "rating", rating)
	}
	return nil
}

package app

import (
	"context"
	"fmt"

	"github.com/abdulachik/legendaly/internal/db"
	"github.com/abdulachik/legendaly/internal/quotes"
)

// historyArchiver records every accepted quote in the history table,
// one transaction per batch.
type historyArchiver struct {
	store     *db.Store
	sessionID string
}

func (h *historyArchiver) Archive(ctx context.Context, records []quotes.Record, meta quotes.BatchMeta) error {
	return h.store.InTx(ctx, func(q *db.Queries) error {
		for _, rec := range records {
			if _, err := q.InsertHistory(ctx, db.InsertHistoryParams{
				SessionID: h.sessionID,
				Text:      rec.Text,
				Speaker:   rec.Speaker,
				Source:    rec.Source,
				QuoteDate: rec.Date,
				Tone:      meta.Tone,
				Language:  string(meta.Language),
				CreatedAt: meta.GeneratedAt,
			}); err != nil {
				return fmt.Errorf("insert history: %w", err)
			}
		}
		return nil
	})
}

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DBTX is satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// New returns Queries bound to db.
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries holds the application's SQL statements.
type Queries struct {
	db DBTX
}

// WithTx returns Queries running inside tx.
func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

const addFavorite = `INSERT INTO favorites (quote_text) VALUES (?) ON CONFLICT(quote_text) DO NOTHING`

// AddFavorite stores text and reports whether it was new.
func (q *Queries) AddFavorite(ctx context.Context, quoteText string) (bool, error) {
	res, err := q.db.ExecContext(ctx, addFavorite, quoteText)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

const listFavorites = `SELECT id, quote_text, created_at FROM favorites ORDER BY id`

func (q *Queries) ListFavorites(ctx context.Context) ([]Favorite, error) {
	rows, err := q.db.QueryContext(ctx, listFavorites)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Favorite
	for rows.Next() {
		var i Favorite
		if err := rows.Scan(&i.ID, &i.QuoteText, &i.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countFavorites = `SELECT COUNT(*) FROM favorites`

func (q *Queries) CountFavorites(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countFavorites).Scan(&count)
	return count, err
}

const addRating = `INSERT INTO ratings (quote_text, rating) VALUES (?, ?)`

// AddRating records a 1-5 rating for text.
func (q *Queries) AddRating(ctx context.Context, quoteText string, rating int64) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating %d out of range 1-5", rating)
	}
	_, err := q.db.ExecContext(ctx, addRating, quoteText, rating)
	return err
}

const listRatings = `SELECT quote_text, rating FROM ratings ORDER BY id`

// RatingsByQuote returns the most recent rating of every rated quote.
func (q *Queries) RatingsByQuote(ctx context.Context) (map[string]int64, error) {
	rows, err := q.db.QueryContext(ctx, listRatings)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := make(map[string]int64)
	for rows.Next() {
		var text string
		var rating int64
		if err := rows.Scan(&text, &rating); err != nil {
			return nil, err
		}
		ratings[text] = rating
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}

const ratingSummary = `SELECT COUNT(*), COALESCE(AVG(rating), 0) FROM ratings`

// RatingSummary returns the number of ratings and their mean.
func (q *Queries) RatingSummary(ctx context.Context) (int64, float64, error) {
	var count int64
	var avg float64
	err := q.db.QueryRowContext(ctx, ratingSummary).Scan(&count, &avg)
	return count, avg, err
}

const insertHistory = `INSERT INTO history (session_id, text, speaker, source, quote_date, tone, language, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

type InsertHistoryParams struct {
	SessionID string
	Text      string
	Speaker   string
	Source    string
	QuoteDate string
	Tone      string
	Language  string
	CreatedAt time.Time
}

func (q *Queries) InsertHistory(ctx context.Context, arg InsertHistoryParams) (int64, error) {
	res, err := q.db.ExecContext(ctx, insertHistory,
		arg.SessionID,
		arg.Text,
		arg.Speaker,
		arg.Source,
		arg.QuoteDate,
		arg.Tone,
		arg.Language,
		arg.CreatedAt,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

const countHistory = `SELECT COUNT(*) FROM history`

func (q *Queries) CountHistory(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countHistory).Scan(&count)
	return count, err
}

const countSessions = `SELECT COUNT(DISTINCT session_id) FROM history`

func (q *Queries) CountSessions(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countSessions).Scan(&count)
	return count, err
}

const countHistoryByLanguage = `SELECT language, COUNT(*) FROM history GROUP BY language ORDER BY COUNT(*) DESC, language`

func (q *Queries) CountHistoryByLanguage(ctx context.Context) ([]LanguageCount, error) {
	rows, err := q.db.QueryContext(ctx, countHistoryByLanguage)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LanguageCount
	for rows.Next() {
		var i LanguageCount
		if err := rows.Scan(&i.Language, &i.Count); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listRecentHistory = `SELECT id, session_id, text, speaker, source, quote_date, tone, language, created_at
FROM history ORDER BY id DESC LIMIT ?`

func (q *Queries) ListRecentHistory(ctx context.Context, limit int64) ([]HistoryEntry, error) {
	rows, err := q.db.QueryContext(ctx, listRecentHistory, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []HistoryEntry
	for rows.Next() {
		var i HistoryEntry
		if err := rows.Scan(
			&i.ID,
			&i.SessionID,
			&i.Text,
			&i.Speaker,
			&i.Source,
			&i.QuoteDate,
			&i.Tone,
			&i.Language,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

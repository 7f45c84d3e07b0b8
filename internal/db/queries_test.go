package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	store := NewTestStore(t)

	added, err := store.AddFavorite(ctx, "  --- first\n     A『B』 1")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.AddFavorite(ctx, "  --- first\n     A『B』 1")
	require.NoError(t, err)
	assert.False(t, added, "duplicates are ignored")

	_, err = store.AddFavorite(ctx, "  --- second\n     C『D』 2")
	require.NoError(t, err)

	favs, err := store.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "  --- first\n     A『B』 1", favs[0].QuoteText)
	assert.False(t, favs[0].CreatedAt.IsZero())

	count, err := store.CountFavorites(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestRatings(t *testing.T) {
	ctx := context.Background()
	store := NewTestStore(t)

	require.NoError(t, store.AddRating(ctx, "a", 2))
	require.NoError(t, store.AddRating(ctx, "b", 5))
	require.NoError(t, store.AddRating(ctx, "a", 4))

	assert.Error(t, store.AddRating(ctx, "a", 0))
	assert.Error(t, store.AddRating(ctx, "a", 6))

	ratings, err := store.RatingsByQuote(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"a": 4, "b": 5}, ratings)

	count, avg, err := store.RatingSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.InDelta(t, 11.0/3.0, avg, 0.001)
}

func TestRatingSummary_Empty(t *testing.T) {
	store := NewTestStore(t)

	count, avg, err := store.RatingSummary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, avg)
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	store := NewTestStore(t)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	insert := func(session, text, lang string) {
		t.Helper()
		id, err := store.InsertHistory(ctx, InsertHistoryParams{
			SessionID: session,
			Text:      text,
			Speaker:   "Speaker",
			Source:    "Source",
			QuoteDate: "3021",
			Tone:      "epic",
			Language:  lang,
			CreatedAt: now,
		})
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	insert("s1", "one", "ja")
	insert("s1", "two", "ja")
	insert("s2", "three", "en")

	total, err := store.CountHistory(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	sessions, err := store.CountSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), sessions)

	byLang, err := store.CountHistoryByLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, []LanguageCount{{Language: "ja", Count: 2}, {Language: "en", Count: 1}}, byLang)

	recent, err := store.ListRecentHistory(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "three", recent[0].Text)
	assert.Equal(t, "two", recent[1].Text)
	assert.True(t, now.Equal(recent[0].CreatedAt))
}

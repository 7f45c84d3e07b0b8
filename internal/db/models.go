package db

import "time"

type Favorite struct {
	ID        int64
	QuoteText string
	CreatedAt time.Time
}

type Rating struct {
	ID        int64
	QuoteText string
	Rating    int64
	CreatedAt time.Time
}

type HistoryEntry struct {
	ID        int64
	SessionID string
	Text      string
	Speaker   string
	Source    string
	QuoteDate string
	Tone      string
	Language  string
	CreatedAt time.Time
}

type LanguageCount struct {
	Language string
	Count    int64
}

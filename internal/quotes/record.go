// Package quotes requests, parses, caches and formats batches of fictional
// quotes.
package quotes

import (
	"strings"
	"time"

	"github.com/abdulachik/legendaly/internal/llm"
	"github.com/abdulachik/legendaly/internal/locale"
)

const (
	// Unknown fills speaker and source fields the model left out.
	Unknown = "Unknown"

	// DateLayout is used for dates filled in from the clock.
	DateLayout = "2006-01-02"
)

// Record is one parsed quote.
type Record struct {
	Text    string `json:"text"`
	Speaker string `json:"speaker"`
	Source  string `json:"source"`
	Date    string `json:"date"`
}

// Display is the two terminal lines of a quote: the text and its
// attribution.
type Display [2]string

// Display formats the record for the terminal.
func (r Record) Display() Display {
	return Display{
		"  --- " + r.Text,
		"     " + r.Speaker + "『" + r.Source + "』 " + r.Date,
	}
}

// String joins both lines.
func (d Display) String() string {
	return d[0] + "\n" + d[1]
}

// Text recovers the quote text from the first line.
func (d Display) Text() string {
	return strings.TrimPrefix(strings.TrimSpace(d[0]), "--- ")
}

// IsPlaceholder reports whether d is an error placeholder.
func (d Display) IsPlaceholder() bool {
	return strings.HasPrefix(strings.TrimSpace(d[1]), placeholderSpeaker+"『"+placeholderSource+"』")
}

// Displays formats records in order.
func Displays(records []Record) []Display {
	out := make([]Display, 0, len(records))
	for _, r := range records {
		out = append(out, r.Display())
	}
	return out
}

const (
	placeholderSpeaker = "System"
	placeholderSource  = "Legendaly"
)

var placeholderText = map[locale.Language]map[llm.Kind]string{
	locale.Japanese: {
		llm.KindNetwork:   "ネットワーク接続を確認してください",
		llm.KindAuth:      "APIキーを確認してください",
		llm.KindRateLimit: "APIレート制限に達しました。しばらくお待ちください",
		llm.KindUnknown:   "予期せぬエラーが発生しました",
	},
	locale.English: {
		llm.KindNetwork:   "Please check your network connection",
		llm.KindAuth:      "Please check your API key",
		llm.KindRateLimit: "API rate limit reached. Please wait a moment",
		llm.KindUnknown:   "An unexpected error occurred",
	},
}

// Placeholder returns the record shown in place of a batch when the model
// call failed. Japanese gets Japanese text; every other language English.
func Placeholder(kind llm.Kind, lang locale.Language, now time.Time) Record {
	texts, ok := placeholderText[lang]
	if !ok {
		texts = placeholderText[locale.English]
	}
	text, ok := texts[kind]
	if !ok {
		text = texts[llm.KindUnknown]
	}

	return Record{
		Text:    text,
		Speaker: placeholderSpeaker,
		Source:  placeholderSource,
		Date:    now.Format(DateLayout),
	}
}

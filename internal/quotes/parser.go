package quotes

import (
	"regexp"
	"strings"
	"time"

	"github.com/abdulachik/legendaly/internal/locale"
)

var delimiter = regexp.MustCompile(`\s*---\s*`)

// BatchResult is the outcome of parsing one model response.
type BatchResult struct {
	Records []Record
	// Dropped counts non-empty blocks that yielded no record.
	Dropped int
}

// ParseBatch splits raw on the "---" delimiter and extracts one record per
// block. Blocks are matched with the patterns of lang first, then with
// every locale in locale.Order. Unparseable blocks are dropped.
func ParseBatch(raw string, lang locale.Language, table locale.Table, now time.Time) BatchResult {
	primary := table.Lookup(lang)
	today := now.Format(DateLayout)

	var result BatchResult
	for _, block := range delimiter.Split(raw, -1) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		rec, ok := parseBlock(block, primary, table, today)
		if !ok {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	return result
}

func parseBlock(block string, primary *locale.Locale, table locale.Table, today string) (Record, bool) {
	patterns, m := matchQuote(block, primary, table)
	if m == nil {
		return Record{}, false
	}

	text := strings.TrimSpace(m[1])
	if text == "" {
		return Record{}, false
	}

	return Record{
		Text:    text,
		Speaker: capture(patterns.Speaker, block, Unknown),
		Source:  capture(patterns.Source, block, Unknown),
		Date:    capture(patterns.Date, block, today),
	}, true
}

// matchQuote returns the first pattern set whose quote pattern matches.
func matchQuote(block string, primary *locale.Locale, table locale.Table) (locale.PatternSet, []string) {
	if primary != nil {
		if m := primary.Patterns.Quote.FindStringSubmatch(block); m != nil {
			return primary.Patterns, m
		}
	}

	for _, lang := range locale.Order {
		loc, ok := table[lang]
		if !ok {
			continue
		}
		if m := loc.Patterns.Quote.FindStringSubmatch(block); m != nil {
			return loc.Patterns, m
		}
	}

	return locale.PatternSet{}, nil
}

func capture(re *regexp.Regexp, block, fallback string) string {
	if m := re.FindStringSubmatch(block); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}
	return fallback
}

// Package locale holds the per-language prompts and field patterns used to
// request and parse quote batches.
package locale

import (
	"log/slog"
	"regexp"
	"strings"
	"text/template"
)

// Language is a supported output language code.
type Language string

const (
	Japanese Language = "ja"
	English  Language = "en"
	Chinese  Language = "zh"
	Korean   Language = "ko"
	French   Language = "fr"
	Spanish  Language = "es"
	German   Language = "de"
)

// Default is used whenever a language code is not recognised.
const Default = Japanese

// Order is the fallback order used when a block does not match the
// patterns of its requested language.
var Order = []Language{Japanese, English, Chinese, Korean, French, Spanish, German}

// Parse normalises a language code. Unknown codes map to Default.
func Parse(code string) Language {
	lang := Language(strings.ToLower(strings.TrimSpace(code)))
	if lang.Valid() {
		return lang
	}
	return Default
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	for _, known := range Order {
		if l == known {
			return true
		}
	}
	return false
}

func (l Language) String() string {
	return string(l)
}

// PatternSet extracts the four labeled fields of one quote block. Each
// pattern captures the value up to the end of its line.
type PatternSet struct {
	Quote   *regexp.Regexp
	Speaker *regexp.Regexp
	Source  *regexp.Regexp
	Date    *regexp.Regexp
}

// Locale bundles the prompts and patterns of one language.
type Locale struct {
	Language Language
	System   string
	Patterns PatternSet

	batch *template.Template
}

type batchData struct {
	Tone     string
	Count    int
	Category string
}

// BatchPrompt renders the user prompt asking for count quotes in the given
// tone. An empty category leaves the topic to the model.
func (l *Locale) BatchPrompt(tone string, count int, category string) string {
	var sb strings.Builder
	if err := l.batch.Execute(&sb, batchData{Tone: tone, Count: count, Category: category}); err != nil {
		slog.Error("render batch prompt", "language", l.Language, "error", err)
		return ""
	}
	return sb.String()
}

// Prompter binds a tone and returns a prompt builder for the generator.
func (l *Locale) Prompter(tone string) func(count int, category string) string {
	return func(count int, category string) string {
		return l.BatchPrompt(tone, count, category)
	}
}

// Table maps languages to their locale.
type Table map[Language]*Locale

// Lookup returns the locale for lang, falling back to Default.
func (t Table) Lookup(lang Language) *Locale {
	if loc, ok := t[lang]; ok {
		return loc
	}
	return t[Default]
}

// Builtin is the table of all supported locales, compiled at start-up.
var Builtin = newTable()

func newTable() Table {
	t := make(Table, len(definitions))
	for _, def := range definitions {
		t[def.lang] = def.compile()
	}
	return t
}

type definition struct {
	lang Language
	// foldCase makes the labels case-insensitive (Latin scripts).
	foldCase bool
	quote    string
	speaker  string
	source   string
	date     string
	system   string
	batch    string
}

func (d definition) compile() *Locale {
	return &Locale{
		Language: d.lang,
		System:   d.system,
		Patterns: PatternSet{
			Quote:   labeled(d.quote, d.foldCase),
			Speaker: labeled(d.speaker, d.foldCase),
			Source:  labeled(d.source, d.foldCase),
			Date:    labeled(d.date, d.foldCase),
		},
		batch: template.Must(template.New(string(d.lang)).Parse(d.batch)),
	}
}

// labeled compiles "<label> : value" with either an ASCII or a full-width
// colon. label is itself a regular expression fragment. The value never
// spans lines, so an empty label captures "".
func labeled(label string, foldCase bool) *regexp.Regexp {
	flags := "(?m)"
	if foldCase {
		flags = "(?mi)"
	}
	return regexp.MustCompile(flags + label + `[ \t]*[:：][ \t]*(.*?)(?:\n|$)`)
}

package quotes

import (
	"fmt"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/abdulachik/legendaly/internal/locale"
)

const (
	DefaultCacheSize = 300
	DefaultCacheTTL  = 5 * time.Minute
)

// Fingerprint identifies a batch request: "<lang>-<tone>-<count>-<extra>".
type Fingerprint string

// NewFingerprint builds the cache key of a request. extra is the rune
// length of customPrompt+category, or empty when both are empty, so two
// different prompts of equal length share a key.
func NewFingerprint(lang locale.Language, tone string, count int, customPrompt, category string) Fingerprint {
	extra := ""
	if customPrompt != "" || category != "" {
		extra = strconv.Itoa(utf8.RuneCountInString(customPrompt + category))
	}
	return Fingerprint(fmt.Sprintf("%s-%s-%d-%s", lang, tone, count, extra))
}

// CacheEntry is a cached batch.
type CacheEntry struct {
	Records   []Record
	CreatedAt time.Time
}

// Cache is a bounded, time-windowed memo of parsed batches. Eviction is
// FIFO by first insertion.
type Cache struct {
	mu      sync.Mutex
	entries map[Fingerprint]CacheEntry
	order   []Fingerprint
	size    int
	ttl     time.Duration
	now     func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

func WithCacheSize(n int) CacheOption {
	return func(c *Cache) { c.size = n }
}

func WithCacheTTL(d time.Duration) CacheOption {
	return func(c *Cache) { c.ttl = d }
}

// WithClock sets the time source used for entry ages.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// NewCache creates an empty cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[Fingerprint]CacheEntry),
		size:    DefaultCacheSize,
		ttl:     DefaultCacheTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.size <= 0 {
		c.size = DefaultCacheSize
	}
	return c
}

// Get returns the entry for fp unless it is missing or older than the TTL.
func (c *Cache) Get(fp Fingerprint) (CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[fp]
	if !ok {
		return CacheEntry{}, false
	}
	if c.now().Sub(entry.CreatedAt) > c.ttl {
		return CacheEntry{}, false
	}

	entry.Records = append([]Record(nil), entry.Records...)
	return entry, true
}

// Put stores records under fp. A new key evicts the oldest-inserted key
// once the cache is full; overwriting keeps the key's original slot.
func (c *Cache) Put(fp Fingerprint, records []Record) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := CacheEntry{
		Records:   append([]Record(nil), records...),
		CreatedAt: c.now(),
	}

	if _, exists := c.entries[fp]; exists {
		c.entries[fp] = entry
		return
	}

	for len(c.order) >= c.size {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.order = append(c.order, fp)
	c.entries[fp] = entry
}

// Len returns the number of stored keys, fresh or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

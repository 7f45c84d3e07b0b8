// Package metrics exposes prometheus counters for the quote pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "legendaly"

var (
	// ModelCalls counts model attempts by outcome: success, retry or failure.
	ModelCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "model_calls_total",
		Help:      "Chat completion attempts by outcome.",
	}, []string{"outcome"})

	// CacheLookups counts quote cache lookups by result: hit or miss.
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Quote cache lookups by result.",
	}, []string{"result"})

	QuotesParsed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_parsed_total",
		Help:      "Quote records accepted from model responses.",
	})

	BlocksDropped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blocks_dropped_total",
		Help:      "Response blocks that matched no locale pattern.",
	})

	// Placeholders counts batches answered with an error placeholder, by error kind.
	Placeholders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "placeholders_total",
		Help:      "Placeholder quotes returned after a failed model call.",
	}, []string{"kind"})

	QuotesServed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_served_total",
		Help:      "Quotes returned by the HTTP endpoint.",
	})
)

// Package metrics exposes prometheus counters for quote fetching and placeholder resolution
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qotd",
		Name:      "quote_fetches_total",
		Help:      "Quote fetches by kind and result",
	}, []string{"kind", "result"})

	passes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qotd",
		Name:      "resolve_passes_total",
		Help:      "Placeholder resolution passes by outcome",
	}, []string{"outcome"})

	substitutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "qotd",
		Name:      "placeholder_substitutions_total",
		Help:      "Placeholders replaced with rendered quotes",
	}, []string{"kind"})
)

// pass outcomes
const (
	PassChanged   = "changed"
	PassUnchanged = "unchanged"
	PassSkipped   = "skipped"
)

// FetchDone counts a finished fetch, failed means a fallback quote was returned
func FetchDone(kind string, failed bool) {
	result := "ok"
	if failed {
		result = "fallback"
	}
	fetches.WithLabelValues(kind, result).Inc()
}

// PassDone counts a finished or skipped resolution pass
func PassDone(outcome string) {
	passes.WithLabelValues(outcome).Inc()
}

// Substituted counts a replaced placeholder
func Substituted(kind string) {
	substitutions.WithLabelValues(kind).Inc()
}

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exposed on /metrics. Registered via promauto on the default
// registry at init.
var (
	progressEntriesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "vitalize_progress_entries_written_total",
		Help: "Progress entries created or overwritten.",
	})

	suggestionsServed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vitalize_suggestions_served_total",
		Help: "AI suggestions returned to users, by kind.",
	}, []string{"kind"})

	suggestionsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "vitalize_suggestions_failed_total",
		Help: "AI suggestion requests that failed or returned an invalid schema, by kind.",
	}, []string{"kind"})
)

package reco

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_recommendations_total",
			Help: "Count of sales recommendations served by variant and branch.",
		},
		[]string{"variant", "branch"},
	)

	CacheWriteFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reco_cache_write_failures_total",
			Help: "Recommendation cache writes that failed and were dropped.",
		},
	)

	MalformedPayloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_malformed_payloads_total",
			Help: "Cached per-user payloads that failed to parse and fell back to cold start.",
		},
		[]string{"variant"},
	)
)

func init() {
	prometheus.MustRegister(
		RecommendationsTotal,
		CacheWriteFailuresTotal,
		MalformedPayloadsTotal,
	)
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RecommendDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sales_recommend_latency_seconds",
		Help:    "Latency of the sales recommendation endpoints",
		Buckets: prometheus.DefBuckets,
	}, []string{"variant"})

	RecommendTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_recommend_requests_total",
		Help: "Total recommendation requests served per endpoint and status",
	}, []string{"variant", "status"})
)

func Init() {
	prometheus.MustRegister(RecommendDuration, RecommendTotal)
}

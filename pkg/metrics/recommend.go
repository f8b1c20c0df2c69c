package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendations HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "reco_recommend_latency_seconds",
		Help:    "Latency of the recommendations handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation pages served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "reco_recommend_requests_total",
		Help: "Total number of recommend requests",
	})

	// Page cache effectiveness for the recommendations endpoint
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_page_cache_lookups_total",
			Help: "Recommendation page cache lookups by outcome.",
		},
		[]string{"outcome"},
	)
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		CacheLookups,
	)
}

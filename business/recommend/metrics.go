package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	modeContent  = "content"
	modeFallback = "fallback"
)

var pagesServedTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reco_pages_served_total",
		Help: "Count of recommendation pages served by serving mode.",
	},
	[]string{"mode"},
)

func init() {
	prometheus.MustRegister(pagesServedTotal)
}

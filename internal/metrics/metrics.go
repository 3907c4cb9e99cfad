package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ourweather_upstream_requests_total",
			Help: "Requests sent to the weather API by endpoint and HTTP status",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ourweather_upstream_request_duration_seconds",
			Help:    "Weather API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	// Fetches counts fetch-all sequences; trigger is "user" or "auto".
	Fetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ourweather_fetches_total",
			Help: "Weather fetch sequences by trigger and result",
		},
		[]string{"trigger", "result"},
	)

	UVFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ourweather_uv_fallbacks_total",
			Help: "UV index fetches that failed and fell back to the lowest bucket",
		},
	)
)

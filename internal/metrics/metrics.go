package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordbook_http_requests_total",
		Help: "HTTP requests by method, matched route and status code.",
	}, []string{"method", "route", "status"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "wordbook_http_request_duration_seconds",
		Help:    "Time from request receipt to response, by method and matched route.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "route"})

	StoreErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wordbook_store_errors_total",
		Help: "Storage failures by kind (not_found, unexpected).",
	}, []string{"kind"})
)

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Selection metrics.
var (
	SelectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "josa_selections_total",
		Help: "Josa selections by josa and result",
	}, []string{"josa", "result"})

	ClassificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "josa_classifications_total",
		Help: "Last-character classifications by class",
	}, []string{"class"})

	BatchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "josa_batch_size",
		Help:    "Number of items per batch request",
		Buckets: []float64{1, 5, 10, 50, 100, 500, 1000},
	})
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "josa_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "josa_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "josa_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

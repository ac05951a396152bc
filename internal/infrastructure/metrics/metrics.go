package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptorates_http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cryptorates_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	RefreshRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cryptorates_market_refresh_total",
		Help: "Market snapshot refreshes by source and result.",
	}, []string{"source", "result"})

	SnapshotPairs = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cryptorates_snapshot_pairs",
		Help: "Number of pairs in the last persisted snapshot.",
	})
)

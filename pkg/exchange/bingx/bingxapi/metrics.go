package bingxapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var latencyMetrics = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "bingx_api_latency_ms",
		Help:    "The histogram of latency returned by BingX API",
		Buckets: prometheus.ExponentialBuckets(20, 2, 9), // 20ms to 5120ms
	},
	[]string{"path", "status_code"},
)

var rejectionMetrics = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bingx_api_rejections_total",
		Help: "The number of responses rejected by BingX API",
	},
	[]string{"path", "code"},
)

// statusCode 0 means the request never got a response
func recordLatencyMetrics(req *http.Request, statusCode int, latency time.Duration) {
	latencyMetrics.With(prometheus.Labels{
		"path":        req.URL.Path,
		"status_code": strconv.Itoa(statusCode),
	}).Observe(float64(latency.Milliseconds()))
}

func recordRejectionMetrics(req *http.Request, code ResponseCode) {
	rejectionMetrics.With(prometheus.Labels{
		"path": req.URL.Path,
		"code": code.String(),
	}).Inc()
}

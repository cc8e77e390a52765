package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collateral_http_requests_total",
		Help: "HTTP requests by endpoint and status code.",
	}, []string{"endpoint", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "collateral_http_request_duration_seconds",
		Help:    "HTTP request duration by endpoint.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	fallbacksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collateral_generation_fallbacks_total",
		Help: "Generation steps that fell back to a deterministic default.",
	}, []string{"kind"})

	upstreamErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "collateral_upstream_errors_total",
		Help: "Model calls that failed and surfaced as upstream errors.",
	})
)

// RecordFallback - one generation step fell back to its default
func RecordFallback(kind string) {
	fallbacksTotal.WithLabelValues(kind).Inc()
}

// RecordUpstreamError - one request aborted on an upstream failure
func RecordUpstreamError() {
	upstreamErrorsTotal.Inc()
}

// Handler - Prometheus exposition endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}

// statusRecorder - captures the written status code
type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware - per-endpoint request counter and duration histogram
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, code: http.StatusOK}

		next.ServeHTTP(recorder, r)

		endpoint := r.URL.Path
		requestsTotal.WithLabelValues(endpoint, strconv.Itoa(recorder.code)).Inc()
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	})
}

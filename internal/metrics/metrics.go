package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "admissions"

var Registry = prometheus.NewRegistry()

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"route", "method", "status"})
	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace, Name: "handler_errors_total", Help: "Requests answered with an internal error",
	})
	// Conflicts is labelled by kind (email|submission) and by source
	// (precheck|constraint).
	Conflicts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Name: "conflicts_total", Help: "Rejected duplicate users and submissions",
	}, []string{"kind", "source"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace, Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	Registry.MustRegister(
		HTTPRequests, HTTPDuration, HandlerErrors, Conflicts, DBPing,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }

func ObserveRequest(route, method string, status int, d time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

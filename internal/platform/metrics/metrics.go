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
	// HTTP
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// Negocio
	eventsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medical_events_created_total",
			Help: "Total number of medical events recorded",
		},
		[]string{"type", "severity"},
	)

	notificationFeedSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "notification_feed_size",
			Help:    "Number of events returned per notification feed request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20},
		},
	)

	parentNotifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parent_notifications_total",
			Help: "Total number of parent notification dispatches",
		},
		[]string{"outcome"},
	)

	campaignTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_transitions_total",
			Help: "Total number of campaign status transitions",
		},
		[]string{"from_status", "to_status"},
	)
)

// Handler expone /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instrumenta cada request HTTP.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// normalizePath acota la cardinalidad del label path.
func normalizePath(path string) string {
	if len(path) > 100 {
		return "/..."
	}
	return path
}

func RecordEventCreated(eventType, severity string) {
	eventsCreated.WithLabelValues(eventType, severity).Inc()
}

func RecordNotificationFeed(size int) {
	notificationFeedSize.Observe(float64(size))
}

func RecordParentNotification(dispatched bool) {
	outcome := "failed"
	if dispatched {
		outcome = "dispatched"
	}
	parentNotifications.WithLabelValues(outcome).Inc()
}

func RecordCampaignTransition(from, to string) {
	campaignTransitions.WithLabelValues(from, to).Inc()
}

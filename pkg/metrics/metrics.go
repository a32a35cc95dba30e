// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collectors registered on a dedicated registry
type Metrics struct {
	registry *prometheus.Registry

	bookingOperations *prometheus.CounterVec
	notifications     *prometheus.CounterVec
	storeFailures     *prometheus.CounterVec
	bookings          *prometheus.GaugeVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New creates and registers all collectors
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		bookingOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "booking_operations_total",
			Help:      "Booking engine operations by operation and result.",
		}, []string{"operation", "result"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "notifications_total",
			Help:      "Notification attempts by gateway and result.",
		}, []string{"gateway", "result"}),
		storeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "store_failures_total",
			Help:      "Failed booking store operations.",
		}, []string{"operation"}),
		bookings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: serviceName,
			Name:      "bookings",
			Help:      "Bookings currently held, by status.",
		}, []string{"status"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}

	registry.MustRegister(
		m.bookingOperations,
		m.notifications,
		m.storeFailures,
		m.bookings,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler returns the /metrics handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// IncBookingOperation counts an engine operation
func (m *Metrics) IncBookingOperation(operation, result string) {
	m.bookingOperations.WithLabelValues(operation, result).Inc()
}

// IncNotification counts a notification attempt
func (m *Metrics) IncNotification(gateway, result string) {
	m.notifications.WithLabelValues(gateway, result).Inc()
}

// IncStoreFailure counts a failed load or save
func (m *Metrics) IncStoreFailure(operation string) {
	m.storeFailures.WithLabelValues(operation).Inc()
}

// SetBookings sets the number of held bookings for a status
func (m *Metrics) SetBookings(status string, n int) {
	m.bookings.WithLabelValues(status).Set(float64(n))
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(route, method string, code int, duration time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

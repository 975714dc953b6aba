package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flight_booking"

// Metrics owns its registry so that several instances (tests, e2e apps) can coexist.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPDuration        *prometheus.HistogramVec
	BookingOperations   *prometheus.CounterVec
	SeatsMoved          *prometheus.CounterVec
	ConfirmationRetries prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of handled HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BookingOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_operations_total",
			Help:      "Reconciliation operations by outcome",
		}, []string{"operation", "outcome"}),
		SeatsMoved: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seats_moved_total",
			Help:      "Seats moved between flight inventory and bookings",
		}, []string{"direction"}),
		ConfirmationRetries: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirmation_number_collisions_total",
			Help:      "Generated confirmation numbers that were already taken",
		}),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// RecordOperation counts one engine operation; outcome is "success" or a short error label.
func (m *Metrics) RecordOperation(operation, outcome string) {
	m.BookingOperations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) RecordSeatsTaken(n int) {
	if n > 0 {
		m.SeatsMoved.WithLabelValues("taken").Add(float64(n))
	}
}

func (m *Metrics) RecordSeatsReleased(n int) {
	if n > 0 {
		m.SeatsMoved.WithLabelValues("released").Add(float64(n))
	}
}

func (m *Metrics) RecordConfirmationCollision() {
	m.ConfirmationRetries.Inc()
}

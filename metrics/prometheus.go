package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	BookingsCreated    prometheus.Counter
	BookingConflicts   prometheus.Counter
	AvailabilityChecks *prometheus.CounterVec
	StatusChanges      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg. Pass a fresh registry in tests.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "The total number of confirmed bookings",
		}),
		BookingConflicts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_conflicts_total",
			Help:      "Booking attempts rejected because the room was unavailable",
		}),
		AvailabilityChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "availability_checks_total",
			Help:      "Availability queries by outcome",
		}, []string{"available"}),
		StatusChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_status_changes_total",
			Help:      "Booking status transitions by target status",
		}, []string{"status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

// The helpers below are nil-safe so services can run without metrics.

func (m *Metrics) BookingCreated() {
	if m != nil {
		m.BookingsCreated.Inc()
	}
}

func (m *Metrics) BookingConflict() {
	if m != nil {
		m.BookingConflicts.Inc()
	}
}

func (m *Metrics) AvailabilityChecked(available bool) {
	if m == nil {
		return
	}
	label := "false"
	if available {
		label = "true"
	}
	m.AvailabilityChecks.WithLabelValues(label).Inc()
}

func (m *Metrics) StatusChanged(status string) {
	if m != nil {
		m.StatusChanges.WithLabelValues(status).Inc()
	}
}

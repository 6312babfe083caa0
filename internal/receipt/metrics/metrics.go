package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the receipt module. All methods are
// nil-receiver safe so tests can run without a registry.
type Metrics struct {
	// Accepted receipts
	ReceiptsProcessed prometheus.Counter

	// Validation failures by rule kind
	ValidationFailures *prometheus.CounterVec

	// Distribution of awarded points
	PointsAwarded prometheus.Histogram

	// Submit latency including validation and storage
	ProcessLatency prometheus.Histogram
}

// New creates a new Metrics instance with all receipt module metrics
// registered.
func New() *Metrics {
	return &Metrics{
		ReceiptsProcessed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "tally_receipts_processed_total",
			Help: "Total receipts that passed validation and were stored",
		}),

		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "tally_receipt_validation_failures_total",
			Help: "Total rejected receipts by validation failure kind",
		}, []string{"kind"}),

		PointsAwarded: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tally_receipt_points",
			Help:    "Distribution of points awarded per scored receipt",
			Buckets: []float64{5, 10, 25, 50, 75, 100, 150, 250, 500},
		}),

		ProcessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "tally_receipt_process_duration_seconds",
			Help:    "Duration of receipt processing including validation and storage",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
}

// IncrementReceiptsProcessed records an accepted receipt.
func (m *Metrics) IncrementReceiptsProcessed() {
	if m != nil {
		m.ReceiptsProcessed.Inc()
	}
}

// IncrementValidationFailure records a rejected receipt by failure kind.
func (m *Metrics) IncrementValidationFailure(kind string) {
	if m != nil {
		m.ValidationFailures.WithLabelValues(kind).Inc()
	}
}

// ObservePoints records the points awarded for a scored receipt.
func (m *Metrics) ObservePoints(points int) {
	if m != nil {
		m.PointsAwarded.Observe(float64(points))
	}
}

// ObserveProcessLatency records the duration of a submit operation.
func (m *Metrics) ObserveProcessLatency(d time.Duration) {
	if m != nil {
		m.ProcessLatency.Observe(d.Seconds())
	}
}

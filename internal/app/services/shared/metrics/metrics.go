package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the auth flows and backend traffic.
type Metrics struct {
	// Login attempts by portal and outcome
	Logins *prometheus.CounterVec

	// Session hand-off completions by portal and outcome
	Handoffs *prometheus.CounterVec

	// Uploads accepted by document type
	Uploads *prometheus.CounterVec

	// Latency of calls to the remote record backend by operation
	BackendLatency *prometheus.HistogramVec
}

// New creates a Metrics instance with all collectors registered on the
// default registry.
func New() *Metrics {
	return &Metrics{
		Logins: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ayuraksha_logins_total",
			Help: "Total login attempts by portal and outcome",
		}, []string{"portal", "outcome"}),

		Handoffs: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ayuraksha_handoffs_total",
			Help: "Total session hand-off attempts by portal and outcome",
		}, []string{"portal", "outcome"}),

		Uploads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "ayuraksha_uploads_total",
			Help: "Total accepted document uploads by document type",
		}, []string{"document_type"}),

		BackendLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ayuraksha_backend_request_duration_seconds",
			Help:    "Duration of requests to the record backend by operation",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"operation"}),
	}
}

// IncrementLogin records a login attempt outcome.
func (m *Metrics) IncrementLogin(portal, outcome string) {
	if m != nil {
		m.Logins.WithLabelValues(portal, outcome).Inc()
	}
}

// IncrementHandoff records a hand-off attempt outcome.
func (m *Metrics) IncrementHandoff(portal, outcome string) {
	if m != nil {
		m.Handoffs.WithLabelValues(portal, outcome).Inc()
	}
}

// IncrementUpload records an accepted upload.
func (m *Metrics) IncrementUpload(documentType string) {
	if m != nil {
		m.Uploads.WithLabelValues(documentType).Inc()
	}
}

// ObserveBackendLatency records the duration of one backend call.
func (m *Metrics) ObserveBackendLatency(operation string, d time.Duration) {
	if m != nil {
		m.BackendLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

package metrics

import "github.com/prometheus/client_golang/prometheus"

// Extraction outcomes recorded on hcp_crm_extractions_total
const (
	OutcomeSuccess     = "success"
	OutcomeEmptyInput  = "empty_input"
	OutcomeUnavailable = "unavailable"
	OutcomeModelCall   = "model_call"
	OutcomeParse       = "parse"
)

// CRMMetrics exposes counters/histograms for interaction logging and extraction.
type CRMMetrics struct {
	createdTotal       *prometheus.CounterVec
	extractionsTotal   *prometheus.CounterVec
	extractionDuration prometheus.Histogram
}

// NewCRMMetrics registers the collectors on reg, or on the default registerer when reg is nil
func NewCRMMetrics(reg prometheus.Registerer) *CRMMetrics {
	m := &CRMMetrics{
		createdTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hcp_crm",
			Name:      "interactions_created_total",
			Help:      "Total create-interaction attempts that reached the store",
		}, []string{"status"}),
		extractionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hcp_crm",
			Name:      "extractions_total",
			Help:      "Total free-text extraction requests by outcome",
		}, []string{"outcome"}),
		extractionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hcp_crm",
			Name:      "extraction_duration_seconds",
			Help:      "Latency of model calls made for extraction",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.createdTotal, m.extractionsTotal, m.extractionDuration)
	return m
}

// ObserveCreated counts one create that reached the store, by success or error
func (m *CRMMetrics) ObserveCreated(success bool) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "error"
	}
	m.createdTotal.WithLabelValues(status).Inc()
}

// ObserveExtraction counts one extraction request by outcome
func (m *CRMMetrics) ObserveExtraction(outcome string) {
	if m == nil {
		return
	}
	m.extractionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveExtractionLatency records the duration of one model call
func (m *CRMMetrics) ObserveExtractionLatency(seconds float64) {
	if m == nil {
		return
	}
	m.extractionDuration.Observe(seconds)
}

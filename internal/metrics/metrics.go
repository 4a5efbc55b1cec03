package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for resolutions
const (
	OutcomeMatched   = "matched"
	OutcomeNoMatch   = "no_match"
	OutcomeProbeFail = "probe_failed"
)

// Metrics holds all application metrics
type Metrics struct {
	resolutionsTotal *prometheus.CounterVec
	profilesTotal    *prometheus.CounterVec
	probeDuration    prometheus.Histogram
	probesActive     prometheus.Gauge
	scansTotal       *prometheus.CounterVec
	scansActive      prometheus.Gauge
	scanObjects      *prometheus.CounterVec
}

// New creates a new metrics instance registered with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		resolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dlnaprofile_resolutions_total",
				Help: "Total number of profile resolutions by media kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		profilesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dlnaprofile_profiles_selected_total",
				Help: "Total number of times each profile was selected as the preferred one",
			},
			[]string{"profile"},
		),
		probeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dlnaprofile_probe_duration_seconds",
				Help:    "Duration of ffprobe runs in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
			},
		),
		probesActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dlnaprofile_probes_active",
				Help: "Number of currently running ffprobe processes",
			},
		),
		scansTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dlnaprofile_scans_total",
				Help: "Total number of catalog scans by status",
			},
			[]string{"status"},
		),
		scansActive: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "dlnaprofile_scans_active",
				Help: "Number of currently running catalog scans",
			},
		),
		scanObjects: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dlnaprofile_scan_objects_total",
				Help: "Total number of objects handled by catalog scans by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// RecordResolution counts a resolution and the preferred profile, if any
func (m *Metrics) RecordResolution(kind string, primary string) {
	if primary == "" {
		m.resolutionsTotal.WithLabelValues(kind, OutcomeNoMatch).Inc()
		return
	}
	m.resolutionsTotal.WithLabelValues(kind, OutcomeMatched).Inc()
	m.profilesTotal.WithLabelValues(primary).Inc()
}

// RecordProbeFailure counts an object that could not be probed
func (m *Metrics) RecordProbeFailure(kind string) {
	m.resolutionsTotal.WithLabelValues(kind, OutcomeProbeFail).Inc()
}

// RecordProbeDuration records the duration of a probe
func (m *Metrics) RecordProbeDuration(seconds float64) {
	m.probeDuration.Observe(seconds)
}

// IncrementProbesActive increments the active probes gauge
func (m *Metrics) IncrementProbesActive() {
	m.probesActive.Inc()
}

// DecrementProbesActive decrements the active probes gauge
func (m *Metrics) DecrementProbesActive() {
	m.probesActive.Dec()
}

// IncrementScansTotal increments the scans counter
func (m *Metrics) IncrementScansTotal(status string) {
	m.scansTotal.WithLabelValues(status).Inc()
}

// IncrementScansActive increments the active scans gauge
func (m *Metrics) IncrementScansActive() {
	m.scansActive.Inc()
}

// DecrementScansActive decrements the active scans gauge
func (m *Metrics) DecrementScansActive() {
	m.scansActive.Dec()
}

// AddScanObjects counts objects handled by a scan
func (m *Metrics) AddScanObjects(outcome string, n int) {
	m.scanObjects.WithLabelValues(outcome).Add(float64(n))
}

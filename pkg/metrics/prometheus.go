// Package metrics exposes Prometheus metrics for a career simulation run.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the simulation metrics registered on one registry.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Player scout
	reportsSubmitted prometheus.Counter
	reportsDuplicate prometheus.Counter
	discoveries      *prometheus.CounterVec
	scoutReputation  prometheus.Gauge
	scoutTier        prometheus.Gauge

	// Season
	reviews     *prometheus.CounterVec
	reviewScore prometheus.Histogram
	jobOffers   prometheus.Counter
	weekLatency prometheus.Histogram

	// Department
	npcReports    prometheus.Counter
	npcFatigueAvg prometheus.Gauge
	meetings      *prometheus.CounterVec
	satisfaction  prometheus.Gauge
	boardSwing    prometheus.Histogram

	// Status API
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	errorsByComponent *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry the
// metrics land on prometheus.DefaultRegisterer.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "touchline",
		subsystem:        "career",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counter(name, help string) prometheus.Counter {
	return promauto.With(m.registry).NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	}, labels)
}

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
	})
}

func (m *Manager) histogram(name, help string, buckets []float64) prometheus.Histogram {
	return promauto.With(m.registry).NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		Buckets: buckets,
	})
}

func (m *Manager) histogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem, Name: name, Help: help, ConstLabels: m.constLabels,
		Buckets: buckets,
	}, labels)
}

func (m *Manager) initializeMetrics() {
	m.reportsSubmitted = m.counter("reports_submitted_total", "Scout reports applied to the career")
	m.reportsDuplicate = m.counter("reports_duplicate_total", "Scout reports ignored because their ID was already applied")
	m.discoveries = m.counterVec("discoveries_total", "Discovery credits by wonderkid tier", "tier")
	m.scoutReputation = m.gauge("scout_reputation", "Current scout reputation (0-100)")
	m.scoutTier = m.gauge("scout_tier", "Current scout career tier (1-5)")

	m.reviews = m.counterVec("reviews_total", "Season performance reviews by outcome", "outcome")
	m.reviewScore = m.histogram("review_score", "Season performance review scores",
		prometheus.LinearBuckets(10, 10, 10))
	m.jobOffers = m.counter("job_offers_total", "Job offers generated at season end")
	m.weekLatency = m.histogram("week_latency_seconds", "Time spent simulating one week", m.histogramBuckets)

	m.npcReports = m.counter("npc_reports_total", "Reports filed by NPC scouts")
	m.npcFatigueAvg = m.gauge("npc_fatigue_avg", "Average fatigue across the NPC roster")
	m.meetings = m.counterVec("manager_meetings_total", "Manager meetings by tone", "tone")
	m.satisfaction = m.gauge("manager_satisfaction", "Manager satisfaction at the last season review")
	m.boardSwing = m.histogram("board_reputation_swing", "Net reputation change from board evaluations",
		prometheus.LinearBuckets(-30, 10, 7))

	m.httpRequests = m.counterVec("http_requests_total", "Status API requests", "endpoint", "method", "status")
	m.httpDuration = m.histogramVec("http_request_duration_seconds", "Status API request latency",
		m.histogramBuckets, "endpoint", "method")

	m.errorsByComponent = m.counterVec("errors_by_component_total", "Errors by component and type", "component", "error_type")
}

// Default returns the manager registered on the package registry.
func Default() *Manager { return globalManager }

// ReportSubmitted counts an applied report.
func (m *Manager) ReportSubmitted() { m.reportsSubmitted.Inc() }

// ReportDuplicate counts an ignored resubmission.
func (m *Manager) ReportDuplicate() { m.reportsDuplicate.Inc() }

// Discovery counts a discovery credit of the given tier.
func (m *Manager) Discovery(tier string) { m.discoveries.WithLabelValues(tier).Inc() }

// ScoutState publishes the scout's reputation and tier.
func (m *Manager) ScoutState(reputation float64, tier int) {
	m.scoutReputation.Set(reputation)
	m.scoutTier.Set(float64(tier))
}

// Review records a season review.
func (m *Manager) Review(outcome string, score float64) {
	m.reviews.WithLabelValues(outcome).Inc()
	m.reviewScore.Observe(score)
}

// JobOffers counts generated offers.
func (m *Manager) JobOffers(n int) { m.jobOffers.Add(float64(n)) }

// WeekLatency records how long a week took to simulate, in seconds.
func (m *Manager) WeekLatency(seconds float64) { m.weekLatency.Observe(seconds) }

// NPCReports counts NPC reports filed.
func (m *Manager) NPCReports(n int) { m.npcReports.Add(float64(n)) }

// NPCFatigue publishes the roster's average fatigue.
func (m *Manager) NPCFatigue(avg float64) { m.npcFatigueAvg.Set(avg) }

// Meeting counts a manager meeting.
func (m *Manager) Meeting(tone string) { m.meetings.WithLabelValues(tone).Inc() }

// ManagerSatisfaction publishes the manager's end-of-season satisfaction.
func (m *Manager) ManagerSatisfaction(v float64) { m.satisfaction.Set(v) }

// BoardSwing records a board evaluation's net reputation change.
func (m *Manager) BoardSwing(delta float64) { m.boardSwing.Observe(delta) }

// HTTPRequest records one status API request.
func (m *Manager) HTTPRequest(endpoint, method, status string, seconds float64) {
	m.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	m.httpDuration.WithLabelValues(endpoint, method).Observe(seconds)
}

// Error counts an error raised by component.
func (m *Manager) Error(component, errorType string) {
	m.errorsByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordError counts an error on the global manager.
func RecordError(component, errorType string) {
	globalManager.Error(component, errorType)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// Handler serves the custom registry in the Prometheus exposition format.
func Handler() http.Handler {
	return promhttp.HandlerFor(customRegistry, promhttp.HandlerOpts{})
}

package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Trigger label values for TriggerInvocationsTotal
const (
	TriggerPreTokenGeneration = "pre_token_generation"
	TriggerPostConfirmation   = "post_confirmation"
)

// Outcome label values for TriggerInvocationsTotal
const (
	OutcomeProcessed   = "processed"
	OutcomePassthrough = "passthrough"
	OutcomeRecovered   = "recovered"
)

// Status label values for collaborator operations
const (
	StatusOK     = "ok"
	StatusExists = "exists"
	StatusFailed = "failed"
)

// Metrics holds all Prometheus metrics for the trigger handlers
type Metrics struct {
	registry *prometheus.Registry

	// Trigger metrics
	TriggerInvocationsTotal *prometheus.CounterVec

	// JIT provisioning metrics
	ProvisioningTotal    *prometheus.CounterVec
	ProvisioningDuration prometheus.Histogram

	// Group sync metrics
	GroupSyncTotal *prometheus.CounterVec

	// Group to role mapping cache metrics
	MappingCacheHitsTotal   prometheus.Counter
	MappingCacheMissesTotal prometheus.Counter

	// Administrative attribute write metrics
	AttributeWritesTotal *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics
func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,

		TriggerInvocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authhooks_trigger_invocations_total",
				Help: "Total number of trigger invocations by trigger and outcome",
			},
			[]string{"trigger", "outcome"},
		),
		ProvisioningTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authhooks_jit_provisioning_total",
				Help: "Total number of JIT provisioning attempts by status",
			},
			[]string{"status"},
		),
		ProvisioningDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "authhooks_jit_provisioning_duration_seconds",
				Help:    "JIT provisioning duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		GroupSyncTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authhooks_group_sync_total",
				Help: "Total number of best-effort group sync calls by status",
			},
			[]string{"status"},
		),
		MappingCacheHitsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "authhooks_mapping_cache_hits_total",
				Help: "Total number of group-role mapping cache hits",
			},
		),
		MappingCacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "authhooks_mapping_cache_misses_total",
				Help: "Total number of group-role mapping cache misses",
			},
		),
		AttributeWritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authhooks_attribute_writes_total",
				Help: "Total number of administrative attribute writes by status",
			},
			[]string{"status"},
		),
	}

	registry.MustRegister(
		m.TriggerInvocationsTotal,
		m.ProvisioningTotal,
		m.ProvisioningDuration,
		m.GroupSyncTotal,
		m.MappingCacheHitsTotal,
		m.MappingCacheMissesTotal,
		m.AttributeWritesTotal,
	)

	return m
}

// Handler returns an HTTP handler serving the metrics registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

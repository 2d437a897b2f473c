package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/annolab/annolab/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	planDuration       *prometheus.HistogramVec
	plannedAssignments prometheus.Counter
	planFailures       prometheus.Counter
	taskCount          prometheus.Gauge
	workerCount        prometheus.Gauge

	assignments   *prometheus.CounterVec
	unassignments *prometheus.CounterVec
	storeDuration *prometheus.HistogramVec

	resolutions *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// All collectors are registered eagerly; registering the same namespace
// twice on one registerer panics, as is usual for Prometheus collectors.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Metrics namespace (defaults to "annolab" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "annolab"
	}

	c := &PrometheusCollector{
		planDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_duration_seconds",
			Help:      "Time taken by one planning pass.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"strategy"}),
		plannedAssignments: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "planned_assignments_total",
			Help:      "Assignments persisted by planning passes.",
		}),
		planFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_failures_total",
			Help:      "Individual assignment persists that failed during planning.",
		}),
		taskCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tasks",
			Help:      "Tasks seen by the most recent planning pass.",
		}),
		workerCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "candidate_workers",
			Help:      "Candidate workers seen by the most recent planning pass.",
		}),
		assignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assignments_total",
			Help:      "Assign calls by purpose and outcome.",
		}, []string{"purpose", "outcome"}),
		unassignments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unassignments_total",
			Help:      "Unassign calls that removed a record, by purpose.",
		}, []string{"purpose"}),
		storeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Assignment store operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consensus_resolutions_total",
			Help:      "Consensus resolutions by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		c.planDuration, c.plannedAssignments, c.planFailures,
		c.taskCount, c.workerCount,
		c.assignments, c.unassignments, c.storeDuration,
		c.resolutions,
	)

	return c
}

// RecordPlanDuration records the time taken by one planning pass.
func (c *PrometheusCollector) RecordPlanDuration(strategy string, duration float64) {
	c.planDuration.WithLabelValues(strategy).Observe(duration)
}

// RecordPlannedAssignments records persisted and failed counts for one pass.
func (c *PrometheusCollector) RecordPlannedAssignments(persisted, failed int) {
	c.plannedAssignments.Add(float64(persisted))
	c.planFailures.Add(float64(failed))
}

// RecordTaskCount sets the task count gauge.
func (c *PrometheusCollector) RecordTaskCount(count int) {
	c.taskCount.Set(float64(count))
}

// RecordWorkerCount sets the candidate worker count gauge.
func (c *PrometheusCollector) RecordWorkerCount(count int) {
	c.workerCount.Set(float64(count))
}

// RecordAssignment records an assign call outcome.
func (c *PrometheusCollector) RecordAssignment(purpose types.Purpose, created bool) {
	outcome := "existing"
	if created {
		outcome = "created"
	}
	c.assignments.WithLabelValues(string(purpose), outcome).Inc()
}

// RecordUnassignment records an unassign call that removed a record.
func (c *PrometheusCollector) RecordUnassignment(purpose types.Purpose) {
	c.unassignments.WithLabelValues(string(purpose)).Inc()
}

// RecordStoreDuration records backing store operation latency.
func (c *PrometheusCollector) RecordStoreDuration(operation string, duration float64) {
	c.storeDuration.WithLabelValues(operation).Observe(duration)
}

// RecordResolution records one consensus resolution outcome.
func (c *PrometheusCollector) RecordResolution(outcome string) {
	c.resolutions.WithLabelValues(outcome).Inc()
}

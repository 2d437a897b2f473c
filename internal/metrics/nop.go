// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/annolab/annolab/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// PlannerMetrics implementation

// RecordPlanDuration discards the plan duration metric.
func (n *NopMetrics) RecordPlanDuration(_ /* strategy */ string, _ /* duration */ float64) {
	// No-op
}

// RecordPlannedAssignments discards the planned assignment counts.
func (n *NopMetrics) RecordPlannedAssignments(_ /* persisted */, _ /* failed */ int) {
	// No-op
}

// RecordTaskCount discards the task count gauge.
func (n *NopMetrics) RecordTaskCount(_ /* count */ int) {
	// No-op
}

// RecordWorkerCount discards the worker count gauge.
func (n *NopMetrics) RecordWorkerCount(_ /* count */ int) {
	// No-op
}

// LedgerMetrics implementation

// RecordAssignment discards the assignment outcome metric.
func (n *NopMetrics) RecordAssignment(_ /* purpose */ types.Purpose, _ /* created */ bool) {
	// No-op
}

// RecordUnassignment discards the unassignment metric.
func (n *NopMetrics) RecordUnassignment(_ /* purpose */ types.Purpose) {
	// No-op
}

// RecordStoreDuration discards the store latency metric.
func (n *NopMetrics) RecordStoreDuration(_ /* operation */ string, _ /* duration */ float64) {
	// No-op
}

// ConsensusMetrics implementation

// RecordResolution discards the resolution outcome metric.
func (n *NopMetrics) RecordResolution(_ /* outcome */ string) {
	// No-op
}

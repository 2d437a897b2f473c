package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// Methods may be called from concurrent request handlers and must be
// thread-safe.
//
// This interface composes smaller, domain-focused interfaces so components
// can depend on only the slice of metrics they record.
type MetricsCollector interface {
	PlannerMetrics
	LedgerMetrics
	ConsensusMetrics
}

// PlannerMetrics defines metrics for planning operations.
type PlannerMetrics interface {
	// RecordPlanDuration records the time taken by one planning pass.
	//
	// Parameters:
	//   - strategy: Strategy name ("round_robin", "least_loaded")
	//   - duration: Time taken in seconds
	RecordPlanDuration(strategy string, duration float64)

	// RecordPlannedAssignments records how many assignments one planning
	// pass persisted and how many individual persists failed.
	RecordPlannedAssignments(persisted, failed int)

	// RecordTaskCount sets the current task count seen by the planner (gauge).
	RecordTaskCount(count int)

	// RecordWorkerCount sets the current candidate worker count (gauge).
	RecordWorkerCount(count int)
}

// LedgerMetrics defines metrics for assignment bookkeeping operations.
type LedgerMetrics interface {
	// RecordAssignment records an assign call outcome.
	//
	// Parameters:
	//   - purpose: Assignment purpose ("annotation", "review")
	//   - created: true if a record was created, false for an idempotent hit
	RecordAssignment(purpose Purpose, created bool)

	// RecordUnassignment records an unassign call that removed a record.
	RecordUnassignment(purpose Purpose)

	// RecordStoreDuration records backing store operation latency.
	//
	// Parameters:
	//   - operation: Operation type ("insert", "remove", "by_task", "by_worker")
	//   - duration: Time taken in seconds
	RecordStoreDuration(operation string, duration float64)
}

// ConsensusMetrics defines metrics for consensus resolution.
type ConsensusMetrics interface {
	// RecordResolution records one consensus resolution outcome.
	//
	// Parameters:
	//   - outcome: Outcome name ("decided", "reviewed", "requires_review", "no_labels")
	RecordResolution(outcome string)
}

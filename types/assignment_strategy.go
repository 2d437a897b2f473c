package types

// AssignmentStrategy calculates a task-to-worker mapping for one planning pass.
//
// Strategies implement different planning algorithms:
//   - RoundRobin: Deterministic replicated round-robin (replication-aware)
//   - LeastLoaded: Load-balanced single assignment (workload-aware)
//   - Custom: User-defined algorithms
//
// Strategy implementations should:
//   - Be deterministic (same input → same output)
//   - Be pure (no side effects, no storage access; Candidate.Load is the
//     only workload input, tracked locally during the pass)
//   - Handle edge cases (no tasks, no workers, replication bounds)
//   - Run in time proportional to tasks × replication
type AssignmentStrategy interface {
	// Assign computes the task-to-worker mapping.
	//
	// Replication-aware strategies assign up to replication workers per task;
	// single-assignment strategies ignore the parameter and assign exactly
	// one worker per task.
	//
	// Parameters:
	//   - tasks: Tasks to assign, in stable source order
	//   - workers: Candidate workers with current workloads, in stable order
	//   - replication: Desired annotators per task (>= 1)
	//
	// Returns:
	//   - map[string][]string: Map from task ID to assigned worker IDs
	//   - error: Assignment error (e.g., ErrNoWorkers)
	Assign(tasks []Task, workers []Candidate, replication int) (map[string][]string, error)
}

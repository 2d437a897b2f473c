package strategy

import (
	"sort"

	"github.com/annolab/annolab/types"
)

// LeastLoaded implements load-balanced single assignment.
type LeastLoaded struct{}

var _ types.AssignmentStrategy = (*LeastLoaded)(nil)

// Name returns the strategy name used in logs and metrics labels.
func (ll *LeastLoaded) Name() string { return "least_loaded" }

// NewLeastLoaded creates a new least-loaded strategy.
//
// The strategy orders workers ascending by their current workload (ties
// broken by input order) and then deals tasks to them with a circular
// cursor, so lightly loaded workers receive the first tasks of the pass and
// no worker is dealt a second task before every worker has been dealt one.
//
// Workload counters are tracked locally for the duration of the pass and are
// never requeried from storage, keeping the algorithm pure and independently
// testable.
//
// Returns:
//   - *LeastLoaded: Initialized least-loaded strategy
func NewLeastLoaded() *LeastLoaded {
	return &LeastLoaded{}
}

// Assign calculates single-worker task assignments balancing current workload.
//
// The algorithm:
//  1. Stable-sort candidates ascending by Load (input order breaks ties)
//  2. Walk tasks in input order, assigning each to the worker under the
//     cursor, incrementing that worker's local load and advancing the cursor
//     circularly
//
// Over one pass the per-worker assigned counts differ by at most 1 when all
// starting loads are equal. The replication parameter is ignored: this is a
// single-assignment strategy.
//
// Parameters:
//   - tasks: Tasks to assign, in stable source order
//   - workers: Candidate workers with current workloads
//   - replication: Ignored (always one worker per task)
//
// Returns:
//   - map[string][]string: Map from task ID to a single-element worker list
//   - error: Always nil; zero workers yields an empty mapping
func (ll *LeastLoaded) Assign(tasks []types.Task, workers []types.Candidate, _ int) (map[string][]string, error) {
	assignments := make(map[string][]string, len(tasks))
	if len(tasks) == 0 || len(workers) == 0 {
		return assignments, nil
	}

	// Local copy so sorting and load tracking never touch the caller's slice.
	sorted := make([]types.Candidate, len(workers))
	copy(sorted, workers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Load < sorted[j].Load })

	cursor := 0
	for _, task := range tasks {
		worker := &sorted[cursor]
		assignments[task.ID] = []string{worker.WorkerID}
		worker.Load++
		cursor = (cursor + 1) % len(sorted)
	}

	return assignments, nil
}

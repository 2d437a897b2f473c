package strategy

import (
	"github.com/annolab/annolab/types"
)

// RoundRobin implements deterministic replicated round-robin task assignment.
type RoundRobin struct {
	allowOverlap bool
}

var _ types.AssignmentStrategy = (*RoundRobin)(nil)

// Name returns the strategy name used in logs and metrics labels.
func (rr *RoundRobin) Name() string { return "round_robin" }

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy distributes tasks cyclically across workers: the j-th replica
// of the i-th task goes to workers[(i*replication+j) mod len(workers)]. The
// result is stable and reproducible for identical inputs, and no worker
// receives two replicas of the same task.
//
// A replication factor exceeding the worker count is rejected with
// ErrReplicationExceedsWorkers; use NewRoundRobinWithOverlap to permit it.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	strat := strategy.NewRoundRobin()
//	planner, err := annolab.NewPlanner(&cfg, source, directory, ledger, strat)
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// NewRoundRobinWithOverlap creates a round-robin strategy that permits the
// same worker to hold more than one replica slot of a single task when the
// replication factor exceeds the worker count.
//
// This trades replica independence for coverage: with 3 workers and
// replication 5, every task is still assigned 5 slots, but at least two land
// on the same worker. Most projects want the default rejecting behavior.
//
// Returns:
//   - *RoundRobin: Initialized strategy with replica overlap allowed
func NewRoundRobinWithOverlap() *RoundRobin {
	return &RoundRobin{allowOverlap: true}
}

// Assign calculates task assignments using replicated round-robin distribution.
//
// The algorithm walks tasks in input order and assigns each task exactly
// replication workers at consecutive cyclic positions. Candidate loads are
// ignored; the mapping is a pure function of list positions.
//
// Parameters:
//   - tasks: Tasks to assign, in stable source order
//   - workers: Candidate workers, in stable directory order
//   - replication: Number of annotators per task (>= 1)
//
// Returns:
//   - map[string][]string: Map from task ID to assigned worker IDs, in
//     replica order
//   - error: ErrNoWorkers, ErrInvalidReplication, or
//     ErrReplicationExceedsWorkers
func (rr *RoundRobin) Assign(tasks []types.Task, workers []types.Candidate, replication int) (map[string][]string, error) {
	if replication < 1 {
		return nil, ErrInvalidReplication
	}
	if len(tasks) == 0 {
		return map[string][]string{}, nil
	}
	if len(workers) == 0 {
		return nil, ErrNoWorkers
	}
	if replication > len(workers) && !rr.allowOverlap {
		return nil, ErrReplicationExceedsWorkers
	}

	assignments := make(map[string][]string, len(tasks))
	for i, task := range tasks {
		replicas := make([]string, 0, replication)
		for j := 0; j < replication; j++ {
			worker := workers[(i*replication+j)%len(workers)]
			replicas = append(replicas, worker.WorkerID)
		}
		assignments[task.ID] = replicas
	}

	return assignments, nil
}

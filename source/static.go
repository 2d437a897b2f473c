package source

import (
	"context"
	"sync"
	"time"

	"github.com/annolab/annolab/types"
)

// Static implements TaskSource, WorkerDirectory, and LabelStore over fixed
// in-memory lists.
type Static struct {
	mu      sync.RWMutex
	tasks   []types.Task
	workers []types.Worker
	labels  map[string][]types.Label // taskID -> labels, one per worker
	reviews map[string]types.Review  // taskID -> authoritative review
}

var (
	_ types.TaskSource      = (*Static)(nil)
	_ types.WorkerDirectory = (*Static)(nil)
	_ types.LabelStore      = (*Static)(nil)
)

// NewStatic creates a new static source.
//
// The source returns the given tasks and workers in their input order,
// which makes planning over it fully deterministic.
//
// Parameters:
//   - tasks: Fixed task list
//   - workers: Fixed worker list
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic(
//	    []types.Task{{ID: "t0", ProjectID: "p1", PayloadRef: "gs://imgs/0.png"}},
//	    []types.Worker{{ID: "w0", Roles: types.NewRoleSet(types.RoleAnnotator)}},
//	)
//	planner, err := annolab.NewPlanner(&cfg, src, src, ledger, strategy.NewRoundRobin())
func NewStatic(tasks []types.Task, workers []types.Worker) *Static {
	return &Static{
		tasks:   tasks,
		workers: workers,
		labels:  make(map[string][]types.Label),
		reviews: make(map[string]types.Review),
	}
}

// ListTasks returns the tasks belonging to the project, in input order.
func (s *Static) ListTasks(_ context.Context, projectID string) ([]types.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if task.ProjectID == projectID {
			result = append(result, task)
		}
	}

	return result, nil
}

// ListWorkers returns the workers holding the role, in input order.
func (s *Static) ListWorkers(_ context.Context, role types.Role) ([]types.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Worker, 0, len(s.workers))
	for _, worker := range s.workers {
		if worker.Roles.Has(role) {
			result = append(result, worker)
		}
	}

	return result, nil
}

// Labels returns all labels submitted for the task.
func (s *Static) Labels(_ context.Context, taskID string) ([]types.Label, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	labels := s.labels[taskID]
	result := make([]types.Label, len(labels))
	copy(result, labels)

	return result, nil
}

// Review returns the review for the task, or nil when none was submitted.
func (s *Static) Review(_ context.Context, taskID string) (*types.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[taskID]
	if !ok {
		return nil, nil
	}

	return &review, nil
}

// SubmitLabel records a label from a worker, overwriting any previous label
// by the same worker for the same task (upsert, no duplicate history).
func (s *Static) SubmitLabel(taskID, workerID, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	label := types.Label{TaskID: taskID, WorkerID: workerID, Value: value, UpdatedAt: time.Now()}
	for i, existing := range s.labels[taskID] {
		if existing.WorkerID == workerID {
			s.labels[taskID][i] = label
			return
		}
	}
	s.labels[taskID] = append(s.labels[taskID], label)
}

// SubmitReview records the authoritative review for a task, overwriting any
// previous one (upsert).
func (s *Static) SubmitReview(taskID, workerID, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews[taskID] = types.Review{TaskID: taskID, WorkerID: workerID, Value: value, UpdatedAt: time.Now()}
}

// UpdateTasks replaces the task list.
//
// This allows the static source to simulate a task import happening between
// planning passes, which is useful for testing replanning behavior.
func (s *Static) UpdateTasks(tasks []types.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]types.Task, len(tasks))
	copy(s.tasks, tasks)
}

// UpdateWorkers replaces the worker list.
func (s *Static) UpdateWorkers(workers []types.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.workers = make([]types.Worker, len(workers))
	copy(s.workers, workers)
}

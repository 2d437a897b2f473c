package ledger

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/annolab/internal/logging"
	"github.com/annolab/annolab/internal/metrics"
	"github.com/annolab/annolab/types"
)

// Ledger is the assignment bookkeeping component.
//
// All methods are safe for concurrent use; mutual exclusion for the
// check-then-insert race lives in the backing store, not here.
type Ledger struct {
	store   types.AssignmentStore
	labels  types.LabelStore
	logger  types.Logger
	metrics types.LedgerMetrics
}

// Progress summarizes one worker's standing for a purpose.
type Progress struct {
	// Assigned is the number of tasks currently assigned to the worker.
	Assigned int `json:"assigned"`

	// Completed is how many of those tasks have a submission from the worker.
	Completed int `json:"completed"`
}

// New creates a ledger over the given stores.
//
// Parameters:
//   - store: Durable assignment record store (required)
//   - labels: Label/review read access for completion checks (required)
//   - logger: Structured logger (nil for silent operation)
//   - collector: Ledger metrics sink (nil to discard)
//
// Returns:
//   - *Ledger: Initialized ledger
//   - error: ErrStoreRequired when either store is nil
func New(store types.AssignmentStore, labels types.LabelStore, logger types.Logger, collector types.LedgerMetrics) (*Ledger, error) {
	if store == nil || labels == nil {
		return nil, types.ErrStoreRequired
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if collector == nil {
		collector = metrics.NewNop()
	}

	return &Ledger{store: store, labels: labels, logger: logger, metrics: collector}, nil
}

// Assign records that the worker is assigned to the task for the purpose.
//
// Assignment is idempotent: when a record already exists for the exact
// (task, worker, purpose) triple it is returned unchanged, with its original
// ID and creation time. A duplicate is never an error.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - taskID: Task identifier
//   - workerID: Worker identifier
//   - purpose: Assignment purpose (annotation or review)
//
// Returns:
//   - types.AssignmentRecord: The stored record (new or pre-existing)
//   - error: Validation or storage error
func (l *Ledger) Assign(ctx context.Context, taskID, workerID string, purpose types.Purpose) (types.AssignmentRecord, error) {
	if err := validateTriple(taskID, workerID, purpose); err != nil {
		return types.AssignmentRecord{}, err
	}

	rec := types.AssignmentRecord{
		ID:        uuid.NewString(),
		TaskID:    taskID,
		WorkerID:  workerID,
		Purpose:   purpose,
		CreatedAt: time.Now().UTC(),
	}

	start := time.Now()
	stored, created, err := l.store.Insert(ctx, rec)
	l.metrics.RecordStoreDuration("insert", time.Since(start).Seconds())
	if err != nil {
		return types.AssignmentRecord{}, fmt.Errorf("failed to persist assignment: %w", err)
	}

	l.metrics.RecordAssignment(purpose, created)
	if created {
		l.logger.Debug("assignment created",
			"task_id", taskID, "worker_id", workerID, "purpose", purpose)
	} else {
		l.logger.Debug("assignment already exists",
			"task_id", taskID, "worker_id", workerID, "purpose", purpose)
	}

	return stored, nil
}

// Unassign removes the assignment for the exact (task, worker, purpose)
// triple. Removing an absent assignment is a no-op, not an error.
//
// The contract is deliberately worker-specific: there is no variant that
// clears every worker from a task in one call, so a stale caller can never
// wipe assignments it does not know about.
func (l *Ledger) Unassign(ctx context.Context, taskID, workerID string, purpose types.Purpose) error {
	if err := validateTriple(taskID, workerID, purpose); err != nil {
		return err
	}

	start := time.Now()
	removed, err := l.store.Remove(ctx, taskID, workerID, purpose)
	l.metrics.RecordStoreDuration("remove", time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("failed to remove assignment: %w", err)
	}

	if removed {
		l.metrics.RecordUnassignment(purpose)
		l.logger.Debug("assignment removed",
			"task_id", taskID, "worker_id", workerID, "purpose", purpose)
	}

	return nil
}

// WorkersFor returns the IDs of workers assigned to the task for the
// purpose, sorted for deterministic output.
func (l *Ledger) WorkersFor(ctx context.Context, taskID string, purpose types.Purpose) ([]string, error) {
	if taskID == "" {
		return nil, types.ErrEmptyTaskID
	}
	if !purpose.Valid() {
		return nil, types.ErrInvalidPurpose
	}

	start := time.Now()
	records, err := l.store.ByTask(ctx, taskID, purpose)
	l.metrics.RecordStoreDuration("by_task", time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for task %s: %w", taskID, err)
	}

	workers := make([]string, 0, len(records))
	for _, rec := range records {
		workers = append(workers, rec.WorkerID)
	}
	sort.Strings(workers)

	return workers, nil
}

// TasksFor returns the IDs of tasks assigned to the worker for the purpose,
// sorted for deterministic output.
func (l *Ledger) TasksFor(ctx context.Context, workerID string, purpose types.Purpose) ([]string, error) {
	if workerID == "" {
		return nil, types.ErrEmptyWorkerID
	}
	if !purpose.Valid() {
		return nil, types.ErrInvalidPurpose
	}

	start := time.Now()
	records, err := l.store.ByWorker(ctx, workerID, purpose)
	l.metrics.RecordStoreDuration("by_worker", time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for worker %s: %w", workerID, err)
	}

	tasks := make([]string, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, rec.TaskID)
	}
	sort.Strings(tasks)

	return tasks, nil
}

// Workload returns the number of tasks currently assigned to the worker for
// the purpose. The planner reads this once per candidate at the start of a
// planning pass.
func (l *Ledger) Workload(ctx context.Context, workerID string, purpose types.Purpose) (int, error) {
	tasks, err := l.TasksFor(ctx, workerID, purpose)
	if err != nil {
		return 0, err
	}

	return len(tasks), nil
}

// Completed reports whether the worker has submitted for the task: a label
// when the purpose is annotation, a review when the purpose is review.
//
// Completion is a join across the label store and the assignment universe,
// derived on demand; it is never stored on the assignment record.
func (l *Ledger) Completed(ctx context.Context, taskID, workerID string, purpose types.Purpose) (bool, error) {
	if err := validateTriple(taskID, workerID, purpose); err != nil {
		return false, err
	}

	if purpose == types.PurposeReview {
		review, err := l.labels.Review(ctx, taskID)
		if err != nil {
			return false, fmt.Errorf("failed to load review for task %s: %w", taskID, err)
		}

		return review != nil && review.WorkerID == workerID, nil
	}

	labels, err := l.labels.Labels(ctx, taskID)
	if err != nil {
		return false, fmt.Errorf("failed to load labels for task %s: %w", taskID, err)
	}
	for _, label := range labels {
		if label.WorkerID == workerID {
			return true, nil
		}
	}

	return false, nil
}

// Progress reports how many of the worker's assigned tasks have been
// completed with a submission.
func (l *Ledger) Progress(ctx context.Context, workerID string, purpose types.Purpose) (Progress, error) {
	tasks, err := l.TasksFor(ctx, workerID, purpose)
	if err != nil {
		return Progress{}, err
	}

	p := Progress{Assigned: len(tasks)}
	for _, taskID := range tasks {
		done, err := l.Completed(ctx, taskID, workerID, purpose)
		if err != nil {
			return Progress{}, err
		}
		if done {
			p.Completed++
		}
	}

	return p, nil
}

func validateTriple(taskID, workerID string, purpose types.Purpose) error {
	if taskID == "" {
		return types.ErrEmptyTaskID
	}
	if workerID == "" {
		return types.ErrEmptyWorkerID
	}
	if !purpose.Valid() {
		return types.ErrInvalidPurpose
	}

	return nil
}

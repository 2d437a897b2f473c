package annolab

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/annolab/annolab/internal/logging"
	"github.com/annolab/annolab/internal/metrics"
	"github.com/annolab/annolab/types"
)

// AssignmentLedger is the slice of ledger behavior the Planner depends on.
// *ledger.Ledger satisfies it.
type AssignmentLedger interface {
	// Assign idempotently records the (task, worker, purpose) triple.
	Assign(ctx context.Context, taskID, workerID string, purpose types.Purpose) (types.AssignmentRecord, error)

	// WorkersFor returns the workers currently assigned to the task.
	WorkersFor(ctx context.Context, taskID string, purpose types.Purpose) ([]string, error)

	// Workload returns the worker's current assigned-task count.
	Workload(ctx context.Context, workerID string, purpose types.Purpose) (int, error)
}

// Planner computes and persists task assignments for a project.
//
// A planning pass is read-compute-write: it reads the task list, the eligible
// workers and their current workloads, runs the configured strategy as a pure
// function over that snapshot, then persists the planned triples through the
// ledger. Concurrent passes are safe because persistence is idempotent; two
// racing planners converge on the same assignment set.
type Planner struct {
	cfg       Config
	source    types.TaskSource
	directory types.WorkerDirectory
	ledger    AssignmentLedger
	strategy  types.AssignmentStrategy
	logger    types.Logger
	metrics   types.MetricsCollector
}

// PlanFailure records one assignment write that failed during a pass.
type PlanFailure struct {
	TaskID   string
	WorkerID string
	Err      error
}

// PlanReport summarizes one planning pass.
type PlanReport struct {
	// Purpose is the assignment purpose this pass planned.
	Purpose types.Purpose

	// Strategy is the name of the strategy that produced the plan.
	Strategy string

	// Assignments maps task IDs to the workers newly assigned this pass.
	// Slots already satisfied before the pass are not listed.
	Assignments map[string][]string

	// Planned is the number of new assignment records persisted.
	Planned int

	// Existing is the number of planned slots already satisfied by earlier
	// passes, left untouched.
	Existing int

	// SkippedTasks is the number of tasks excluded from planning because they
	// already had their full complement of workers.
	SkippedTasks int

	// Failures lists assignment writes that failed. Non-empty only when
	// ContinueOnError is set; otherwise the first failure aborts the pass.
	Failures []PlanFailure
}

// NewPlanner creates a planner from the given configuration and dependencies.
//
// Parameters:
//   - cfg: Planner configuration (defaults applied, then validated)
//   - source: Task discovery (required)
//   - directory: Worker discovery (required)
//   - led: Assignment persistence (required)
//   - strat: Assignment strategy (required)
//   - opts: Optional logger and metrics
//
// Returns:
//   - *Planner: Initialized planner
//   - error: Missing dependency or invalid configuration
//
// Example:
//
//	planner, err := annolab.NewPlanner(annolab.DefaultConfig(),
//	    source, directory, led, strategy.NewRoundRobin(),
//	    annolab.WithLogger(logger))
func NewPlanner(
	cfg Config,
	source types.TaskSource,
	directory types.WorkerDirectory,
	led AssignmentLedger,
	strat types.AssignmentStrategy,
	opts ...Option,
) (*Planner, error) {
	if source == nil {
		return nil, ErrTaskSourceRequired
	}
	if directory == nil {
		return nil, ErrWorkerDirectoryRequired
	}
	if led == nil {
		return nil, ErrLedgerRequired
	}
	if strat == nil {
		return nil, ErrAssignmentStrategyRequired
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := &plannerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logging.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Planner{
		cfg:       cfg,
		source:    source,
		directory: directory,
		ledger:    led,
		strategy:  strat,
		logger:    options.logger,
		metrics:   options.metrics,
	}, nil
}

// PlanAnnotations plans annotation assignments for the project, targeting
// ReplicationFactor annotators per task.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - projectID: Project to plan (empty for the configured default)
//
// Returns:
//   - PlanReport: Pass summary
//   - error: Discovery, strategy or persistence error
func (p *Planner) PlanAnnotations(ctx context.Context, projectID string) (PlanReport, error) {
	return p.plan(ctx, projectID, types.PurposeAnnotation, p.cfg.ReplicationFactor)
}

// PlanReviews plans review assignments for the project. Each task receives at
// most one reviewer regardless of the replication factor.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - projectID: Project to plan (empty for the configured default)
//
// Returns:
//   - PlanReport: Pass summary
//   - error: Discovery, strategy or persistence error
func (p *Planner) PlanReviews(ctx context.Context, projectID string) (PlanReport, error) {
	return p.plan(ctx, projectID, types.PurposeReview, 1)
}

func (p *Planner) plan(ctx context.Context, projectID string, purpose types.Purpose, replication int) (PlanReport, error) {
	if projectID == "" {
		projectID = p.cfg.ProjectID
	}

	if p.cfg.PlanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.PlanTimeout)
		defer cancel()
	}

	report := PlanReport{
		Purpose:     purpose,
		Strategy:    strategyName(p.strategy),
		Assignments: make(map[string][]string),
	}
	start := time.Now()

	tasks, err := p.source.ListTasks(ctx, projectID)
	if err != nil {
		return report, fmt.Errorf("failed to list tasks for project %s: %w", projectID, err)
	}

	workers, err := p.directory.ListWorkers(ctx, purpose.Role())
	if err != nil {
		return report, fmt.Errorf("failed to list workers for role %s: %w", purpose.Role(), err)
	}

	p.metrics.RecordTaskCount(len(tasks))
	p.metrics.RecordWorkerCount(len(workers))

	if len(tasks) == 0 {
		p.logger.Info("nothing to plan", "project_id", projectID, "purpose", purpose)

		return report, nil
	}
	if len(workers) == 0 {
		return report, ErrNoWorkers
	}

	candidates, err := p.buildCandidates(ctx, workers, purpose)
	if err != nil {
		return report, err
	}

	pending, existing, err := p.partitionTasks(ctx, tasks, purpose, replication, &report)
	if err != nil {
		return report, err
	}

	plan, err := p.strategy.Assign(pending, candidates, replication)
	if err != nil {
		return report, fmt.Errorf("strategy %s failed: %w", report.Strategy, err)
	}

	if err := p.persist(ctx, pending, plan, existing, purpose, replication, &report); err != nil {
		return report, err
	}

	p.metrics.RecordPlanDuration(report.Strategy, time.Since(start).Seconds())
	p.metrics.RecordPlannedAssignments(report.Planned, len(report.Failures))
	p.logger.Info("planning pass complete",
		"project_id", projectID,
		"purpose", purpose,
		"strategy", report.Strategy,
		"planned", report.Planned,
		"existing", report.Existing,
		"skipped_tasks", report.SkippedTasks,
		"failures", len(report.Failures),
	)

	return report, nil
}

// buildCandidates reads each worker's current workload once. Strategies track
// load changes locally during the pass and never requery storage.
func (p *Planner) buildCandidates(ctx context.Context, workers []types.Worker, purpose types.Purpose) ([]types.Candidate, error) {
	candidates := make([]types.Candidate, 0, len(workers))
	for _, worker := range workers {
		opCtx, cancel := context.WithTimeout(ctx, p.cfg.OperationTimeout)
		load, err := p.ledger.Workload(opCtx, worker.ID, purpose)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("failed to read workload of worker %s: %w", worker.ID, err)
		}
		candidates = append(candidates, types.Candidate{WorkerID: worker.ID, Load: load})
	}

	return candidates, nil
}

// partitionTasks splits tasks into those still needing workers and those
// already at their full complement, returning the per-task sets of workers
// already assigned.
func (p *Planner) partitionTasks(
	ctx context.Context,
	tasks []types.Task,
	purpose types.Purpose,
	replication int,
	report *PlanReport,
) ([]types.Task, map[string]map[string]struct{}, error) {
	pending := make([]types.Task, 0, len(tasks))
	existing := make(map[string]map[string]struct{}, len(tasks))

	for _, task := range tasks {
		opCtx, cancel := context.WithTimeout(ctx, p.cfg.OperationTimeout)
		assigned, err := p.ledger.WorkersFor(opCtx, task.ID, purpose)
		cancel()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read assignments of task %s: %w", task.ID, err)
		}

		if len(assigned) >= replication {
			report.SkippedTasks++

			continue
		}

		set := make(map[string]struct{}, len(assigned))
		for _, workerID := range assigned {
			set[workerID] = struct{}{}
		}
		existing[task.ID] = set
		pending = append(pending, task)
	}

	return pending, existing, nil
}

// persist writes the planned triples through the ledger, topping each task up
// to the replication target and never disturbing assignments made by earlier
// passes.
func (p *Planner) persist(
	ctx context.Context,
	pending []types.Task,
	plan map[string][]string,
	existing map[string]map[string]struct{},
	purpose types.Purpose,
	replication int,
	report *PlanReport,
) error {
	for _, task := range pending {
		assigned := existing[task.ID]
		slots := replication - len(assigned)

		for _, workerID := range plan[task.ID] {
			if slots <= 0 {
				break
			}
			if _, ok := assigned[workerID]; ok {
				report.Existing++

				continue
			}

			opCtx, cancel := context.WithTimeout(ctx, p.cfg.OperationTimeout)
			_, err := p.ledger.Assign(opCtx, task.ID, workerID, purpose)
			cancel()
			if err != nil {
				if !p.cfg.ContinueOnError {
					return fmt.Errorf("failed to assign task %s to worker %s: %w", task.ID, workerID, err)
				}

				p.logger.Warn("assignment write failed",
					"task_id", task.ID, "worker_id", workerID, "purpose", purpose, "error", err)
				report.Failures = append(report.Failures, PlanFailure{TaskID: task.ID, WorkerID: workerID, Err: err})

				continue
			}

			assigned[workerID] = struct{}{}
			slots--
			report.Planned++
			report.Assignments[task.ID] = append(report.Assignments[task.ID], workerID)
		}
	}

	sortFailures(report.Failures)

	return nil
}

func sortFailures(failures []PlanFailure) {
	sort.Slice(failures, func(i, j int) bool {
		if failures[i].TaskID != failures[j].TaskID {
			return failures[i].TaskID < failures[j].TaskID
		}

		return failures[i].WorkerID < failures[j].WorkerID
	})
}

// strategyName resolves the metrics label for a strategy. Strategies shipped
// with this module implement Name(); custom strategies fall back to "custom".
func strategyName(strat types.AssignmentStrategy) string {
	if named, ok := strat.(interface{ Name() string }); ok {
		return named.Name()
	}

	return "custom"
}

package annolab_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/annolab/annolab"
	"github.com/annolab/annolab/ledger"
	"github.com/annolab/annolab/source"
	"github.com/annolab/annolab/strategy"
	"github.com/annolab/annolab/types"
)

const testProject = "p1"

func makeFixture(taskCount, annotators, reviewers int) *source.Static {
	tasks := make([]types.Task, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		tasks = append(tasks, types.Task{
			ID:        string(rune('a'+i)) + "-task",
			ProjectID: testProject,
		})
	}

	var workers []types.Worker
	for i := 0; i < annotators; i++ {
		workers = append(workers, types.Worker{
			ID:    string(rune('a'+i)) + "-annotator",
			Roles: types.NewRoleSet(types.RoleAnnotator),
		})
	}
	for i := 0; i < reviewers; i++ {
		workers = append(workers, types.Worker{
			ID:    string(rune('a'+i)) + "-reviewer",
			Roles: types.NewRoleSet(types.RoleReviewer),
		})
	}

	return source.NewStatic(tasks, workers)
}

func newPlannerFixture(t *testing.T, src *source.Static, replication int, strat types.AssignmentStrategy) (*annolab.Planner, *ledger.Ledger) {
	t.Helper()

	led, err := ledger.New(ledger.NewMemoryStore(), src, nil, nil)
	require.NoError(t, err)

	cfg := annolab.TestConfig()
	cfg.ProjectID = testProject
	cfg.ReplicationFactor = replication

	planner, err := annolab.NewPlanner(cfg, src, src, led, strat)
	require.NoError(t, err)

	return planner, led
}

func TestNewPlanner_Validation(t *testing.T) {
	src := makeFixture(0, 1, 0)
	led, err := ledger.New(ledger.NewMemoryStore(), src, nil, nil)
	require.NoError(t, err)
	strat := strategy.NewRoundRobin()
	cfg := annolab.TestConfig()

	t.Run("missing dependencies", func(t *testing.T) {
		_, err := annolab.NewPlanner(cfg, nil, src, led, strat)
		require.ErrorIs(t, err, annolab.ErrTaskSourceRequired)

		_, err = annolab.NewPlanner(cfg, src, nil, led, strat)
		require.ErrorIs(t, err, annolab.ErrWorkerDirectoryRequired)

		_, err = annolab.NewPlanner(cfg, src, src, nil, strat)
		require.ErrorIs(t, err, annolab.ErrLedgerRequired)

		_, err = annolab.NewPlanner(cfg, src, src, led, nil)
		require.ErrorIs(t, err, annolab.ErrAssignmentStrategyRequired)
	})

	t.Run("invalid config", func(t *testing.T) {
		bad := annolab.TestConfig()
		bad.ReplicationFactor = -1
		_, err := annolab.NewPlanner(bad, src, src, led, strat)
		require.ErrorIs(t, err, annolab.ErrInvalidConfig)
	})

	t.Run("zero-value config gets defaults", func(t *testing.T) {
		planner, err := annolab.NewPlanner(annolab.Config{}, src, src, led, strat)
		require.NoError(t, err)
		require.NotNil(t, planner)
	})
}

func TestPlanner_PlanAnnotations(t *testing.T) {
	t.Run("round robin covers every task with the replication factor", func(t *testing.T) {
		src := makeFixture(4, 3, 0)
		planner, led := newPlannerFixture(t, src, 2, strategy.NewRoundRobin())
		ctx := t.Context()

		report, err := planner.PlanAnnotations(ctx, testProject)
		require.NoError(t, err)
		require.Equal(t, types.PurposeAnnotation, report.Purpose)
		require.Equal(t, "round_robin", report.Strategy)
		require.Equal(t, 8, report.Planned, "4 tasks x 2 annotators")
		require.Len(t, report.Assignments, 4)
		require.Empty(t, report.Failures)

		tasks, err := src.ListTasks(ctx, testProject)
		require.NoError(t, err)
		for _, task := range tasks {
			workers, err := led.WorkersFor(ctx, task.ID, types.PurposeAnnotation)
			require.NoError(t, err)
			require.Len(t, workers, 2, "task %s", task.ID)
		}
	})

	t.Run("replanning is a no-op", func(t *testing.T) {
		src := makeFixture(4, 3, 0)
		planner, _ := newPlannerFixture(t, src, 2, strategy.NewRoundRobin())
		ctx := t.Context()

		first, err := planner.PlanAnnotations(ctx, testProject)
		require.NoError(t, err)
		require.Equal(t, 8, first.Planned)

		second, err := planner.PlanAnnotations(ctx, testProject)
		require.NoError(t, err)
		require.Zero(t, second.Planned)
		require.Equal(t, 4, second.SkippedTasks, "every task is already fully assigned")
	})

	t.Run("new tasks are topped up without disturbing earlier assignments", func(t *testing.T) {
		src := makeFixture(2, 3, 0)
		planner, led := newPlannerFixture(t, src, 2, strategy.NewRoundRobin())
		ctx := t.Context()

		_, err := planner.PlanAnnotations(ctx, testProject)
		require.NoError(t, err)

		before, err := led.WorkersFor(ctx, "a-task", types.PurposeAnnotation)
		require.NoError(t, err)

		tasks, err := src.ListTasks(ctx, testProject)
		require.NoError(t, err)
		src.UpdateTasks(append(tasks, types.Task{ID: "z-task", ProjectID: testProject}))

		report, err := planner.PlanAnnotations(ctx, testProject)
		require.NoError(t, err)
		require.Equal(t, 2, report.Planned, "only the new task gains assignments")

		after, err := led.WorkersFor(ctx, "a-task", types.PurposeAnnotation)
		require.NoError(t, err)
		require.Equal(t, before, after)

		workers, err := led.WorkersFor(ctx, "z-task", types.PurposeAnnotation)
		require.NoError(t, err)
		require.Len(t, workers, 2)
	})

	t.Run("least loaded favors idle workers", func(t *testing.T) {
		src := makeFixture(2, 3, 0)
		planner, led := newPlannerFixture(t, src, 1, strategy.NewLeastLoaded())
		ctx := t.Context()

		// Pre-load one worker so the strategy steers around it.
		for _, taskID := range []string{"x0", "x1", "x2"} {
			_, err := led.Assign(ctx, taskID, "a-annotator", types.PurposeAnnotation)
			require.NoError(t, err)
		}

		report, err := planner.PlanAnnotations(ctx, testProject)
		require.NoError(t, err)
		require.Equal(t, "least_loaded", report.Strategy)
		require.Equal(t, 2, report.Planned)

		tasks, err := led.TasksFor(ctx, "a-annotator", types.PurposeAnnotation)
		require.NoError(t, err)
		require.Len(t, tasks, 3, "the busy worker gains nothing this pass")
	})

	t.Run("no eligible workers", func(t *testing.T) {
		src := makeFixture(2, 0, 1)
		planner, _ := newPlannerFixture(t, src, 1, strategy.NewRoundRobin())

		_, err := planner.PlanAnnotations(t.Context(), testProject)
		require.ErrorIs(t, err, annolab.ErrNoWorkers)
	})

	t.Run("replication beyond worker count is rejected", func(t *testing.T) {
		src := makeFixture(2, 2, 0)
		planner, _ := newPlannerFixture(t, src, 3, strategy.NewRoundRobin())

		_, err := planner.PlanAnnotations(t.Context(), testProject)
		require.ErrorIs(t, err, annolab.ErrReplicationExceedsWorkers)
	})

	t.Run("empty project plans nothing", func(t *testing.T) {
		src := makeFixture(0, 2, 0)
		planner, _ := newPlannerFixture(t, src, 1, strategy.NewRoundRobin())

		report, err := planner.PlanAnnotations(t.Context(), testProject)
		require.NoError(t, err)
		require.Zero(t, report.Planned)
	})
}

func TestPlanner_PlanReviews(t *testing.T) {
	src := makeFixture(3, 2, 2)
	planner, led := newPlannerFixture(t, src, 3, strategy.NewRoundRobin())
	ctx := t.Context()

	report, err := planner.PlanReviews(ctx, testProject)
	require.NoError(t, err)
	require.Equal(t, types.PurposeReview, report.Purpose)
	require.Equal(t, 3, report.Planned, "one reviewer per task regardless of replication factor")

	tasks, err := src.ListTasks(ctx, testProject)
	require.NoError(t, err)
	for _, task := range tasks {
		reviewers, err := led.WorkersFor(ctx, task.ID, types.PurposeReview)
		require.NoError(t, err)
		require.Len(t, reviewers, 1)
		require.Contains(t, reviewers[0], "reviewer", "annotator-only workers never review")
	}

	// Review planning leaves annotation assignments untouched.
	annotators, err := led.WorkersFor(ctx, tasks[0].ID, types.PurposeAnnotation)
	require.NoError(t, err)
	require.Empty(t, annotators)
}

type failingLedger struct {
	annolab.AssignmentLedger
	failWorker string
}

func (f *failingLedger) Assign(ctx context.Context, taskID, workerID string, purpose types.Purpose) (types.AssignmentRecord, error) {
	if workerID == f.failWorker {
		return types.AssignmentRecord{}, errors.New("store unavailable")
	}

	return f.AssignmentLedger.Assign(ctx, taskID, workerID, purpose)
}

func TestPlanner_PartialFailure(t *testing.T) {
	src := makeFixture(4, 2, 0)
	led, err := ledger.New(ledger.NewMemoryStore(), src, nil, nil)
	require.NoError(t, err)
	wrapped := &failingLedger{AssignmentLedger: led, failWorker: "b-annotator"}

	cfg := annolab.TestConfig()
	cfg.ProjectID = testProject
	cfg.ReplicationFactor = 1

	t.Run("failures are collected when the pass continues", func(t *testing.T) {
		cfg := cfg
		cfg.ContinueOnError = true
		planner, err := annolab.NewPlanner(cfg, src, src, wrapped, strategy.NewRoundRobin())
		require.NoError(t, err)

		report, err := planner.PlanAnnotations(t.Context(), testProject)
		require.NoError(t, err)
		require.Equal(t, 2, report.Planned)
		require.Len(t, report.Failures, 2)
		for _, failure := range report.Failures {
			require.Equal(t, "b-annotator", failure.WorkerID)
			require.Error(t, failure.Err)
		}
	})

	t.Run("first failure aborts when configured", func(t *testing.T) {
		cfg := cfg
		cfg.ContinueOnError = false
		planner, err := annolab.NewPlanner(cfg, src, src, wrapped, strategy.NewRoundRobin())
		require.NoError(t, err)

		_, err = planner.PlanAnnotations(t.Context(), testProject)
		require.Error(t, err)
	})
}

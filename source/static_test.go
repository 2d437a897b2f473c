package source

import (
	"testing"

	"github.com/annolab/annolab/types"
	"github.com/stretchr/testify/require"
)

func TestStatic_ListTasks(t *testing.T) {
	src := NewStatic([]types.Task{
		{ID: "t0", ProjectID: "p1"},
		{ID: "t1", ProjectID: "p2"},
		{ID: "t2", ProjectID: "p1"},
	}, nil)

	tasks, err := src.ListTasks(t.Context(), "p1")

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	require.Equal(t, "t0", tasks[0].ID, "input order must be preserved")
	require.Equal(t, "t2", tasks[1].ID)
}

func TestStatic_ListWorkers(t *testing.T) {
	src := NewStatic(nil, []types.Worker{
		{ID: "w0", Roles: types.NewRoleSet(types.RoleAnnotator)},
		{ID: "w1", Roles: types.NewRoleSet(types.RoleReviewer)},
		{ID: "w2", Roles: types.NewRoleSet(types.RoleAnnotator, types.RoleReviewer)},
	})

	annotators, err := src.ListWorkers(t.Context(), types.RoleAnnotator)
	require.NoError(t, err)
	require.Len(t, annotators, 2)
	require.Equal(t, "w0", annotators[0].ID)
	require.Equal(t, "w2", annotators[1].ID)

	reviewers, err := src.ListWorkers(t.Context(), types.RoleReviewer)
	require.NoError(t, err)
	require.Len(t, reviewers, 2)
	require.Equal(t, "w1", reviewers[0].ID)
}

func TestStatic_SubmitLabel_Upsert(t *testing.T) {
	src := NewStatic(nil, nil)

	src.SubmitLabel("t0", "w0", "cat")
	src.SubmitLabel("t0", "w1", "dog")
	// Second submission from the same worker overwrites, never duplicates.
	src.SubmitLabel("t0", "w0", "dog")

	labels, err := src.Labels(t.Context(), "t0")
	require.NoError(t, err)
	require.Len(t, labels, 2)

	byWorker := make(map[string]string)
	for _, l := range labels {
		byWorker[l.WorkerID] = l.Value
	}
	require.Equal(t, "dog", byWorker["w0"])
	require.Equal(t, "dog", byWorker["w1"])
}

func TestStatic_SubmitReview_Upsert(t *testing.T) {
	src := NewStatic(nil, nil)

	review, err := src.Review(t.Context(), "t0")
	require.NoError(t, err)
	require.Nil(t, review, "unreviewed task has no review")

	src.SubmitReview("t0", "r0", "cat")
	src.SubmitReview("t0", "r0", "dog")

	review, err = src.Review(t.Context(), "t0")
	require.NoError(t, err)
	require.NotNil(t, review)
	require.Equal(t, "dog", review.Value)
}

func TestStatic_UpdateTasks(t *testing.T) {
	src := NewStatic([]types.Task{{ID: "t0", ProjectID: "p1"}}, nil)

	src.UpdateTasks([]types.Task{
		{ID: "t0", ProjectID: "p1"},
		{ID: "t1", ProjectID: "p1"},
	})

	tasks, err := src.ListTasks(t.Context(), "p1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
}

package strategy

import (
	"testing"

	"github.com/annolab/annolab/types"
	"github.com/stretchr/testify/require"
)

func TestLeastLoaded_Assign(t *testing.T) {
	t.Run("prefers workers with the lowest current load", func(t *testing.T) {
		strat := NewLeastLoaded()
		tasks := makeTasks("t0", "t1", "t2")
		workers := []types.Candidate{
			{WorkerID: "w0", Load: 5},
			{WorkerID: "w1", Load: 0},
			{WorkerID: "w2", Load: 2},
		}

		assignments, err := strat.Assign(tasks, workers, 1)

		require.NoError(t, err)
		require.Equal(t, []string{"w1"}, assignments["t0"])
		require.Equal(t, []string{"w2"}, assignments["t1"])
		require.Equal(t, []string{"w0"}, assignments["t2"])
	})

	t.Run("breaks load ties by input order", func(t *testing.T) {
		strat := NewLeastLoaded()
		tasks := makeTasks("t0", "t1")
		workers := []types.Candidate{
			{WorkerID: "w0", Load: 1},
			{WorkerID: "w1", Load: 1},
		}

		assignments, err := strat.Assign(tasks, workers, 1)

		require.NoError(t, err)
		require.Equal(t, []string{"w0"}, assignments["t0"])
		require.Equal(t, []string{"w1"}, assignments["t1"])
	})

	t.Run("spreads assignments within one of each other", func(t *testing.T) {
		strat := NewLeastLoaded()
		tasks := make([]types.Task, 17)
		for i := range tasks {
			tasks[i] = types.Task{ID: string(rune('a' + i))}
		}
		workers := makeCandidates("w0", "w1", "w2", "w3", "w4")

		assignments, err := strat.Assign(tasks, workers, 1)
		require.NoError(t, err)

		counts := make(map[string]int)
		for _, replicas := range assignments {
			require.Len(t, replicas, 1, "least-loaded is single assignment")
			counts[replicas[0]]++
		}

		minCount, maxCount := len(tasks), 0
		for _, w := range workers {
			c := counts[w.WorkerID]
			if c < minCount {
				minCount = c
			}
			if c > maxCount {
				maxCount = c
			}
		}
		require.LessOrEqual(t, maxCount-minCount, 1)
	})

	t.Run("does not mutate the caller's candidate slice", func(t *testing.T) {
		strat := NewLeastLoaded()
		workers := []types.Candidate{
			{WorkerID: "w0", Load: 3},
			{WorkerID: "w1", Load: 1},
		}

		_, err := strat.Assign(makeTasks("t0", "t1", "t2"), workers, 1)

		require.NoError(t, err)
		require.Equal(t, 3, workers[0].Load)
		require.Equal(t, 1, workers[1].Load)
		require.Equal(t, "w0", workers[0].WorkerID)
	})

	t.Run("returns empty mapping when no workers available", func(t *testing.T) {
		strat := NewLeastLoaded()

		assignments, err := strat.Assign(makeTasks("t0"), nil, 1)

		require.NoError(t, err)
		require.Empty(t, assignments)
	})
}

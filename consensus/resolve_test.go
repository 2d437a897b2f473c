package consensus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("unique majority wins", func(t *testing.T) {
		decision := Resolve([]string{"cat", "cat", "dog"}, "")

		require.Equal(t, OutcomeDecided, decision.Outcome)
		require.Equal(t, "cat", decision.Value)
		require.Equal(t, []string{"cat"}, decision.Candidates)
		require.True(t, decision.Resolved())
	})

	t.Run("tie requires review and is never guessed", func(t *testing.T) {
		decision := Resolve([]string{"cat", "dog"}, "")

		require.Equal(t, OutcomeRequiresReview, decision.Outcome)
		require.Empty(t, decision.Value)
		require.Equal(t, []string{"cat", "dog"}, decision.Candidates)
		require.False(t, decision.Resolved())
	})

	t.Run("three-way tie lists all candidates sorted", func(t *testing.T) {
		decision := Resolve([]string{"fox", "cat", "dog"}, "")

		require.Equal(t, OutcomeRequiresReview, decision.Outcome)
		require.Equal(t, []string{"cat", "dog", "fox"}, decision.Candidates)
	})

	t.Run("review overrides annotation consensus verbatim", func(t *testing.T) {
		decision := Resolve([]string{"cat", "cat", "dog"}, "dog")

		require.Equal(t, OutcomeReviewed, decision.Outcome)
		require.Equal(t, "dog", decision.Value)
	})

	t.Run("review overrides even a tie", func(t *testing.T) {
		decision := Resolve([]string{"cat", "dog"}, "cat")

		require.Equal(t, OutcomeReviewed, decision.Outcome)
		require.Equal(t, "cat", decision.Value)
	})

	t.Run("review decides an unlabeled task", func(t *testing.T) {
		decision := Resolve(nil, "cat")

		require.Equal(t, OutcomeReviewed, decision.Outcome)
		require.Equal(t, "cat", decision.Value)
	})

	t.Run("empty labels yield no decision", func(t *testing.T) {
		decision := Resolve(nil, "")

		require.Equal(t, OutcomeNoLabels, decision.Outcome)
		require.Empty(t, decision.Value)
		require.Empty(t, decision.Candidates)
		require.Empty(t, decision.Scores)
	})

	t.Run("single label decides", func(t *testing.T) {
		decision := Resolve([]string{"cat"}, "")

		require.Equal(t, OutcomeDecided, decision.Outcome)
		require.Equal(t, "cat", decision.Value)
		require.InDelta(t, 1.0, decision.Scores["cat"], 1e-9)
	})
}

func TestResolve_AgreementScores(t *testing.T) {
	t.Run("scores cover every observed value rounded to 2dp", func(t *testing.T) {
		decision := Resolve([]string{"a", "a", "b"}, "")

		require.Len(t, decision.Scores, 2)
		require.InDelta(t, 0.67, decision.Scores["a"], 1e-9)
		require.InDelta(t, 0.33, decision.Scores["b"], 1e-9)
	})

	t.Run("scores include non-candidate values", func(t *testing.T) {
		decision := Resolve([]string{"a", "a", "a", "b", "c", "c"}, "")

		require.Equal(t, OutcomeDecided, decision.Outcome)
		require.InDelta(t, 0.5, decision.Scores["a"], 1e-9)
		require.InDelta(t, 0.17, decision.Scores["b"], 1e-9)
		require.InDelta(t, 0.33, decision.Scores["c"], 1e-9)
	})

	t.Run("scores are computed alongside a review override", func(t *testing.T) {
		decision := Resolve([]string{"cat", "cat", "dog"}, "dog")

		require.InDelta(t, 0.67, decision.Scores["cat"], 1e-9)
		require.InDelta(t, 0.33, decision.Scores["dog"], 1e-9)
	})
}

func TestResolve_Deterministic(t *testing.T) {
	labels := []string{"dog", "cat", "cat", "dog", "fox"}

	first := Resolve(labels, "")
	for range 20 {
		require.Equal(t, first, Resolve(labels, ""))
	}
}

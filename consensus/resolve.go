package consensus

import (
	"math"
	"sort"
)

// Outcome classifies how a decision was reached.
type Outcome string

// Resolution outcomes.
const (
	// OutcomeDecided means a unique majority value was found.
	OutcomeDecided Outcome = "decided"

	// OutcomeReviewed means an authoritative review overrode the label set.
	OutcomeReviewed Outcome = "reviewed"

	// OutcomeRequiresReview means two or more values tied for the highest
	// frequency; the decision is deferred to a human reviewer.
	OutcomeRequiresReview Outcome = "requires_review"

	// OutcomeNoLabels means no labels have been submitted yet.
	OutcomeNoLabels Outcome = "no_labels"
)

// Decision is the result of resolving one task's labels.
//
// A tie is a defined outcome, not an error: callers branch on Outcome.
type Decision struct {
	// Outcome classifies the resolution.
	Outcome Outcome `json:"outcome"`

	// Value is the resolved final label. Empty unless Outcome is
	// OutcomeDecided or OutcomeReviewed.
	Value string `json:"value,omitempty"`

	// Candidates holds the values tied for the highest frequency, sorted
	// for deterministic output. It has one element for a clean majority.
	Candidates []string `json:"candidates,omitempty"`

	// Scores maps every observed label value to its agreement ratio
	// (count/total, rounded to 2 decimal digits).
	Scores map[string]float64 `json:"scores,omitempty"`
}

// Resolved reports whether the decision carries a final value.
func (d Decision) Resolved() bool {
	return d.Outcome == OutcomeDecided || d.Outcome == OutcomeReviewed
}

// Resolve computes the final decision for one task.
//
// A non-empty review short-circuits resolution: the reviewer is a
// higher-trust authority and the review value is returned verbatim.
// Agreement scores are still computed over the label set so reports can show
// what the annotators said alongside the override.
//
// Parameters:
//   - labels: Submitted label values, may be empty; order does not matter
//   - review: Authoritative review value, empty string when absent
//
// Returns:
//   - Decision: The resolution outcome with agreement score breakdown
func Resolve(labels []string, review string) Decision {
	scores, candidates := tally(labels)

	if review != "" {
		return Decision{
			Outcome:    OutcomeReviewed,
			Value:      review,
			Candidates: candidates,
			Scores:     scores,
		}
	}

	if len(labels) == 0 {
		return Decision{Outcome: OutcomeNoLabels}
	}

	if len(candidates) == 1 {
		return Decision{
			Outcome:    OutcomeDecided,
			Value:      candidates[0],
			Candidates: candidates,
			Scores:     scores,
		}
	}

	return Decision{
		Outcome:    OutcomeRequiresReview,
		Candidates: candidates,
		Scores:     scores,
	}
}

// tally computes per-value agreement ratios and the set of values tied for
// the highest frequency, sorted for deterministic output.
func tally(labels []string) (scores map[string]float64, candidates []string) {
	if len(labels) == 0 {
		return nil, nil
	}

	counts := make(map[string]int, len(labels))
	for _, value := range labels {
		counts[value]++
	}

	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	total := float64(len(labels))
	scores = make(map[string]float64, len(counts))
	for value, count := range counts {
		scores[value] = math.Round(float64(count)/total*100) / 100
		if count == maxCount {
			candidates = append(candidates, value)
		}
	}
	sort.Strings(candidates)

	return scores, candidates
}

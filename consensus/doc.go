// Package consensus reconciles independent labels into one final decision.
//
// Resolution is a pure function of a task's current label set plus an
// optional authoritative review: it has no side effects, is safe for
// concurrent use, and can be re-derived at any time from stored labels.
//
// The rules, in order:
//  1. A review overrides everything and is returned verbatim.
//  2. An empty label set yields no decision.
//  3. A unique most-frequent value wins.
//  4. A tie between most-frequent values is never guessed; the task is
//     flagged as requiring human review.
//
// Alongside the decision, every resolution reports per-value agreement
// ratios for diagnostics and export.
package consensus

// Package types defines the core data model and narrow interfaces shared by
// the annolab packages.
//
// The types package sits at the bottom of the dependency graph: every other
// package (strategy, consensus, ledger, stores) depends on it, and it depends
// on nothing inside the module. This keeps store backends and strategies
// swappable without import cycles.
//
// Core types:
//   - Task: a unit of labeling work (one image plus metadata)
//   - Worker: a person holding one or more roles (annotator, reviewer, admin)
//   - AssignmentRecord: a (task, worker, purpose) bookkeeping entry
//   - Label / Review: submissions produced by workers
//   - Candidate: a worker plus its current workload, input to strategies
//
// Interfaces:
//   - TaskSource, WorkerDirectory, LabelStore: external collaborators that
//     supply tasks, workers, and submissions
//   - AssignmentStore: durable backing store for assignment records
//   - AssignmentStrategy: pluggable planning algorithm
//   - Logger, MetricsCollector: ambient observability contracts
package types

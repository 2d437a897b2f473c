// Package annolab provides the core of a data-labeling platform: planning
// which workers annotate or review which tasks, durable assignment
// bookkeeping, and majority-vote consensus over the submitted labels.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import (
//	    "github.com/annolab/annolab"
//	    "github.com/annolab/annolab/ledger"
//	    "github.com/annolab/annolab/source"
//	    "github.com/annolab/annolab/strategy"
//	)
//
//	src := source.NewStatic(tasks, workers)
//	led, _ := ledger.New(ledger.NewMemoryStore(), src, nil, nil)
//
//	planner, _ := annolab.NewPlanner(annolab.DefaultConfig(),
//	    src, src, led, strategy.NewRoundRobin())
//
//	report, err := planner.PlanAnnotations(ctx, "project-1")
//
// # Key Features
//
//   - Pluggable Strategies: Deterministic round-robin replication or
//     workload-balanced single assignment, behind one interface
//   - Idempotent Bookkeeping: At most one assignment record per
//     (task, worker, purpose) triple, re-planning is always safe
//   - Derived Completion: A task is complete for a worker when a submission
//     exists, joined on demand rather than stored
//   - Consensus Resolution: Majority vote with two-decimal agreement scores,
//     ties flagged for review, reviewer submissions authoritative
//
// # Architecture
//
// A planning pass is read-compute-write:
//
//	TaskSource + WorkerDirectory → AssignmentStrategy → Ledger
//
// Strategies are pure functions over a snapshot of tasks, workers and
// workloads; all persistence flows through the ledger, whose backing stores
// (in-memory, NATS JetStream KV, MongoDB) provide the at-most-once insert.
// Consensus is resolved independently from the stored labels and reviews and
// can be recomputed at any time.
//
// # Storage Backends
//
//	ledger.NewMemoryStore()        // tests, single process
//	natskv.New(ctx, js, bucket)    // NATS JetStream KV
//	mongo.New(ctx, client, db)     // MongoDB
//
// See the examples directory for a complete wiring example.
package annolab

// Package strategy provides built-in assignment strategy implementations.
//
// Assignment strategies determine how tasks are distributed across workers.
// The package includes two built-in strategies:
//
//   - RoundRobin: Deterministic replicated round-robin (recommended when each
//     task needs several independent annotators)
//   - LeastLoaded: Load-balanced single assignment (recommended when workers
//     carry uneven pre-existing workloads)
//
// # Strategy Selection Guide
//
// RoundRobin:
//   - Use when tasks need a fixed replication factor of annotators
//   - Fully deterministic: a function of list positions only
//   - Never assigns the same worker twice to one task unless replica overlap
//     is explicitly enabled
//
// LeastLoaded:
//   - Use for single-annotator projects with uneven existing workloads
//   - Orders workers by current load, ties broken by input order
//   - Guarantees a max-min assignment spread of at most 1 per pass when
//     starting loads are equal
//
// Custom strategies can be implemented by satisfying the
// types.AssignmentStrategy interface.
package strategy

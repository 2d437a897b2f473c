package annolab

import "github.com/annolab/annolab/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal
// packages to depend on `types` without depending on the root `annolab`
// package, while still providing a convenient `annolab.Task`,
// `annolab.Logger`, etc. for users.
type (
	Task             = types.Task
	Worker           = types.Worker
	Role             = types.Role
	RoleSet          = types.RoleSet
	Purpose          = types.Purpose
	AssignmentRecord = types.AssignmentRecord
	Candidate        = types.Candidate
	Label            = types.Label
	Review           = types.Review
)

// Re-export interfaces from the internal types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	AssignmentStore    = types.AssignmentStore
	TaskSource         = types.TaskSource
	WorkerDirectory    = types.WorkerDirectory
	LabelStore         = types.LabelStore
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
)

// Re-export role and purpose constants from the internal types package.
const (
	RoleAnnotator = types.RoleAnnotator
	RoleReviewer  = types.RoleReviewer
	RoleAdmin     = types.RoleAdmin

	PurposeAnnotation = types.PurposeAnnotation
	PurposeReview     = types.PurposeReview
)

package types

import "context"

// WorkerDirectory provides the set of workers holding a given role.
//
// The directory is the system of record for who may annotate or review.
// The Planner calls ListWorkers once per planning pass with the role implied
// by the assignment purpose.
type WorkerDirectory interface {
	// ListWorkers returns all workers holding the role.
	//
	// Implementations must return workers in a stable order across calls
	// within one planning operation; round-robin assignment is a function of
	// list position.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - role: Required role (RoleAnnotator or RoleReviewer)
	//
	// Returns:
	//   - []Worker: Ordered list of workers holding the role
	//   - error: Lookup error (nil on success)
	ListWorkers(ctx context.Context, role Role) ([]Worker, error)
}

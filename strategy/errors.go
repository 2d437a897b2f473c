package strategy

import "github.com/annolab/annolab/types"

// Errors returned by the built-in strategies. These alias the shared
// sentinels so callers can check with errors.Is against either package.
var (
	// ErrNoWorkers indicates that no workers were provided for assignment.
	ErrNoWorkers = types.ErrNoWorkers

	// ErrInvalidReplication indicates a non-positive replication factor.
	ErrInvalidReplication = types.ErrInvalidReplication

	// ErrReplicationExceedsWorkers indicates the replication factor exceeds
	// the worker count while replica overlap is disabled.
	ErrReplicationExceedsWorkers = types.ErrReplicationExceedsWorkers
)

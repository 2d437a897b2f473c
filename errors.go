package annolab

import "github.com/annolab/annolab/types"

// Re-exported sentinel errors so callers can match planner failures without
// importing the types package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrTaskSourceRequired is returned when the task source is nil.
	ErrTaskSourceRequired = types.ErrTaskSourceRequired

	// ErrWorkerDirectoryRequired is returned when the worker directory is nil.
	ErrWorkerDirectoryRequired = types.ErrWorkerDirectoryRequired

	// ErrLedgerRequired is returned when the ledger is nil.
	ErrLedgerRequired = types.ErrLedgerRequired

	// ErrAssignmentStrategyRequired is returned when the strategy is nil.
	ErrAssignmentStrategyRequired = types.ErrAssignmentStrategyRequired

	// ErrNoWorkers is returned when planning is attempted with no eligible workers.
	ErrNoWorkers = types.ErrNoWorkers

	// ErrReplicationExceedsWorkers is returned when the replication factor
	// exceeds the eligible worker count and replica overlap is not allowed.
	ErrReplicationExceedsWorkers = types.ErrReplicationExceedsWorkers
)

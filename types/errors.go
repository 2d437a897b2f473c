package types

import "errors"

// Sentinel errors for the annolab library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). All components should use these sentinel errors for known
// error conditions and wrap external errors with context using
// fmt.Errorf("%s: %w", msg, err).

// Planner errors - Public API errors returned by the Planner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrTaskSourceRequired is returned when the task source is nil.
	ErrTaskSourceRequired = errors.New("task source is required")

	// ErrWorkerDirectoryRequired is returned when the worker directory is nil.
	ErrWorkerDirectoryRequired = errors.New("worker directory is required")

	// ErrLedgerRequired is returned when the ledger is nil.
	ErrLedgerRequired = errors.New("assignment ledger is required")

	// ErrAssignmentStrategyRequired is returned when the strategy is nil.
	ErrAssignmentStrategyRequired = errors.New("assignment strategy is required")

	// ErrNoWorkers is returned when planning is attempted with no workers.
	ErrNoWorkers = errors.New("no workers available for assignment")

	// ErrInvalidReplication is returned for a non-positive replication factor.
	ErrInvalidReplication = errors.New("replication factor must be >= 1")

	// ErrReplicationExceedsWorkers is returned when the replication factor
	// exceeds the worker count and replica overlap is not allowed.
	ErrReplicationExceedsWorkers = errors.New("replication factor exceeds worker count")
)

// Ledger errors - errors returned by the assignment ledger and its stores.
var (
	// ErrInvalidPurpose is returned when a purpose is not annotation or review.
	ErrInvalidPurpose = errors.New("invalid assignment purpose")

	// ErrEmptyTaskID is returned when a task ID is empty.
	ErrEmptyTaskID = errors.New("task ID must not be empty")

	// ErrEmptyWorkerID is returned when a worker ID is empty.
	ErrEmptyWorkerID = errors.New("worker ID must not be empty")

	// ErrStoreRequired is returned when a ledger is built without a backing store.
	ErrStoreRequired = errors.New("assignment store is required")
)

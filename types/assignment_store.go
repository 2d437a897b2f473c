package types

import "context"

// AssignmentStore is the durable backing store for assignment records.
//
// Implementations must provide at-most-once-per-triple creation under
// concurrent Insert calls targeting the same (task, worker, purpose), either
// through a storage-level unique constraint (recommended) or an atomic
// create-if-absent primitive. The Ledger builds its idempotent contract on
// top of this guarantee.
type AssignmentStore interface {
	// Insert persists the record unless one already exists for the same
	// (task, worker, purpose) triple.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - rec: Record to persist (ID and CreatedAt already populated)
	//
	// Returns:
	//   - AssignmentRecord: The stored record; the pre-existing one when the
	//     triple was already assigned
	//   - bool: true if a new record was created, false if one already existed
	//   - error: Storage error (nil on success)
	Insert(ctx context.Context, rec AssignmentRecord) (AssignmentRecord, bool, error)

	// Remove deletes the record for the triple.
	//
	// Returns:
	//   - bool: true if a record was removed, false if none existed
	//   - error: Storage error (nil on success)
	Remove(ctx context.Context, taskID, workerID string, purpose Purpose) (bool, error)

	// ByTask returns all records for the task and purpose.
	ByTask(ctx context.Context, taskID string, purpose Purpose) ([]AssignmentRecord, error)

	// ByWorker returns all records for the worker and purpose.
	ByWorker(ctx context.Context, workerID string, purpose Purpose) ([]AssignmentRecord, error)
}

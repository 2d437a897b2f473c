package types

import "context"

// LabelStore provides read access to submitted labels and reviews.
//
// The store enforces upsert semantics on write (one label per task/worker
// pair); the core only reads. Consensus resolution and completion checks are
// pure functions of the store's current contents and are re-derivable at any
// time.
type LabelStore interface {
	// Labels returns all labels submitted for the task, one per annotator.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - taskID: Task identifier
	//
	// Returns:
	//   - []Label: Submitted labels (empty slice when none)
	//   - error: Lookup error (nil on success)
	Labels(ctx context.Context, taskID string) ([]Label, error)

	// Review returns the authoritative review for the task, or nil when the
	// task has not been reviewed.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - taskID: Task identifier
	//
	// Returns:
	//   - *Review: The review, or nil when absent
	//   - error: Lookup error (nil on success)
	Review(ctx context.Context, taskID string) (*Review, error)
}

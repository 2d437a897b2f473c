package types

import "context"

// TaskSource provides the list of tasks belonging to a project.
//
// Implementations can query various backends:
//   - MongoDB: the project's task collection
//   - Static: fixed list for testing and known-at-import scenarios
//   - Custom: any task discovery logic
//
// The Planner calls ListTasks once at the start of each planning pass.
type TaskSource interface {
	// ListTasks returns all tasks for the project.
	//
	// Implementations must:
	//   - Return tasks in a stable order across calls within one planning
	//     operation (assignment determinism depends on it)
	//   - Handle context cancellation gracefully
	//   - Return errors for transient failures (the caller may retry)
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//   - projectID: Owning project identifier
	//
	// Returns:
	//   - []Task: Ordered list of the project's tasks
	//   - error: Discovery error (nil on success)
	ListTasks(ctx context.Context, projectID string) ([]Task, error)
}

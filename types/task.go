package types

// Task represents one unit of labeling work.
//
// A task is typically a single image that needs one or more independent
// labels. Tasks are created on import, owned by a project, and identified by
// a stable string ID that never changes after creation.
type Task struct {
	// ID uniquely identifies the task within its project.
	ID string `json:"id" bson:"_id"`

	// ProjectID identifies the owning project.
	ProjectID string `json:"projectId" bson:"projectId"`

	// PayloadRef locates the task payload (e.g., a GCS or S3 image URI).
	PayloadRef string `json:"payloadRef" bson:"payloadRef"`

	// Metadata carries arbitrary additional key/value attributes.
	Metadata map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// Compare performs a lexicographic comparison of task IDs.
//
// Returns:
//   - int: -1 if t < u, 0 if equal, +1 if t > u
func (t Task) Compare(u Task) int {
	switch {
	case t.ID < u.ID:
		return -1
	case t.ID > u.ID:
		return 1
	default:
		return 0
	}
}

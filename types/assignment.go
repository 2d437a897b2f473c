package types

import "time"

// Purpose is the role context of an assignment.
//
// Annotation assignments and review assignments are independent sets over the
// same task/worker universe: assigning a worker to annotate a task says
// nothing about whether anyone reviews it.
type Purpose string

// Assignment purposes.
const (
	PurposeAnnotation Purpose = "annotation"
	PurposeReview     Purpose = "review"
)

// Valid reports whether the purpose is one of the recognized purposes.
func (p Purpose) Valid() bool {
	return p == PurposeAnnotation || p == PurposeReview
}

// Role returns the worker role required to act on assignments of this purpose.
func (p Purpose) Role() Role {
	if p == PurposeReview {
		return RoleReviewer
	}

	return RoleAnnotator
}

// AssignmentRecord is the durable bookkeeping entry recording that a worker
// is assigned to a task for a purpose.
//
// At most one record exists per (task, worker, purpose) triple. Re-assigning
// an existing triple returns the original record unchanged.
type AssignmentRecord struct {
	// ID is a unique record identifier, generated on creation.
	ID string `json:"id" bson:"recordId"`

	// TaskID identifies the assigned task.
	TaskID string `json:"taskId" bson:"taskId"`

	// WorkerID identifies the assigned worker.
	WorkerID string `json:"workerId" bson:"workerId"`

	// Purpose is the assignment purpose (annotation or review).
	Purpose Purpose `json:"purpose" bson:"purpose"`

	// CreatedAt is when the record was first created. It is preserved across
	// idempotent re-assignment.
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Candidate pairs a worker ID with its current workload, the input unit for
// assignment strategies.
//
// Load is the number of tasks currently assigned to the worker for the
// purpose being planned. It is read once from the ledger at the start of a
// planning pass; strategies track increments locally and never requery
// storage mid-pass.
type Candidate struct {
	// WorkerID identifies the worker.
	WorkerID string `json:"workerId"`

	// Load is the worker's current assigned-task count.
	Load int `json:"load"`
}

package types

import "time"

// Label is an annotation submitted by a worker for a task.
//
// At most one label exists per (task, worker) pair: a second submission from
// the same worker overwrites the first (upsert), never creating duplicate
// history. Upsert semantics are enforced by the LabelStore implementation.
type Label struct {
	// TaskID identifies the labeled task.
	TaskID string `json:"taskId" bson:"taskId"`

	// WorkerID identifies the submitting annotator.
	WorkerID string `json:"workerId" bson:"workerId"`

	// Value is the submitted label value (an opaque comparable token).
	Value string `json:"value" bson:"value"`

	// UpdatedAt is when the label was last written.
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Review is a reviewer's submission for a task. It carries the same upsert
// semantics as Label and acts as an authoritative override candidate during
// consensus resolution.
type Review struct {
	// TaskID identifies the reviewed task.
	TaskID string `json:"taskId" bson:"taskId"`

	// WorkerID identifies the submitting reviewer.
	WorkerID string `json:"workerId" bson:"workerId"`

	// Value is the authoritative review value.
	Value string `json:"value" bson:"value"`

	// UpdatedAt is when the review was last written.
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Package ledger records which worker is assigned to which task for which
// purpose.
//
// The Ledger wraps a types.AssignmentStore with the domain contract:
// idempotent assignment (re-assigning an existing triple returns the
// original record, never an error), worker-specific unassignment, and the
// two query directions (workers for a task, tasks for a worker). Completion
// is derived by joining against the label store, never stored on the
// assignment record itself.
//
// Storage backends provide the at-most-once-per-triple guarantee:
//   - MemoryStore (this package): atomic load-or-store on a concurrent map
//   - ledger/natskv: NATS JetStream KV create-if-absent
//   - store/mongo: unique compound index
package ledger

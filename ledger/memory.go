package ledger

import (
	"context"
	"fmt"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/annolab/annolab/types"
)

// MemoryStore is an in-memory AssignmentStore.
//
// The at-most-once-per-triple guarantee comes from the atomic load-or-store
// on the underlying concurrent map, so concurrent Insert calls for the same
// triple settle on one record. Useful for tests and single-process
// deployments; production systems usually want ledger/natskv or store/mongo.
type MemoryStore struct {
	records *xsync.Map[string, types.AssignmentRecord]
}

var _ types.AssignmentStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory assignment store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: xsync.NewMap[string, types.AssignmentRecord]()}
}

func tripleKey(taskID, workerID string, purpose types.Purpose) string {
	return fmt.Sprintf("%s/%s/%s", purpose, taskID, workerID)
}

// Insert stores the record unless the triple already exists.
func (s *MemoryStore) Insert(_ context.Context, rec types.AssignmentRecord) (types.AssignmentRecord, bool, error) {
	stored, loaded := s.records.LoadOrStore(tripleKey(rec.TaskID, rec.WorkerID, rec.Purpose), rec)

	return stored, !loaded, nil
}

// Remove deletes the record for the triple.
func (s *MemoryStore) Remove(_ context.Context, taskID, workerID string, purpose types.Purpose) (bool, error) {
	_, existed := s.records.LoadAndDelete(tripleKey(taskID, workerID, purpose))

	return existed, nil
}

// ByTask returns all records for the task and purpose.
func (s *MemoryStore) ByTask(_ context.Context, taskID string, purpose types.Purpose) ([]types.AssignmentRecord, error) {
	var result []types.AssignmentRecord
	s.records.Range(func(_ string, rec types.AssignmentRecord) bool {
		if rec.TaskID == taskID && rec.Purpose == purpose {
			result = append(result, rec)
		}

		return true
	})

	return result, nil
}

// ByWorker returns all records for the worker and purpose.
func (s *MemoryStore) ByWorker(_ context.Context, workerID string, purpose types.Purpose) ([]types.AssignmentRecord, error) {
	var result []types.AssignmentRecord
	s.records.Range(func(_ string, rec types.AssignmentRecord) bool {
		if rec.WorkerID == workerID && rec.Purpose == purpose {
			result = append(result, rec)
		}

		return true
	})

	return result, nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	return s.records.Size()
}

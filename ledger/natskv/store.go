// Package natskv implements types.AssignmentStore on a NATS JetStream
// KeyValue bucket.
//
// Each assignment record lives under the key <purpose>.<task>.<worker>, so
// the two query directions are per-token wildcard scans: "annotation.t0.*"
// lists the workers on a task and "annotation.*.w0" lists a worker's tasks.
// The at-most-once-per-triple guarantee comes from KV Create, which fails
// when the key already holds a value.
package natskv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/annolab/annolab/internal/kvutil"
	"github.com/annolab/annolab/types"
)

// DefaultBucket is the bucket name used when none is configured.
const DefaultBucket = "annolab-assignments"

// ErrUnkeyableID is returned when a task or worker ID contains characters
// that cannot appear in a KV key token.
var ErrUnkeyableID = errors.New("id contains characters not allowed in a KV key")

// Store is a NATS JetStream KV backed assignment store.
type Store struct {
	kv jetstream.KeyValue
}

var _ types.AssignmentStore = (*Store)(nil)

// New creates or opens the named KV bucket and returns a store over it.
//
// Parameters:
//   - ctx: Context for bucket creation
//   - js: JetStream context
//   - bucket: Bucket name (empty for DefaultBucket)
//
// Returns:
//   - *Store: Initialized store
//   - error: Bucket creation/open failure
func New(ctx context.Context, js jetstream.JetStream, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}

	kv, err := kvutil.EnsureBucketWithRetry(ctx, js, jetstream.KeyValueConfig{
		Bucket:      bucket,
		Description: "annolab assignment records",
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to open assignment bucket: %w", err)
	}

	return &Store{kv: kv}, nil
}

// NewWithBucket wraps an existing KV bucket. Used by tests that manage the
// bucket lifecycle themselves.
func NewWithBucket(kv jetstream.KeyValue) *Store {
	return &Store{kv: kv}
}

// Insert stores the record unless the triple already exists. When the key is
// already present the stored record is returned with created=false.
func (s *Store) Insert(ctx context.Context, rec types.AssignmentRecord) (types.AssignmentRecord, bool, error) {
	key, err := tripleKey(rec.TaskID, rec.WorkerID, rec.Purpose)
	if err != nil {
		return types.AssignmentRecord{}, false, err
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return types.AssignmentRecord{}, false, fmt.Errorf("failed to encode assignment record: %w", err)
	}

	_, err = s.kv.Create(ctx, key, data)
	if err == nil {
		return rec, true, nil
	}
	if !errors.Is(err, jetstream.ErrKeyExists) {
		return types.AssignmentRecord{}, false, fmt.Errorf("failed to create key %s: %w", key, err)
	}

	// Lost the race or re-assigned: hand back whatever is stored.
	existing, err := s.get(ctx, key)
	if err != nil {
		return types.AssignmentRecord{}, false, err
	}

	return existing, false, nil
}

// Remove deletes the record for the triple. Deleting an absent key reports
// existed=false without error.
func (s *Store) Remove(ctx context.Context, taskID, workerID string, purpose types.Purpose) (bool, error) {
	key, err := tripleKey(taskID, workerID, purpose)
	if err != nil {
		return false, err
	}

	if _, err := s.kv.Get(ctx, key); err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("failed to load key %s: %w", key, err)
	}

	if err := s.kv.Purge(ctx, key); err != nil {
		return false, fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return true, nil
}

// ByTask returns all records for the task and purpose.
func (s *Store) ByTask(ctx context.Context, taskID string, purpose types.Purpose) ([]types.AssignmentRecord, error) {
	if err := validToken(taskID); err != nil {
		return nil, err
	}

	return s.scan(ctx, fmt.Sprintf("%s.%s.*", purpose, taskID))
}

// ByWorker returns all records for the worker and purpose.
func (s *Store) ByWorker(ctx context.Context, workerID string, purpose types.Purpose) ([]types.AssignmentRecord, error) {
	if err := validToken(workerID); err != nil {
		return nil, err
	}

	return s.scan(ctx, fmt.Sprintf("%s.*.%s", purpose, workerID))
}

func (s *Store) scan(ctx context.Context, filter string) ([]types.AssignmentRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	lister, err := s.kv.ListKeysFiltered(ctx, filter)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to list keys for %s: %w", filter, err)
	}

	var records []types.AssignmentRecord
	for key := range lister.Keys() {
		rec, err := s.get(ctx, key)
		if err != nil {
			// The key may have been unassigned between listing and reading.
			if errors.Is(err, jetstream.ErrKeyNotFound) {
				continue
			}

			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

func (s *Store) get(ctx context.Context, key string) (types.AssignmentRecord, error) {
	entry, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return types.AssignmentRecord{}, err
		}

		return types.AssignmentRecord{}, fmt.Errorf("failed to load key %s: %w", key, err)
	}

	var rec types.AssignmentRecord
	if err := json.Unmarshal(entry.Value(), &rec); err != nil {
		return types.AssignmentRecord{}, fmt.Errorf("failed to decode record at key %s: %w", key, err)
	}

	return rec, nil
}

// tripleKey builds the KV key for a triple. Dots separate the key tokens, so
// IDs containing dots or subject wildcards are rejected up front rather than
// silently corrupting the layout.
func tripleKey(taskID, workerID string, purpose types.Purpose) (string, error) {
	if err := validToken(taskID); err != nil {
		return "", err
	}
	if err := validToken(workerID); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s.%s.%s", purpose, taskID, workerID), nil
}

func validToken(id string) error {
	if id == "" || strings.ContainsAny(id, ".*> ") {
		return fmt.Errorf("%w: %q", ErrUnkeyableID, id)
	}

	return nil
}

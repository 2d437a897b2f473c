// Package mongo implements the annolab persistence interfaces on MongoDB.
//
// Assignments live in one collection guarded by a unique compound index on
// (purpose, taskId, workerId), which is what makes Insert at-most-once per
// triple. Labels and reviews are upserted by their natural keys, so a second
// submission from the same worker replaces the first instead of accumulating
// history.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/annolab/annolab/types"
)

// Collection names within the configured database.
const (
	assignmentsCollection = "assignments"
	labelsCollection      = "labels"
	reviewsCollection     = "reviews"
)

// Store provides assignment, label and review persistence backed by MongoDB.
// It implements types.AssignmentStore and types.LabelStore.
type Store struct {
	assignments *mongo.Collection
	labels      *mongo.Collection
	reviews     *mongo.Collection
}

var (
	_ types.AssignmentStore = (*Store)(nil)
	_ types.LabelStore      = (*Store)(nil)
)

// New creates a store over the given database and ensures its indexes.
//
// Parameters:
//   - ctx: Context for index creation
//   - client: Connected MongoDB client
//   - database: Database name (empty for "annolab")
//
// Returns:
//   - *Store: Initialized store
//   - error: Index creation failure
func New(ctx context.Context, client *mongo.Client, database string) (*Store, error) {
	if database == "" {
		database = "annolab"
	}

	db := client.Database(database)
	s := &Store{
		assignments: db.Collection(assignmentsCollection),
		labels:      db.Collection(labelsCollection),
		reviews:     db.Collection(reviewsCollection),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)

	_, err := s.assignments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "purpose", Value: 1}, {Key: "taskId", Value: 1}, {Key: "workerId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to create assignments index: %w", err)
	}

	_, err = s.labels.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "taskId", Value: 1}, {Key: "workerId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to create labels index: %w", err)
	}

	_, err = s.reviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "taskId", Value: 1}},
		Options: unique,
	})
	if err != nil {
		return fmt.Errorf("failed to create reviews index: %w", err)
	}

	return nil
}

// Insert stores the record unless the triple already exists. The unique
// compound index turns a concurrent duplicate into a key violation, and the
// loser reads back the winner's record.
func (s *Store) Insert(ctx context.Context, rec types.AssignmentRecord) (types.AssignmentRecord, bool, error) {
	_, err := s.assignments.InsertOne(ctx, rec)
	if err == nil {
		return rec, true, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return types.AssignmentRecord{}, false, fmt.Errorf("failed to insert assignment: %w", err)
	}

	var existing types.AssignmentRecord
	filter := bson.M{"purpose": rec.Purpose, "taskId": rec.TaskID, "workerId": rec.WorkerID}
	if err := s.assignments.FindOne(ctx, filter).Decode(&existing); err != nil {
		return types.AssignmentRecord{}, false, fmt.Errorf("failed to load existing assignment: %w", err)
	}

	return existing, false, nil
}

// Remove deletes the record for the triple.
func (s *Store) Remove(ctx context.Context, taskID, workerID string, purpose types.Purpose) (bool, error) {
	filter := bson.M{"purpose": purpose, "taskId": taskID, "workerId": workerID}
	result, err := s.assignments.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to delete assignment: %w", err)
	}

	return result.DeletedCount > 0, nil
}

// ByTask returns all records for the task and purpose.
func (s *Store) ByTask(ctx context.Context, taskID string, purpose types.Purpose) ([]types.AssignmentRecord, error) {
	return s.findAssignments(ctx, bson.M{"purpose": purpose, "taskId": taskID})
}

// ByWorker returns all records for the worker and purpose.
func (s *Store) ByWorker(ctx context.Context, workerID string, purpose types.Purpose) ([]types.AssignmentRecord, error) {
	return s.findAssignments(ctx, bson.M{"purpose": purpose, "workerId": workerID})
}

func (s *Store) findAssignments(ctx context.Context, filter bson.M) ([]types.AssignmentRecord, error) {
	cursor, err := s.assignments.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}

	var records []types.AssignmentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode assignments: %w", err)
	}

	return records, nil
}

// Labels returns all labels submitted for the task.
func (s *Store) Labels(ctx context.Context, taskID string) ([]types.Label, error) {
	cursor, err := s.labels.Find(ctx, bson.M{"taskId": taskID})
	if err != nil {
		return nil, fmt.Errorf("failed to query labels for task %s: %w", taskID, err)
	}

	var labels []types.Label
	if err := cursor.All(ctx, &labels); err != nil {
		return nil, fmt.Errorf("failed to decode labels: %w", err)
	}

	return labels, nil
}

// Review returns the review for the task, or nil when none exists.
func (s *Store) Review(ctx context.Context, taskID string) (*types.Review, error) {
	var review types.Review
	err := s.reviews.FindOne(ctx, bson.M{"taskId": taskID}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load review for task %s: %w", taskID, err)
	}

	return &review, nil
}

// SubmitLabel upserts the worker's label for the task.
func (s *Store) SubmitLabel(ctx context.Context, label types.Label) error {
	label.UpdatedAt = time.Now().UTC()
	filter := bson.M{"taskId": label.TaskID, "workerId": label.WorkerID}

	_, err := s.labels.ReplaceOne(ctx, filter, label, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert label: %w", err)
	}

	return nil
}

// SubmitReview upserts the review for the task. A task holds at most one
// review; a new submission replaces the previous reviewer's value.
func (s *Store) SubmitReview(ctx context.Context, review types.Review) error {
	review.UpdatedAt = time.Now().UTC()
	filter := bson.M{"taskId": review.TaskID}

	_, err := s.reviews.ReplaceOne(ctx, filter, review, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert review: %w", err)
	}

	return nil
}

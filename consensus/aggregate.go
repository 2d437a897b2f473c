package consensus

import (
	"context"
	"fmt"
	"sort"

	"github.com/annolab/annolab/internal/logging"
	"github.com/annolab/annolab/internal/metrics"
	"github.com/annolab/annolab/types"
)

// TaskSummary is the per-task aggregation row consumed by reporting and
// export callers: who labeled the task, what they said, and how the label
// set resolved.
type TaskSummary struct {
	// TaskID identifies the summarized task.
	TaskID string `json:"taskId"`

	// Annotators lists the distinct workers who submitted labels, sorted.
	Annotators []string `json:"annotators"`

	// Values lists the submitted label values in annotator order.
	Values []string `json:"values"`

	// Decision is the consensus resolution for the task.
	Decision Decision `json:"decision"`
}

// Aggregator resolves consensus for tasks by reading their labels and
// reviews from a LabelStore.
//
// The aggregator holds no state of its own: every call re-derives decisions
// from the store's current contents.
type Aggregator struct {
	store   types.LabelStore
	logger  types.Logger
	metrics types.ConsensusMetrics
}

// NewAggregator creates an aggregator over the given label store.
//
// Parameters:
//   - store: Label/review read access (required)
//   - logger: Structured logger (nil for silent operation)
//   - collector: Consensus metrics sink (nil to discard)
//
// Returns:
//   - *Aggregator: Initialized aggregator
//   - error: ErrStoreRequired when store is nil
func NewAggregator(store types.LabelStore, logger types.Logger, collector types.ConsensusMetrics) (*Aggregator, error) {
	if store == nil {
		return nil, types.ErrStoreRequired
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if collector == nil {
		collector = metrics.NewNop()
	}

	return &Aggregator{store: store, logger: logger, metrics: collector}, nil
}

// ResolveTask resolves consensus for a single task from its stored labels
// and review.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - taskID: Task identifier
//
// Returns:
//   - TaskSummary: Aggregation row with the resolved decision
//   - error: Store lookup error (nil on success)
func (a *Aggregator) ResolveTask(ctx context.Context, taskID string) (TaskSummary, error) {
	labels, err := a.store.Labels(ctx, taskID)
	if err != nil {
		return TaskSummary{}, fmt.Errorf("failed to load labels for task %s: %w", taskID, err)
	}

	review, err := a.store.Review(ctx, taskID)
	if err != nil {
		return TaskSummary{}, fmt.Errorf("failed to load review for task %s: %w", taskID, err)
	}

	reviewValue := ""
	if review != nil {
		reviewValue = review.Value
	}

	// Sort by annotator so summary rows are deterministic regardless of
	// store iteration order.
	sorted := make([]types.Label, len(labels))
	copy(sorted, labels)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].WorkerID < sorted[j].WorkerID })

	annotators := make([]string, 0, len(sorted))
	values := make([]string, 0, len(sorted))
	for _, label := range sorted {
		annotators = append(annotators, label.WorkerID)
		values = append(values, label.Value)
	}

	decision := Resolve(values, reviewValue)
	a.metrics.RecordResolution(string(decision.Outcome))
	a.logger.Debug("task resolved",
		"task_id", taskID,
		"labels", len(values),
		"outcome", decision.Outcome,
	)

	return TaskSummary{
		TaskID:     taskID,
		Annotators: annotators,
		Values:     values,
		Decision:   decision,
	}, nil
}

// Aggregate resolves consensus for a batch of tasks.
//
// A store failure on one task aborts the batch; partial reads would produce
// a misleading report.
//
// Parameters:
//   - ctx: Context for cancellation and timeout
//   - taskIDs: Tasks to summarize, preserved in output order
//
// Returns:
//   - []TaskSummary: One row per requested task
//   - error: First store lookup error encountered
func (a *Aggregator) Aggregate(ctx context.Context, taskIDs []string) ([]TaskSummary, error) {
	summaries := make([]TaskSummary, 0, len(taskIDs))
	for _, taskID := range taskIDs {
		summary, err := a.ResolveTask(ctx, taskID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	a.logger.Info("aggregation complete", "tasks", len(summaries))

	return summaries, nil
}

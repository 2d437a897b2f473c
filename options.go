package annolab

import "github.com/annolab/annolab/types"

// Option configures a Planner with optional dependencies.
type Option func(*plannerOptions)

// plannerOptions holds optional Planner configuration.
type plannerOptions struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	planner, err := annolab.NewPlanner(cfg, source, directory, ledger, strat,
//	    annolab.WithLogger(logger))
func WithLogger(logger types.Logger) Option {
	return func(o *plannerOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPlanner
//
// Example:
//
//	collector := myPrometheusCollector
//	planner, err := annolab.NewPlanner(cfg, source, directory, ledger, strat,
//	    annolab.WithMetrics(collector))
func WithMetrics(metrics types.MetricsCollector) Option {
	return func(o *plannerOptions) {
		o.metrics = metrics
	}
}

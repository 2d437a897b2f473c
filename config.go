package annolab

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the Planner.
//
// All duration fields accept standard Go duration strings like "30s", "5m".
type Config struct {
	// ProjectID is the default project planned when a planning call passes an
	// empty project ID.
	ProjectID string `yaml:"projectId"`

	// ReplicationFactor is how many annotators each task should receive.
	// Replication applies to annotation planning only; review planning always
	// targets one reviewer per task.
	ReplicationFactor int `yaml:"replicationFactor"`

	// OperationTimeout bounds each storage operation made during a planning
	// pass (workload reads, assignment writes).
	OperationTimeout time.Duration `yaml:"operationTimeout"`

	// PlanTimeout bounds a whole planning pass. Zero means no pass-level
	// deadline beyond the caller's context.
	PlanTimeout time.Duration `yaml:"planTimeout"`

	// ContinueOnError controls whether a failed individual assignment write
	// aborts the pass (false) or is collected into the report while the rest
	// of the plan proceeds (true).
	ContinueOnError bool `yaml:"continueOnError"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		ReplicationFactor: 3,
		OperationTimeout:  10 * time.Second,
		PlanTimeout:       2 * time.Minute,
		ContinueOnError:   true,
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.ReplicationFactor == 0 {
		cfg.ReplicationFactor = defaults.ReplicationFactor
	}
	if cfg.OperationTimeout == 0 {
		cfg.OperationTimeout = defaults.OperationTimeout
	}
	if cfg.PlanTimeout == 0 {
		cfg.PlanTimeout = defaults.PlanTimeout
	}
}

// Validate checks configuration constraints and returns an error for invalid
// values.
//
// Rules:
//   - ReplicationFactor >= 1
//   - OperationTimeout > 0
//   - PlanTimeout >= OperationTimeout when set
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.ReplicationFactor < 1 {
		return fmt.Errorf("%w: ReplicationFactor must be >= 1, got %d",
			ErrInvalidConfig, cfg.ReplicationFactor)
	}

	if cfg.OperationTimeout <= 0 {
		return fmt.Errorf("%w: OperationTimeout must be > 0, got %v",
			ErrInvalidConfig, cfg.OperationTimeout)
	}

	if cfg.PlanTimeout != 0 && cfg.PlanTimeout < cfg.OperationTimeout {
		return fmt.Errorf("%w: PlanTimeout (%v) must be >= OperationTimeout (%v)",
			ErrInvalidConfig, cfg.PlanTimeout, cfg.OperationTimeout)
	}

	return nil
}

// LoadConfig reads a YAML configuration file, applies defaults and validates
// the result.
//
// Parameters:
//   - path: Path to the YAML config file
//
// Returns:
//   - Config: Parsed and validated configuration
//   - error: Read, parse or validation error
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// Returns:
//   - Config: Configuration with fast timings for tests
//
// Example:
//
//	cfg := annolab.TestConfig()
//	cfg.ReplicationFactor = 2
//	planner, err := annolab.NewPlanner(cfg, source, directory, ledger, strat)
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.OperationTimeout = 2 * time.Second
	cfg.PlanTimeout = 10 * time.Second

	return cfg
}

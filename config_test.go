package annolab

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, 3, cfg.ReplicationFactor)
	require.True(t, cfg.ContinueOnError)
}

func TestSetDefaults(t *testing.T) {
	var cfg Config
	SetDefaults(&cfg)

	require.Equal(t, DefaultConfig().ReplicationFactor, cfg.ReplicationFactor)
	require.Equal(t, DefaultConfig().OperationTimeout, cfg.OperationTimeout)

	// Explicit values survive.
	cfg = Config{ReplicationFactor: 5, OperationTimeout: time.Second}
	SetDefaults(&cfg)
	require.Equal(t, 5, cfg.ReplicationFactor)
	require.Equal(t, time.Second, cfg.OperationTimeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "negative replication", mutate: func(c *Config) { c.ReplicationFactor = -1 }, wantErr: true},
		{name: "zero operation timeout", mutate: func(c *Config) { c.OperationTimeout = 0 }, wantErr: true},
		{name: "plan timeout below operation timeout", mutate: func(c *Config) {
			c.PlanTimeout = time.Second
			c.OperationTimeout = 5 * time.Second
		}, wantErr: true},
		{name: "zero plan timeout disables the pass deadline", mutate: func(c *Config) { c.PlanTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		data := []byte("projectId: p1\nreplicationFactor: 5\noperationTimeout: 3s\n")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, "p1", cfg.ProjectID)
		require.Equal(t, 5, cfg.ReplicationFactor)
		require.Equal(t, 3*time.Second, cfg.OperationTimeout)
		require.Equal(t, DefaultConfig().PlanTimeout, cfg.PlanTimeout, "unset fields get defaults")
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("replicationFactor: -2\n"), 0o600))

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}

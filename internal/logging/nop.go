package logging

import "github.com/annolab/annolab/types"

// NopLogger discards all log output. It is the default when no logger is
// injected, avoiding nil checks at every log site.
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (*NopLogger) Debug(string, ...any) {}

// Info discards the message.
func (*NopLogger) Info(string, ...any) {}

// Warn discards the message.
func (*NopLogger) Warn(string, ...any) {}

// Error discards the message.
func (*NopLogger) Error(string, ...any) {}

// Fatal discards the message without exiting. A silent logger must never
// take the process down.
func (*NopLogger) Fatal(string, ...any) {}

package logger

import "go.uber.org/zap"

// New creates a zap logger with the given log level.
// Level strings follow zap conventions: debug, info, warn, error.
func New(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}

// NewDevelopment creates a human-readable logger for local use
func NewDevelopment() (*zap.Logger, error) {
	return zap.NewDevelopment()
}

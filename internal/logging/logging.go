// Package logging builds the application logger. The TUI owns the terminal,
// so log output goes to a file; with no file configured the logger is a nop.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New returns a logger writing to path, or a nop logger when path is empty.
func New(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger for %s: %w", path, err)
	}
	return logger, nil
}

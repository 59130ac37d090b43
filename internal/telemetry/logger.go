package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOptions selects where logs go.
type LoggerOptions struct {
	// Verbose enables debug-level development logging.
	Verbose bool
	// File redirects logs away from the terminal, for full-screen hosts.
	File string
}

// NewLogger builds the process logger. Without Verbose or File it returns
// a no-op logger.
func NewLogger(opts LoggerOptions) (*zap.Logger, error) {
	if !opts.Verbose && opts.File == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	if !opts.Verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	if opts.File != "" {
		cfg.OutputPaths = []string{opts.File}
		cfg.ErrorOutputPaths = []string{opts.File}
	}
	return cfg.Build()
}

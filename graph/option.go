package graph

import "log/slog"

// Option configures a [ModelGraph] at construction time.
type Option func(*graphConfig)

type graphConfig struct {
	logger *slog.Logger
}

// WithLogger attaches a logger that receives debug records for insertion,
// library registration, and validation. Pass nil (the default) to disable
// logging.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *graphConfig) {
		cfg.logger = logger
	}
}

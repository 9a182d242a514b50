package workpool

import (
	"log/slog"

	"github.com/c360/workpool/metric"
)

// Option configures pool behavior using the functional options pattern.
type Option func(*poolOptions)

// poolOptions holds internal configuration for pool instances.
// Stats are ALWAYS collected - they are not optional.
// Metrics are optional and exposed via WithMetrics().
type poolOptions struct {
	logger *slog.Logger

	// metricsReg is optional - if provided, pool stats are also exposed
	// as Prometheus metrics
	metricsReg *metric.Registry

	// metricsPrefix prefixes every metric name registered for this pool
	metricsPrefix string
}

// WithLogger sets the logger used for worker status lines. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(opts *poolOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMetrics enables Prometheus metrics export for pool statistics.
// If registry is nil or prefix is empty, this option is ignored.
func WithMetrics(registry *metric.Registry, prefix string) Option {
	return func(opts *poolOptions) {
		if registry != nil && prefix != "" {
			opts.metricsReg = registry
			opts.metricsPrefix = prefix
		}
	}
}

// applyOptions applies functional options to create final pool configuration.
func applyOptions(options ...Option) *poolOptions {
	opts := &poolOptions{
		logger: slog.Default(),
	}

	for _, opt := range options {
		if opt != nil {
			opt(opts)
		}
	}

	return opts
}

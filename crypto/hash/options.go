package hash

import (
	"github.com/rs/zerolog"

	"github.com/onflow/sha2/module"
	"github.com/onflow/sha2/module/metrics"
)

type config struct {
	log     zerolog.Logger
	metrics module.HashingMetrics
}

func defaultConfig() *config {
	return &config{
		log:     zerolog.Nop(),
		metrics: metrics.NewNoopCollector(),
	}
}

// Option configures a hasher.
type Option func(*config)

// WithLogger makes the hasher log rejected operations to log.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithMetrics makes the hasher report to collector.
func WithMetrics(collector module.HashingMetrics) Option {
	return func(c *config) {
		c.metrics = collector
	}
}

package executor

import "time"

// Config holds the pool configuration.
// Designed for environment-based configuration using popular env parsing libraries.
type Config struct {
	Workers         int           `env:"EXECUTOR_WORKERS" envDefault:"4"`
	QueueSize       int           `env:"EXECUTOR_QUEUE_SIZE" envDefault:"64"`
	ShutdownTimeout time.Duration `env:"EXECUTOR_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		Workers:         4,
		QueueSize:       64,
		ShutdownTimeout: 30 * time.Second,
	}
}

// NewPoolFromConfig creates a Pool from configuration.
// Additional options override config values; zero config fields fall back to
// the pool defaults.
func NewPoolFromConfig(cfg Config, opts ...Option) *Pool {
	allOpts := append([]Option{
		WithWorkers(cfg.Workers),
		WithQueueSize(cfg.QueueSize),
		WithShutdownTimeout(cfg.ShutdownTimeout),
	}, opts...)

	return NewPool(allOpts...)
}

package batch

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidConfig is returned for a configuration the batch hasher can not run with.
var ErrInvalidConfig = errors.New("invalid batch hasher configuration")

// Config is the configuration of a batch Hasher.
type Config struct {
	// Workers is the number of messages hashed concurrently.
	Workers int
}

// DefaultConfig runs one worker per CPU.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	return nil
}

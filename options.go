package hashtable

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	// DefaultLoadFactor is the occupancy ratio an insert may not push the
	// table past without growing first.
	DefaultLoadFactor = 0.2

	// DefaultGrowthFactor multiplies the capacity on every resize step.
	DefaultGrowthFactor = 2
)

type config struct {
	loadFactor   float64
	growthFactor int
	hasher       Hasher
	logger       *zap.Logger
}

// Option configures a Table at construction time.
type Option func(*config)

// WithLoadFactor sets the resize threshold. It must lie in (0, 1).
func WithLoadFactor(f float64) Option {
	return func(c *config) {
		c.loadFactor = f
	}
}

// WithGrowthFactor sets the capacity multiplier used by resize. It must be at least 2.
func WithGrowthFactor(n int) Option {
	return func(c *config) {
		c.growthFactor = n
	}
}

// WithHasher replaces RollingHash. h must return an index in [0, mod).
func WithHasher(h Hasher) Option {
	return func(c *config) {
		c.hasher = h
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts []Option) (config, error) {
	c := config{
		loadFactor:   DefaultLoadFactor,
		growthFactor: DefaultGrowthFactor,
		hasher:       RollingHash,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if !(c.loadFactor > 0 && c.loadFactor < 1) {
		return c, fmt.Errorf("%w: load factor %v not in (0, 1)", ErrInvalidConfig, c.loadFactor)
	}
	if c.growthFactor < 2 {
		return c, fmt.Errorf("%w: growth factor %d below 2", ErrInvalidConfig, c.growthFactor)
	}
	if c.hasher == nil {
		return c, fmt.Errorf("%w: nil hasher", ErrInvalidConfig)
	}
	if c.logger == nil {
		c.logger = Logger()
	}
	return c, nil
}

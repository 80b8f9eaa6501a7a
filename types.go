package skipindex

import (
	"github.com/pkg/errors"
)

const (
	// DefaultMaxLevel bounds the forward-link fan-out of any node.
	DefaultMaxLevel = 16

	// DefaultProbability is the binomial success probability driving the
	// level decay.
	DefaultProbability = 0.5

	// maxLevelLimit caps the configurable fan-out. Past 64 levels the extra
	// links stop paying for themselves on any realistic working set.
	maxLevelLimit = 64
)

// Errors reported by the container. Construction failures wrap
// ErrInvalidMaxLevel or ErrInvalidProbability with the offending value;
// Erase reports ErrNotFound for an absent key or value.
var (
	ErrNilHasher          = errors.New("skipindex: hasher must not be nil")
	ErrInvalidMaxLevel    = errors.New("skipindex: max level out of range")
	ErrInvalidProbability = errors.New("skipindex: probability out of range")
	ErrNotFound           = errors.New("skipindex: not found")
)

// Config holds the construction parameters of a SkipList. It is fixed once
// the list is built.
type Config struct {
	maxLevel    int
	probability float64
}

// NewConfig returns a Config carrying the default parameters.
func NewConfig() Config {
	return Config{
		maxLevel:    DefaultMaxLevel,
		probability: DefaultProbability,
	}
}

// MaxLevel reports the configured upper bound on forward-link fan-out.
func (c Config) MaxLevel() int { return c.maxLevel }

// Probability reports the configured level-promotion probability.
func (c Config) Probability() float64 { return c.probability }

func (c Config) validate() error {
	if c.maxLevel < 1 || c.maxLevel > maxLevelLimit {
		return errors.Wrapf(ErrInvalidMaxLevel, "got %d, want 1..%d", c.maxLevel, maxLevelLimit)
	}
	if c.probability < 0 || c.probability > 1 {
		return errors.Wrapf(ErrInvalidProbability, "got %v, want [0, 1]", c.probability)
	}
	return nil
}

// Option mutates a Config during construction.
type Option func(*Config)

// WithMaxLevel sets the upper bound on forward-link fan-out.
func WithMaxLevel(level int) Option {
	return func(c *Config) { c.maxLevel = level }
}

// WithProbability sets the binomial success probability for level draws.
func WithProbability(p float64) Option {
	return func(c *Config) { c.probability = p }
}

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes a builderConfig before construction begins.
type Option func(*builderConfig)

// IDFn maps a city index to its name.
type IDFn func(int) string

const (
	defaultSpacing = 1.0
	defaultPrefix  = "C"
)

type builderConfig struct {
	idFn    IDFn
	rng     *rand.Rand
	spacing float64
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		idFn:    SymbolNumberIDFn(defaultPrefix),
		spacing: defaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the index → name function. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand attaches an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a fresh RNG seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithSpacing sets the coordinate distance between adjacent cities.
// Panics unless step > 0.
func WithSpacing(step float64) Option {
	if !(step > 0) {
		panic(fmt.Sprintf("builder: WithSpacing(%g) must be > 0", step))
	}
	return func(c *builderConfig) {
		c.spacing = step
	}
}

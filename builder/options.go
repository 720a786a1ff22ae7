// options.go — functional options for the builder package.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     builders themselves never panic.
//   - Determinism is explicit: seeding goes through WithSeed or WithRand.
//   - No hidden globals; everything flows through config.
package builder

import (
	"math/rand"
)

// Option customizes a builder by mutating its config before
// construction begins. Applying N options costs O(N).
type Option func(*config)

// config carries the resolved knobs shared by all builders.
type config struct {
	rng     *rand.Rand      // RNG for stochastic builders; nil means "not provided"
	labelFn func(int) int64 // node index → label
}

// defaultConfig returns the baseline configuration: no RNG and
// identity labeling (node index i gets label int64(i)).
func defaultConfig() config {
	return config{
		rng:     nil,
		labelFn: func(i int) int64 { return int64(i) },
	}
}

// WithSeed creates a fresh *rand.Rand with the given seed.
// Use in tests and examples to lock stochastic outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithLabelFunc sets the deterministic label generator: node index →
// label. Indices are assigned in the order nodes are created (preorder
// for Complete, creation order for Random). Panics on nil.
func WithLabelFunc(fn func(idx int) int64) Option {
	if fn == nil {
		panic("builder: WithLabelFunc(nil)")
	}

	return func(c *config) {
		c.labelFn = fn
	}
}

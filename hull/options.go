package hull

import "math/rand"

// Option customizes BuildConvexHull. The zero value of config (obtained
// with no options) is deterministic: points are processed in input order.
type Option func(cfg *config)

// config holds resolved build settings. Each call to BuildConvexHull
// creates its own; config is not safe for concurrent reuse.
type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand sets an explicit *rand.Rand to drive the Fisher-Yates shuffle of
// insertion order. A nil rng is a no-op, leaving the default (unshuffled,
// input-order) behavior in place.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed creates a new *rand.Rand seeded with the given value and uses it
// to drive insertion order. Use this for reproducible randomized builds.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

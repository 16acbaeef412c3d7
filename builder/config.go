// SPDX-License-Identifier: MIT
// Package: fgraph/builder
//
// config.go - internal configuration, deterministic defaults and functional options.
//
// Defaults:
//   - idFn        = DefaultIDFn  ("0","1","2",...)
//   - rng         = nil          (deterministic unless seeded)
//   - left/right  = "L" / "R"    (bipartite value prefixes)
//
// Option constructors validate and panic on meaningless input; constructors never panic.

package builder

import "math/rand"

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Node value strategy: local index -> value.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand

	// Bipartite value prefixes. Empty resolves to defaults.
	leftPrefix  string
	rightPrefix string
}

// newBuilderConfig applies opts over the defaults in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// BuilderOption customizes constructor behavior by mutating a builderConfig
// before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node value generator: local index -> value.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithPartitionPrefix sets the value prefixes of the two sides of CompleteBipartite.
// Empty values mean "use defaults".
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

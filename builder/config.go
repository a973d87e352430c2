// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// config.go: resolved settings shared by every constructor of one build.
//
// Contract:
//   • Scatter and Maze draw from rng; Room, Wall and Markers never do.
//   • A nil rng keeps the build pure; stochastic constructors then fail
//     with ErrNeedRandSource instead of inventing a seed.

package builder

import "math/rand"

// builderConfig is handed by value to each Constructor of a BuildLayout call.
// All constructors of one call share the same rng, so draw order is part of
// the output: reordering constructors changes the layout.
type builderConfig struct {
	rng *rand.Rand
}

// newBuilderConfig applies opts left to right; a later WithSeed/WithRand wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, apply := range opts {
		apply(&cfg)
	}

	return cfg
}

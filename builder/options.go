// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// options.go: functional options for BuildLayout and BuildGrid.
//
// Contract:
//   • An option with meaningless input panics at construction time, before
//     any canvas exists; constructors report errors instead.
//   • Layouts are reproducible only through WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption adjusts the settings shared by the constructors of one build.
type BuilderOption func(*builderConfig)

// WithRand makes Scatter and Maze draw from r. Sharing r across builds
// continues its stream, so successive layouts differ. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(cfg *builderConfig) {
		cfg.rng = r
	}
}

// WithSeed gives the build a fresh source seeded with seed; equal seeds and
// constructor lists yield identical rows.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

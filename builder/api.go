// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// api.go: thin public entry-points for the builder package.
//
// Design contract:
//   • One orchestrator: BuildLayout(rows, cols, opts, cons...). Creates the
//     canvas, resolves cfg, runs cons in order.
//   • Factories live in impl_*.go.
//   • Determinism: same inputs/options/seed and constructor order ⇒ identical rows.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Constructor applies a deterministic canvas mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(cv *canvas, cfg builderConfig) error

// BuildLayout allocates a rows×cols blank canvas, resolves the builder
// configuration from opts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildLayout: %w" and returned
// immediately.
//
// Complexity: O(rows*cols) for the canvas plus Σ cost of constructors.
func BuildLayout(rows, cols int, opts []BuilderOption, cons ...Constructor) ([]string, error) {
	if rows < minCanvasDim || cols < minCanvasDim {
		return nil, fmt.Errorf("BuildLayout: %d×%d (each side must be ≥ %d): %w",
			rows, cols, minCanvasDim, ErrTooSmall)
	}
	cv := newCanvas(rows, cols)
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildLayout: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(cv, cfg); err != nil {
			return nil, fmt.Errorf("BuildLayout: %w", err)
		}
	}

	return cv.rows(), nil
}

// BuildGrid is BuildLayout followed by gridgraph.LoadStrings, so structural
// grid errors (e.g. gridgraph.ErrBoundary without Room) surface here too.
func BuildGrid(rows, cols int, opts []BuilderOption, cons ...Constructor) (*gridgraph.Grid, error) {
	layout, err := BuildLayout(rows, cols, opts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := gridgraph.LoadStrings(layout)
	if err != nil {
		return nil, fmt.Errorf("BuildGrid: %w", err)
	}

	return g, nil
}

// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w; sentinels carry no parameters.

package builder

import "errors"

// ErrTooSmall indicates a canvas dimension below minCanvasDim.
var ErrTooSmall = errors.New("builder: canvas too small")

// ErrInvalidDensity indicates a Scatter density outside [0,1).
var ErrInvalidDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrOutOfRange indicates a cell outside the canvas.
var ErrOutOfRange = errors.New("builder: cell out of range")

// ErrConstructFailed indicates a constructor that cannot produce a consistent
// layout from its arguments (nil constructor, bent wall, markers on the same
// cell or on the boundary).
var ErrConstructFailed = errors.New("builder: construction failed")

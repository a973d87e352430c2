// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// impl_scatter.go: implementation of Scatter(density) constructor.
//
// Contract:
//   • 0 ≤ density < 1 (else ErrInvalidDensity); requires cfg.rng (else ErrNeedRandSource).
//   • Visits interior (non-perimeter) cells in row-major order and turns each
//     into an obstacle with probability density. Boundary cells are kept.
//   • Exactly one rng draw per interior cell, so the result depends only on
//     the seed and the canvas size.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"
)

const methodScatter = "Scatter"

// Scatter returns a Constructor that sprinkles random obstacles.
func Scatter(density float64) Constructor {
	return func(cv *canvas, cfg builderConfig) error {
		if density < 0 || density >= 1 {
			return fmt.Errorf("%s: density=%g: %w", methodScatter, density, ErrInvalidDensity)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodScatter, ErrNeedRandSource)
		}

		for _, cell := range cv.interior() {
			if cfg.rng.Float64() < density {
				cv.block(cell)
			}
		}

		return nil
	}
}

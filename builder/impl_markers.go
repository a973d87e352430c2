// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// impl_markers.go: implementation of Markers(start, goal) constructor.
//
// Contract:
//   • Both cells on the canvas (else ErrOutOfRange).
//   • Distinct cells, neither on a boundary rune (else ErrConstructFailed);
//     the text format cannot hold both markers in one cell.
//   • Obstacles under the markers are replaced.
//
// Complexity: O(1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

const methodMarkers = "Markers"

// Markers returns a Constructor that writes the 'S' and 'G' runes.
func Markers(start, goal gridgraph.Cell) Constructor {
	return func(cv *canvas, _ builderConfig) error {
		if !cv.contains(start) || !cv.contains(goal) {
			return fmt.Errorf("%s: %v, %v on %d×%d: %w", methodMarkers, start, goal, cv.nRows, cv.nCols, ErrOutOfRange)
		}
		if start == goal {
			return fmt.Errorf("%s: start and goal share %v: %w", methodMarkers, start, ErrConstructFailed)
		}
		if cv.at(start) == gridgraph.BoundaryRune || cv.at(goal) == gridgraph.BoundaryRune {
			return fmt.Errorf("%s: marker on boundary: %w", methodMarkers, ErrConstructFailed)
		}
		cv.set(start, gridgraph.StartRune)
		cv.set(goal, gridgraph.GoalRune)

		return nil
	}
}

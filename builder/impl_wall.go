// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// impl_wall.go: implementation of Wall(from, to) constructor.
//
// Contract:
//   • from and to must lie on the canvas (else ErrOutOfRange).
//   • The segment must be horizontal, vertical or a 45° diagonal
//     (else ErrConstructFailed).
//   • Every cell of the closed segment becomes an obstacle; boundary cells
//     are left untouched.
//
// Complexity: O(length of the segment).

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

const methodWall = "Wall"

// Wall returns a Constructor that draws a straight obstacle segment.
func Wall(from, to gridgraph.Cell) Constructor {
	return func(cv *canvas, _ builderConfig) error {
		if !cv.contains(from) || !cv.contains(to) {
			return fmt.Errorf("%s: %v→%v on %d×%d: %w", methodWall, from, to, cv.nRows, cv.nCols, ErrOutOfRange)
		}
		dr, dc := to.Row-from.Row, to.Col-from.Col
		if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
			return fmt.Errorf("%s: %v→%v is not straight: %w", methodWall, from, to, ErrConstructFailed)
		}

		// unit step along the segment; n cells in total
		step := gridgraph.Cell{Row: sign(dr), Col: sign(dc)}
		n := max(abs(dr), abs(dc)) + 1
		for i, c := 0, from; i < n; i++ {
			cv.block(c)
			c = gridgraph.Cell{Row: c.Row + step.Row, Col: c.Col + step.Col}
		}

		return nil
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

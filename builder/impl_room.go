// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// impl_room.go: implementation of Room() constructor.
//
// Contract:
//   • Writes gridgraph.BoundaryRune on every perimeter cell.
//   • Every row and column then holds at least two boundary cells, which is
//     what gridgraph.Load requires.
//
// Complexity: O(rows+cols).

package builder

import "github.com/katalvlaran/gridsearch/gridgraph"

// Room returns a Constructor that encloses the canvas with a boundary ring.
func Room() Constructor {
	return func(cv *canvas, _ builderConfig) error {
		for r := 0; r < cv.nRows; r++ {
			for c := 0; c < cv.nCols; c++ {
				if cell := (gridgraph.Cell{Row: r, Col: c}); cv.perimeter(cell) {
					cv.set(cell, gridgraph.BoundaryRune)
				}
			}
		}

		return nil
	}
}

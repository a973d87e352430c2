// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// canvas.go: the mutable rune matrix constructors draw on.
//
// Design:
//   • Rectangular rows×cols, every cell starts as gridgraph.EmptyRune.
//   • Boundary cells are never overwritten by obstacles.
//   • rows() snapshots the canvas as strings for gridgraph.LoadStrings.

package builder

import "github.com/katalvlaran/gridsearch/gridgraph"

// minCanvasDim is the smallest side that still leaves one interior cell.
const minCanvasDim = 3

// canvas is the drawing surface passed to constructors.
type canvas struct {
	nRows, nCols int
	cells        [][]rune
}

// newCanvas allocates a blank rows×cols canvas.
// Complexity: O(rows*cols).
func newCanvas(rows, cols int) *canvas {
	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = make([]rune, cols)
		for c := range cells[r] {
			cells[r][c] = gridgraph.EmptyRune
		}
	}

	return &canvas{nRows: rows, nCols: cols, cells: cells}
}

// contains reports whether c lies on the canvas.
func (cv *canvas) contains(c gridgraph.Cell) bool {
	return c.Row >= 0 && c.Row < cv.nRows && c.Col >= 0 && c.Col < cv.nCols
}

// perimeter reports whether c lies on the outer ring.
func (cv *canvas) perimeter(c gridgraph.Cell) bool {
	return c.Row == 0 || c.Col == 0 || c.Row == cv.nRows-1 || c.Col == cv.nCols-1
}

// interior lists the cells off the perimeter in row-major order. Stochastic
// constructors draw once per interior cell in this order.
func (cv *canvas) interior() []gridgraph.Cell {
	var out []gridgraph.Cell
	for r := 0; r < cv.nRows; r++ {
		for c := 0; c < cv.nCols; c++ {
			if cell := (gridgraph.Cell{Row: r, Col: c}); !cv.perimeter(cell) {
				out = append(out, cell)
			}
		}
	}

	return out
}

// at returns the rune at c; c must be on the canvas.
func (cv *canvas) at(c gridgraph.Cell) rune {
	return cv.cells[c.Row][c.Col]
}

// set writes ch at c; c must be on the canvas.
func (cv *canvas) set(c gridgraph.Cell, ch rune) {
	cv.cells[c.Row][c.Col] = ch
}

// block turns c into an obstacle unless it is a boundary cell.
func (cv *canvas) block(c gridgraph.Cell) {
	if cv.at(c) != gridgraph.BoundaryRune {
		cv.set(c, gridgraph.ObstacleRune)
	}
}

// rows snapshots the canvas.
func (cv *canvas) rows() []string {
	out := make([]string, cv.nRows)
	for r, line := range cv.cells {
		out[r] = string(line)
	}

	return out
}

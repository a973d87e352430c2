// SPDX-License-Identifier: MIT
// Package: gridsearch/builder
//
// impl_maze.go: implementation of Maze() constructor.
//
// Canonical model:
//   • Rooms sit on odd (row, col) coordinates of the interior; every other
//     interior cell starts as an obstacle.
//   • Recursive backtracker with an explicit frontier.Stack: from the current
//     room pick an unvisited room two steps away (directions shuffled by
//     cfg.rng), knock down the wall between, push; pop on dead ends.
//   • Result is a perfect maze: exactly one simple path between any two rooms.
//
// Contract:
//   • Requires cfg.rng (else ErrNeedRandSource).
//   • Boundary cells are kept; call Room() first for a closed maze.
//   • With an even side, the last interior row/column stays solid.
//
// Complexity: O(rows*cols) time and memory.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

const methodMaze = "Maze"

// mazeSteps are the four room-to-room moves (two cells apart).
var mazeSteps = [4]gridgraph.Cell{{Row: -2, Col: 0}, {Row: 0, Col: 2}, {Row: 2, Col: 0}, {Row: 0, Col: -2}}

// Maze returns a Constructor that carves a perfect maze into the interior.
func Maze() Constructor {
	return func(cv *canvas, cfg builderConfig) error {
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodMaze, ErrNeedRandSource)
		}

		// 1) Fill the interior solid.
		for _, cell := range cv.interior() {
			cv.block(cell)
		}

		// rooms are interior cells with odd coordinates
		isRoom := func(c gridgraph.Cell) bool {
			return cv.contains(c) && !cv.perimeter(c) && c.Row%2 == 1 && c.Col%2 == 1
		}

		// 2) Carve from (1,1).
		root := gridgraph.Cell{Row: 1, Col: 1}
		seen := map[gridgraph.Cell]bool{root: true}
		cv.set(root, gridgraph.EmptyRune)
		stack := frontier.NewStack(root)
		for !stack.IsEmpty() {
			cur, _ := stack.Peek()

			// unvisited rooms around cur, in shuffled order
			var next gridgraph.Cell
			found := false
			for _, k := range cfg.rng.Perm(len(mazeSteps)) {
				d := mazeSteps[k]
				cand := gridgraph.Cell{Row: cur.Row + d.Row, Col: cur.Col + d.Col}
				if isRoom(cand) && !seen[cand] {
					next, found = cand, true
					break
				}
			}
			if !found {
				stack.Pop()
				continue
			}

			// 3) Knock down the wall between cur and next.
			wall := gridgraph.Cell{Row: (cur.Row + next.Row) / 2, Col: (cur.Col + next.Col) / 2}
			cv.set(wall, gridgraph.EmptyRune)
			cv.set(next, gridgraph.EmptyRune)
			seen[next] = true
			stack.Push(next)
		}

		return nil
	}
}

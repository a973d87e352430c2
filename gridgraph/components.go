package gridgraph

import "github.com/katalvlaran/gridsearch/motion"

// Reachable lists every passable cell reachable from `from` using dirs, in
// breadth-first discovery order starting with `from` itself.
// Returns nil when `from` is not passable.
//
// Time:   O(R·C·d), where d = len(dirs).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Reachable(from Cell, dirs []motion.Direction) []Cell {
	if !g.Passable(from) {
		return nil
	}
	seen := g.newSeen()

	return g.flood(from, dirs, seen)
}

// Regions partitions the passable cells into connected regions under dirs.
// Regions are ordered by their first cell in row-major scan; cells inside a
// region are in breadth-first discovery order.
//
// Time:   O(R·C·d).
// Memory: O(R·C).
func (g *Grid) Regions(dirs []motion.Direction) [][]Cell {
	seen := g.newSeen()
	var regions [][]Cell
	for r, line := range g.cells {
		for c := range line {
			cell := Cell{r, c}
			if seen[r][c] || !g.Passable(cell) {
				continue
			}
			regions = append(regions, g.flood(cell, dirs, seen))
		}
	}

	return regions
}

// flood collects the passable component of from, marking cells in seen.
func (g *Grid) flood(from Cell, dirs []motion.Direction, seen [][]bool) []Cell {
	queue := []Cell{from}
	seen[from.Row][from.Col] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range dirs {
			v := u.Step(d)
			if !g.Passable(v) || seen[v.Row][v.Col] {
				continue
			}
			seen[v.Row][v.Col] = true
			queue = append(queue, v)
		}
	}

	return queue
}

// newSeen allocates flags shaped like the jagged layout.
func (g *Grid) newSeen() [][]bool {
	seen := make([][]bool, len(g.cells))
	for r, line := range g.cells {
		seen[r] = make([]bool, len(line))
	}

	return seen
}

package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/motion"
)

// Layout runes.
const (
	BoundaryRune = '*'
	ObstacleRune = '#'
	StartRune    = 'S'
	GoalRune     = 'G'
	EmptyRune    = ' '

	// PathMarker marks intermediate path cells in Render output.
	PathMarker = '·'
)

// Cell addresses a grid position by row and column. Cells are comparable
// and used as map keys by the search packages.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step returns the neighbor of c one step along d.
func (c Cell) Step(d motion.Direction) Cell {
	return Cell{Row: c.Row + d.DRow, Col: c.Col + d.DCol}
}

// Kind classifies a cell.
type Kind int

const (
	// Empty cells are open for traversal. Unknown layout runes are Empty too.
	Empty Kind = iota
	// Boundary cells enclose the searchable region.
	Boundary
	// Obstacle cells block traversal inside the region.
	Obstacle
	// Start is the cell carrying the start marker.
	Start
	// Goal is the cell carrying the goal marker.
	Goal
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Boundary:
		return "boundary"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// span is an inclusive [lo, hi] range of boundary indices.
type span struct {
	lo, hi int
}

func (s span) contains(i int) bool {
	return i >= s.lo && i <= s.hi
}

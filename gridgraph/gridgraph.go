package gridgraph

import (
	"fmt"
)

// Grid is a jagged 2D layout with an optional start and goal marker.
// Marker runes are not stored in the layout; Render overlays them.
type Grid struct {
	cells    [][]rune
	rowSpans []span // boundary extremes per row
	colSpans []span // boundary extremes per column, index < width
	width    int

	start, goal       Cell
	hasStart, hasGoal bool
}

// Load validates rows and builds a Grid. The input is copied.
// 'S' and 'G' runes become the initial markers and are stored as open cells.
// Returns ErrEmptyGrid for no rows, ErrBoundary when a row or a column in
// [0, widest row) holds fewer than two boundary cells, and ErrDuplicateMarker
// for a repeated 'S' or 'G'.
// Complexity: O(R×C) time and memory.
func Load(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{
		cells:    make([][]rune, len(rows)),
		rowSpans: make([]span, len(rows)),
	}
	for r, row := range rows {
		line := make([]rune, len(row))
		copy(line, row)
		for c, ch := range line {
			switch ch {
			case StartRune:
				if g.hasStart {
					return nil, fmt.Errorf("%w: second 'S' at %v", ErrDuplicateMarker, Cell{r, c})
				}
				g.start, g.hasStart = Cell{r, c}, true
				line[c] = EmptyRune
			case GoalRune:
				if g.hasGoal {
					return nil, fmt.Errorf("%w: second 'G' at %v", ErrDuplicateMarker, Cell{r, c})
				}
				g.goal, g.hasGoal = Cell{r, c}, true
				line[c] = EmptyRune
			}
		}
		g.cells[r] = line
		if len(line) > g.width {
			g.width = len(line)
		}

		sp, n := span{lo: -1, hi: -1}, 0
		for c, ch := range line {
			if ch != BoundaryRune {
				continue
			}
			if n == 0 {
				sp.lo = c
			}
			sp.hi = c
			n++
		}
		if n < 2 {
			return nil, fmt.Errorf("%w: row %d has %d", ErrBoundary, r, n)
		}
		g.rowSpans[r] = sp
	}

	g.colSpans = make([]span, g.width)
	for c := 0; c < g.width; c++ {
		sp, n := span{lo: -1, hi: -1}, 0
		for r, line := range g.cells {
			if c >= len(line) || line[c] != BoundaryRune {
				continue
			}
			if n == 0 {
				sp.lo = r
			}
			sp.hi = r
			n++
		}
		if n < 2 {
			return nil, fmt.Errorf("%w: column %d has %d", ErrBoundary, c, n)
		}
		g.colSpans[c] = sp
	}

	return g, nil
}

// LoadStrings is Load over string rows.
func LoadStrings(rows []string) (*Grid, error) {
	rr := make([][]rune, len(rows))
	for i, s := range rows {
		rr[i] = []rune(s)
	}

	return Load(rr)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.cells) }

// Width returns the length of the widest row.
func (g *Grid) Width() int { return g.width }

// RowLen returns the length of row r, or 0 when r is out of range.
func (g *Grid) RowLen(r int) int {
	if r < 0 || r >= len(g.cells) {
		return 0
	}

	return len(g.cells[r])
}

// InBounds reports whether c addresses an existing rune of the jagged layout.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < len(g.cells) && c.Col >= 0 && c.Col < len(g.cells[c.Row])
}

// Passable reports whether a traversal may step onto c: in bounds and neither
// a boundary nor an obstacle. Cells outside the bounded region can be passable.
// Complexity: O(1).
func (g *Grid) Passable(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	ch := g.cells[c.Row][c.Col]

	return ch != BoundaryRune && ch != ObstacleRune
}

// inRegion reports whether c lies inside the area enclosed by the boundary:
// within its row's boundary extremes, within its column's boundary extremes,
// and not itself a boundary cell.
func (g *Grid) inRegion(c Cell) bool {
	if c.Row < 0 || c.Row >= len(g.cells) {
		return false
	}
	if !g.rowSpans[c.Row].contains(c.Col) {
		return false
	}
	if !g.colSpans[c.Col].contains(c.Row) {
		return false
	}

	return g.cells[c.Row][c.Col] != BoundaryRune
}

// IsValid reports whether c lies inside the bounded region and is neither a
// boundary nor an obstacle. Markers and obstacles may only be placed on valid cells.
// Complexity: O(1).
func (g *Grid) IsValid(c Cell) bool {
	return g.inRegion(c) && g.cells[c.Row][c.Col] != ObstacleRune
}

// KindOf classifies c. Out-of-bounds cells report Boundary. An obstacle placed
// over a marker reports Obstacle.
func (g *Grid) KindOf(c Cell) Kind {
	if !g.InBounds(c) {
		return Boundary
	}
	switch g.cells[c.Row][c.Col] {
	case BoundaryRune:
		return Boundary
	case ObstacleRune:
		return Obstacle
	}
	switch {
	case g.hasStart && c == g.start:
		return Start
	case g.hasGoal && c == g.goal:
		return Goal
	default:
		return Empty
	}
}

// Start returns the start marker and whether it is set.
func (g *Grid) Start() (Cell, bool) { return g.start, g.hasStart }

// Goal returns the goal marker and whether it is set.
func (g *Grid) Goal() (Cell, bool) { return g.goal, g.hasGoal }

// SetStart moves the start marker to c. Start and goal may share a cell.
func (g *Grid) SetStart(c Cell) error {
	if !g.IsValid(c) {
		return placementError("set start", c)
	}
	g.start, g.hasStart = c, true

	return nil
}

// SetGoal moves the goal marker to c.
func (g *Grid) SetGoal(c Cell) error {
	if !g.IsValid(c) {
		return placementError("set goal", c)
	}
	g.goal, g.hasGoal = c, true

	return nil
}

// AddObstacle turns the valid cell c into an obstacle. Markers on c stay set;
// a later search rejects them as invalid.
func (g *Grid) AddObstacle(c Cell) error {
	if !g.IsValid(c) {
		return placementError("add obstacle", c)
	}
	g.cells[c.Row][c.Col] = ObstacleRune

	return nil
}

// RemoveObstacle clears an obstacle at c. Any cell inside the bounded region
// is accepted; clearing an open cell is a no-op.
func (g *Grid) RemoveObstacle(c Cell) error {
	if !g.inRegion(c) {
		return placementError("remove obstacle", c)
	}
	if g.cells[c.Row][c.Col] == ObstacleRune {
		g.cells[c.Row][c.Col] = EmptyRune
	}

	return nil
}

// Obstacles lists obstacle cells in row-major order.
func (g *Grid) Obstacles() []Cell {
	var out []Cell
	for r, line := range g.cells {
		for c, ch := range line {
			if ch == ObstacleRune {
				out = append(out, Cell{r, c})
			}
		}
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := *g
	cp.cells = make([][]rune, len(g.cells))
	for r, line := range g.cells {
		cp.cells[r] = append([]rune(nil), line...)
	}
	cp.rowSpans = append([]span(nil), g.rowSpans...)
	cp.colSpans = append([]span(nil), g.colSpans...)

	return &cp
}

func placementError(op string, c Cell) error {
	return fmt.Errorf("%w: %s at %v", ErrInvalidPlacement, op, c)
}

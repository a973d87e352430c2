package gridgraph

import "strings"

// Render returns a copy of the layout with markers written back and every
// path cell except the first and last replaced by PathMarker. The grid is
// not modified. Path cells outside the layout are ignored.
func (g *Grid) Render(path []Cell) [][]rune {
	out := make([][]rune, len(g.cells))
	for r, line := range g.cells {
		out[r] = append([]rune(nil), line...)
	}
	for i := 1; i < len(path)-1; i++ {
		if c := path[i]; g.InBounds(c) {
			out[c.Row][c.Col] = PathMarker
		}
	}
	if g.hasStart {
		out[g.start.Row][g.start.Col] = StartRune
	}
	if g.hasGoal {
		out[g.goal.Row][g.goal.Col] = GoalRune
	}

	return out
}

// String renders the grid with markers and no path, one line per row.
func (g *Grid) String() string {
	rows := g.Render(nil)
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}

	return sb.String()
}

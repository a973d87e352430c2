package cli

import (
	"strings"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// renderGrid draws g with the path overlaid. Open cells in visited that are
// not on the path are drawn as iconVisited. visited may be nil.
func renderGrid(g *gridgraph.Grid, path []gridgraph.Cell, visited map[gridgraph.Cell]bool) string {
	rows := g.Render(path)
	var sb strings.Builder
	for r, row := range rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, ch := range row {
			sb.WriteString(styleRune(ch, visited[gridgraph.Cell{Row: r, Col: c}]))
		}
	}

	return sb.String()
}

func styleRune(ch rune, visited bool) string {
	switch ch {
	case gridgraph.BoundaryRune:
		return styleBoundary.Render(string(ch))
	case gridgraph.ObstacleRune:
		return styleObstacle.Render(string(ch))
	case gridgraph.PathMarker:
		return stylePath.Render(string(ch))
	case gridgraph.StartRune:
		return styleStart.Render(string(ch))
	case gridgraph.GoalRune:
		return styleGoal.Render(string(ch))
	case gridgraph.EmptyRune:
		if visited {
			return styleVisited.Render(iconVisited)
		}
	}

	return string(ch)
}

// visitedSet turns an expansion order into a lookup set.
func visitedSet(order []gridgraph.Cell) map[gridgraph.Cell]bool {
	set := make(map[gridgraph.Cell]bool, len(order))
	for _, c := range order {
		set[c] = true
	}

	return set
}

package gridgraph

import (
	"container/list"

	"github.com/katalvlaran/gridsearch/motion"
)

// MinBreach finds a path from start to goal that crosses the fewest obstacle
// cells, and returns it together with that obstacle count. Boundary cells are
// never crossed. A cost of 0 means goal is already reachable.
//
// Behavior:
//  1. Require both markers (ErrMarkersUnset).
//  2. 0-1 BFS from start over in-bounds, non-boundary cells:
//     • stepping onto an open cell     → cost 0
//     • stepping onto an obstacle cell → cost 1
//  3. Stop when goal is popped.
//  4. Reconstruct the path via predecessors.
//
// Returns ErrNoBreach when the boundary separates start from goal.
//
// Complexity: O(R·C·d) time, O(R·C) memory.
func (g *Grid) MinBreach(dirs []motion.Direction) (path []Cell, cost int, err error) {
	if !g.hasStart || !g.hasGoal {
		return nil, 0, ErrMarkersUnset
	}

	const inf = int(^uint(0) >> 1)
	dist := make(map[Cell]int)
	prev := make(map[Cell]Cell)
	distOf := func(c Cell) int {
		if d, ok := dist[c]; ok {
			return d
		}
		return inf
	}

	// 0-1 BFS: deque processes cost 0 at front, cost 1 at back
	dq := list.New()
	dist[g.start] = 0
	dq.PushFront(g.start)
	reached := false

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(Cell)
		if u == g.goal {
			reached = true
			break
		}
		for _, d := range dirs {
			v := u.Step(d)
			if !g.InBounds(v) || g.cells[v.Row][v.Col] == BoundaryRune {
				continue
			}
			step := 0
			if g.cells[v.Row][v.Col] == ObstacleRune {
				step = 1
			}
			nd := dist[u] + step
			if nd < distOf(v) {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	if !reached {
		return nil, 0, ErrNoBreach
	}
	for at := g.goal; ; at = prev[at] {
		path = append(path, at)
		if at == g.start {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[g.goal], nil
}

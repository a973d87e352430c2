package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/motion"
)

// walker encapsulates mutable search state.
type walker struct {
	grid  *gridgraph.Grid
	spec  motion.Spec
	algo  Algorithm
	opts  Options
	ctx   context.Context
	src   motion.Source
	start gridgraph.Cell
	goal  gridgraph.Cell
	open  openSet
	prev  map[gridgraph.Cell]gridgraph.Cell
	steps map[gridgraph.Cell]int
	order []int
	res   *Result
}

// Search runs algo from the grid's start to its goal under motion spec m,
// applying any number of functional Options.
// Returns ErrGridNil, ErrStartUnset, ErrGoalUnset, ErrStartInvalid or
// ErrGoalInvalid for unusable input, motion.ErrNoDirections for an empty
// spec, ErrUnknownAlgorithm, ErrOptionViolation for bad options, ErrVisitLimit,
// ctx.Err() or a wrapped OnVisit error. On loop errors the partial Result is
// returned alongside the error.
func Search(g *gridgraph.Grid, m motion.Spec, algo Algorithm, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, ok := g.Start()
	if !ok {
		return nil, ErrStartUnset
	}
	goal, ok := g.Goal()
	if !ok {
		return nil, ErrGoalUnset
	}
	if !g.IsValid(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartInvalid, start)
	}
	if !g.IsValid(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalInvalid, goal)
	}
	if m.Len() == 0 {
		return nil, fmt.Errorf("search: %w", motion.ErrNoDirections)
	}

	open, err := newOpenSet(algo)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", err, algo)
	}

	src := o.Source
	if src == nil && m.Weighted() {
		src = motion.NewSource(0)
	}

	w := &walker{
		grid:  g,
		spec:  m,
		algo:  algo,
		opts:  o,
		ctx:   o.Ctx,
		src:   src,
		start: start,
		goal:  goal,
		open:  open,
		prev:  make(map[gridgraph.Cell]gridgraph.Cell),
		steps: make(map[gridgraph.Cell]int),
		order: make([]int, 0, m.Len()),
		res:   &Result{Algorithm: algo},
	}

	// Seed the frontier with start (its own predecessor marks the root)
	w.discover(start, start, 0)
	err = w.loop()
	if w.opts.Tree {
		w.res.Tree = w.tree()
	}

	return w.res, err
}

// DFS runs depth-first search. See Search.
func DFS(g *gridgraph.Grid, m motion.Spec, opts ...Option) (*Result, error) {
	return Search(g, m, AlgorithmDFS, opts...)
}

// BFS runs breadth-first search. See Search.
func BFS(g *gridgraph.Grid, m motion.Spec, opts ...Option) (*Result, error) {
	return Search(g, m, AlgorithmBFS, opts...)
}

// Dijkstra runs uniform-cost search over a binary heap. See Search.
func Dijkstra(g *gridgraph.Grid, m motion.Spec, opts ...Option) (*Result, error) {
	return Search(g, m, AlgorithmDijkstra, opts...)
}

// AStar runs A* over a sorted priority queue. See Search.
func AStar(g *gridgraph.Grid, m motion.Spec, opts ...Option) (*Result, error) {
	return Search(g, m, AlgorithmAStar, opts...)
}

// loop pops cells until the goal, an empty frontier, an error or cancellation.
func (w *walker) loop() error {
	for {
		// cancellation check (once per expansion)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		cur, ok := w.open.pop()
		if !ok {
			return nil
		}
		if w.opts.MaxVisits > 0 && w.res.Visited >= w.opts.MaxVisits {
			return fmt.Errorf("%w: %d", ErrVisitLimit, w.opts.MaxVisits)
		}
		w.res.Visited++
		if err := w.opts.OnVisit(cur); err != nil {
			return fmt.Errorf("search: OnVisit error at %v: %w", cur, err)
		}

		if cur == w.goal {
			w.res.Found = true
			w.res.Path = w.pathTo(cur)
			w.res.Cost = len(w.res.Path) - 1
			return nil
		}
		w.expand(cur)
	}
}

// expand discovers the unseen passable neighbors of cur in motion order.
func (w *walker) expand(cur gridgraph.Cell) {
	next := w.steps[cur] + 1
	w.order = w.spec.AppendOrder(w.order[:0], w.src)
	for _, i := range w.order {
		nbr := cur.Step(w.spec.Direction(i))
		if !w.grid.Passable(nbr) {
			continue
		}
		if _, seen := w.prev[nbr]; seen {
			continue
		}
		w.discover(nbr, cur, next)
	}
}

// discover records the predecessor and step count of c and pushes it.
func (w *walker) discover(c, from gridgraph.Cell, steps int) {
	w.prev[c] = from
	w.steps[c] = steps
	p := w.priority(c, steps)
	w.opts.OnEnqueue(c, p)
	w.open.push(c, p)
	w.res.Added++
}

// priority is the frontier key: g for most algorithms, g+h for AStar.
func (w *walker) priority(c gridgraph.Cell, steps int) float64 {
	if w.algo == AlgorithmAStar {
		return float64(steps) + w.opts.Heuristic(c, w.goal)
	}

	return float64(steps)
}

// pathTo walks predecessors back to start and reverses.
func (w *walker) pathTo(dest gridgraph.Cell) []gridgraph.Cell {
	path := []gridgraph.Cell{}
	for cur := dest; ; cur = w.prev[cur] {
		path = append(path, cur)
		if cur == w.start {
			break
		}
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// tree copies the predecessor map without the start's self-link.
func (w *walker) tree() map[gridgraph.Cell]gridgraph.Cell {
	t := make(map[gridgraph.Cell]gridgraph.Cell, len(w.prev))
	for c, p := range w.prev {
		if c != w.start {
			t[c] = p
		}
	}

	return t
}

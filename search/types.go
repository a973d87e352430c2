// Package search provides tunable options, error definitions and the result
// type for grid searches.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/motion"
)

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrStartUnset is returned when the grid has no start marker.
	ErrStartUnset = errors.New("search: start is not set")

	// ErrGoalUnset is returned when the grid has no goal marker.
	ErrGoalUnset = errors.New("search: goal is not set")

	// ErrStartInvalid is returned when the start marker no longer sits on a valid cell.
	ErrStartInvalid = errors.New("search: start is not a valid cell")

	// ErrGoalInvalid is returned when the goal marker no longer sits on a valid cell.
	ErrGoalInvalid = errors.New("search: goal is not a valid cell")

	// ErrUnknownAlgorithm is returned for an Algorithm value or name that is not recognized.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrVisitLimit is returned when a search expands more cells than WithMaxVisits allows.
	ErrVisitLimit = errors.New("search: visit limit reached")
)

// Algorithm selects the frontier discipline of a search.
type Algorithm int

const (
	// AlgorithmDFS is depth-first search over a stack.
	AlgorithmDFS Algorithm = iota
	// AlgorithmBFS is breadth-first search over a queue.
	AlgorithmBFS
	// AlgorithmDijkstra is uniform-cost search over a binary heap.
	AlgorithmDijkstra
	// AlgorithmAStar is heuristic search over a sorted priority queue.
	AlgorithmAStar
)

// Algorithms lists every supported algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmDFS, AlgorithmBFS, AlgorithmDijkstra, AlgorithmAStar}
}

// String returns the lowercase short name: dfs, bfs, dijkstra, astar.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDFS:
		return "dfs"
	case AlgorithmBFS:
		return "bfs"
	case AlgorithmDijkstra:
		return "dijkstra"
	case AlgorithmAStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Besides the String forms it accepts "a*", "a-star", "a_star" and "ucs".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first":
		return AlgorithmDFS, nil
	case "bfs", "breadth-first":
		return AlgorithmBFS, nil
	case "dijkstra", "ucs":
		return AlgorithmDijkstra, nil
	case "astar", "a*", "a-star", "a_star":
		return AlgorithmAStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Heuristic estimates the remaining steps from a cell to the goal.
type Heuristic func(from, goal gridgraph.Cell) float64

// Manhattan is |Δrow| + |Δcol|, the default A* heuristic.
func Manhattan(from, goal gridgraph.Cell) float64 {
	return float64(abs(from.Row-goal.Row) + abs(from.Col-goal.Col))
}

// Chebyshev is max(|Δrow|, |Δcol|), a lower bound on steps under 8-way motion.
func Chebyshev(from, goal gridgraph.Cell) float64 {
	return float64(max(abs(from.Row-goal.Row), abs(from.Col-goal.Col)))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. a negative visit limit), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per expansion.
	Ctx context.Context

	// Source draws the direction order of weighted motion specs.
	// nil means motion.NewSource(0), created once per search.
	Source motion.Source

	// Heuristic is used by AStar only.
	Heuristic Heuristic

	// OnVisit is called for every popped cell, before the goal check.
	// If it returns an error, the search aborts and propagates it.
	OnVisit func(c gridgraph.Cell) error

	// OnEnqueue is called for every discovered cell with the priority it was
	// pushed with (steps for DFS, BFS and Dijkstra, g+h for AStar).
	OnEnqueue func(c gridgraph.Cell, priority float64)

	// MaxVisits, if > 0, aborts with ErrVisitLimit before the search
	// would expand more than MaxVisits cells.
	MaxVisits int

	// Tree asks for the predecessor map in Result.Tree.
	Tree bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - default seeded Source (nil)
//   - Manhattan heuristic
//   - no-op hooks
//   - no visit limit, no tree.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: Manhattan,
		OnVisit:   func(gridgraph.Cell) error { return nil },
		OnEnqueue: func(gridgraph.Cell, float64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSource draws weighted direction orders from src.
// A nil src is an ErrOptionViolation.
func WithSource(src motion.Source) Option {
	return func(o *Options) {
		if src == nil {
			o.err = fmt.Errorf("%w: nil motion source", ErrOptionViolation)
			return
		}
		o.Source = src
	}
}

// WithSeed is WithSource(motion.NewSource(seed)); seed 0 selects the default seed.
func WithSeed(seed int64) Option {
	return WithSource(motion.NewSource(seed))
}

// WithHeuristic replaces the A* heuristic. A nil h is an ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithOnVisit registers a callback run on every expansion; returning an
// error from it stops the search.
func WithOnVisit(fn func(c gridgraph.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnEnqueue registers a callback run on every discovery.
func WithOnEnqueue(fn func(c gridgraph.Cell, priority float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithMaxVisits bounds the number of expansions.
//
//	n > 0: abort with ErrVisitLimit past n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisits(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisits cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisits = n
	}
}

// WithTree keeps the predecessor map in Result.Tree.
func WithTree() Option {
	return func(o *Options) {
		o.Tree = true
	}
}

// Result holds the outcome of one search:
//   - Path:    start to goal inclusive, nil unless Found.
//   - Visited: cells popped from the frontier.
//   - Added:   cells pushed onto the frontier, start included.
//   - Cost:    steps along Path.
//   - Tree:    discovered cell → predecessor, start excluded; only with WithTree.
type Result struct {
	Algorithm Algorithm
	Path      []gridgraph.Cell
	Found     bool
	Visited   int
	Added     int
	Cost      int
	Tree      map[gridgraph.Cell]gridgraph.Cell
}

// PathString formats Path as "(r,c) -> (r,c) -> ...", or "no path".
func (r *Result) PathString() string {
	if !r.Found {
		return "no path"
	}
	parts := make([]string, len(r.Path))
	for i, c := range r.Path {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}

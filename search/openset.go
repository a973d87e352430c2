package search

import (
	"github.com/katalvlaran/gridsearch/frontier"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// openSet is the walker's view of a frontier: push with a priority, pop the next cell.
type openSet interface {
	push(c gridgraph.Cell, priority float64)
	pop() (gridgraph.Cell, bool)
}

// plain adapts Stack and Queue; priorities are ignored.
type plain struct {
	f frontier.Frontier[gridgraph.Cell]
}

func (p plain) push(c gridgraph.Cell, _ float64) { p.f.Push(c) }

func (p plain) pop() (gridgraph.Cell, bool) { return p.f.Pop() }

// ranked adapts PriorityQueue and BinaryHeap.
type ranked struct {
	f frontier.Frontier[frontier.Item[gridgraph.Cell]]
}

func (r ranked) push(c gridgraph.Cell, priority float64) {
	r.f.Push(frontier.Item[gridgraph.Cell]{Priority: priority, Value: c})
}

func (r ranked) pop() (gridgraph.Cell, bool) {
	it, ok := r.f.Pop()
	return it.Value, ok
}

// newOpenSet returns the frontier that defines algo.
func newOpenSet(algo Algorithm) (openSet, error) {
	switch algo {
	case AlgorithmDFS:
		return plain{frontier.NewStack[gridgraph.Cell]()}, nil
	case AlgorithmBFS:
		return plain{frontier.NewQueue[gridgraph.Cell]()}, nil
	case AlgorithmDijkstra:
		return ranked{frontier.NewBinaryHeap[gridgraph.Cell](frontier.Min)}, nil
	case AlgorithmAStar:
		return ranked{frontier.NewPriorityQueue[gridgraph.Cell](frontier.Min)}, nil
	default:
		return nil, ErrUnknownAlgorithm
	}
}

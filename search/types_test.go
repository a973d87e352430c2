package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in   string
		want search.Algorithm
	}{
		{"dfs", search.AlgorithmDFS},
		{" BFS ", search.AlgorithmBFS},
		{"breadth-first", search.AlgorithmBFS},
		{"Dijkstra", search.AlgorithmDijkstra},
		{"A*", search.AlgorithmAStar},
		{"a-star", search.AlgorithmAStar},
		{"astar", search.AlgorithmAStar},
	}
	for _, tc := range tests {
		got, err := search.ParseAlgorithm(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := search.ParseAlgorithm("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestAlgorithm_StringRoundTrip(t *testing.T) {
	for _, algo := range search.Algorithms() {
		got, err := search.ParseAlgorithm(algo.String())
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}
	assert.Equal(t, "algorithm(9)", search.Algorithm(9).String())
}

func TestHeuristics(t *testing.T) {
	a, b := gridgraph.Cell{Row: 1, Col: 7}, gridgraph.Cell{Row: 4, Col: 2}
	assert.Equal(t, 8.0, search.Manhattan(a, b))
	assert.Equal(t, 5.0, search.Chebyshev(a, b))
	assert.Equal(t, 0.0, search.Manhattan(a, a))
}

func TestResult_PathString(t *testing.T) {
	r := &search.Result{Found: true, Path: []gridgraph.Cell{{1, 1}, {1, 2}}}
	assert.Equal(t, "(1,1) -> (1,2)", r.PathString())
	assert.Equal(t, "no path", (&search.Result{}).PathString())
}

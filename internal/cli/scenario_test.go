package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/motion"
	"github.com/katalvlaran/gridsearch/search"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestLoadScenario_RelativeGrid(t *testing.T) {
	sc, err := loadScenario("testdata/simple.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "simple.txt"), sc.Grid)

	s, err := sc.build(search.Algorithms())
	require.NoError(t, err)
	start, _ := s.grid.Start()
	goal, _ := s.grid.Goal()
	assert.Equal(t, gridgraph.Cell{Row: 6, Col: 2}, start)
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 12}, goal)
	assert.Equal(t, []search.Algorithm{search.AlgorithmAStar}, s.algos)
	assert.Equal(t, 4, s.spec.Len())
}

func TestLoadScenario_Errors(t *testing.T) {
	_, err := loadScenario("testdata/missing.toml")
	assert.Error(t, err)

	bad := writeFile(t, t.TempDir(), "bad.toml", "start = [1, 2\n")
	_, err = loadScenario(bad)
	assert.ErrorContains(t, err, "parse scenario")
}

func TestScenario_InlineLayout(t *testing.T) {
	path := writeFile(t, t.TempDir(), "room.toml", `
layout = '''
*****
*S  *
*   *
*  G*
*****
'''
motion = "8"
seed = 9
max_visits = 50
`)
	sc, err := loadScenario(path)
	require.NoError(t, err)
	s, err := sc.build([]search.Algorithm{search.AlgorithmBFS})
	require.NoError(t, err)

	assert.Equal(t, 5, s.grid.Rows())
	assert.Equal(t, 8, s.spec.Len())
	assert.Equal(t, int64(9), s.seed)
	assert.Equal(t, 50, s.maxVisits)

	res, err := search.Search(s.grid, s.spec, s.algos[0], s.options()...)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 2, res.Cost)
}

func TestScenario_EditsAndMotion(t *testing.T) {
	sc := &Scenario{
		Layout:        "*****\n*S  *\n*   *\n*  G*\n*****\n",
		Obstacles:     [][]int{{2, 2}, {2, 1}},
		Clear:         [][]int{{2, 1}},
		Offsets:       [][]int{{0, 1}, {1, 0}},
		Probabilities: []float64{0.5, 0.5},
		Algorithms:    []string{"dfs", "a*"},
	}
	s, err := sc.build(nil)
	require.NoError(t, err)

	assert.Equal(t, []gridgraph.Cell{{Row: 2, Col: 2}}, s.grid.Obstacles())
	assert.Equal(t, []motion.Direction{{DRow: 0, DCol: 1}, {DRow: 1, DCol: 0}}, s.spec.Directions())
	assert.True(t, s.spec.Weighted())
	assert.Equal(t, []search.Algorithm{search.AlgorithmDFS, search.AlgorithmAStar}, s.algos)
}

func TestScenario_BuildErrors(t *testing.T) {
	room := "*****\n*   *\n*   *\n*   *\n*****"
	tests := []struct {
		name string
		sc   Scenario
		want error
	}{
		{"no grid", Scenario{}, errNoGrid},
		{"short start", Scenario{Layout: room, Start: []int{1}}, errCellValue},
		{"start on boundary", Scenario{Layout: room, Start: []int{0, 0}}, gridgraph.ErrInvalidPlacement},
		{"obstacle outside", Scenario{Layout: room, Obstacles: [][]int{{9, 9}}}, gridgraph.ErrInvalidPlacement},
		{"bad offset", Scenario{Layout: room, Offsets: [][]int{{1, 2, 3}}}, errCellValue},
		{"zero offset", Scenario{Layout: room, Offsets: [][]int{{0, 0}}}, motion.ErrZeroOffset},
		{"unknown preset", Scenario{Layout: room, Motion: "hex"}, motion.ErrUnknownPreset},
		{"probability count", Scenario{Layout: room, Probabilities: []float64{1}}, motion.ErrProbabilityCount},
		{"unknown algorithm", Scenario{Layout: room, Algorithms: []string{"ida"}}, search.ErrUnknownAlgorithm},
		{"broken layout", Scenario{Layout: "*** \n***"}, gridgraph.ErrBoundary},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.sc.build(nil)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseCell(t *testing.T) {
	rc, err := parseCell(" 6, 2")
	require.NoError(t, err)
	assert.Equal(t, []int{6, 2}, rc)

	for _, bad := range []string{"", "6", "6,2,1", "a,b"} {
		_, err := parseCell(bad)
		assert.ErrorIs(t, err, errCellValue, bad)
	}
}

func TestSplitLayout(t *testing.T) {
	assert.Equal(t, []string{"***", "* *", "***"}, splitLayout("***\r\n* *\r\n***\r\n"))
	assert.Equal(t, []string{"***"}, splitLayout("***"))
}

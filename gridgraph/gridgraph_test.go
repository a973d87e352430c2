package gridgraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// openRoom is a 5×5 room with no obstacles.
var openRoom = []string{
	"*****",
	"*   *",
	"*   *",
	"*   *",
	"*****",
}

func mustLoad(t *testing.T, rows []string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.LoadStrings(rows)
	require.NoError(t, err)

	return g
}

func TestReadFile_Fixtures(t *testing.T) {
	simple, err := gridgraph.ReadFile("testdata/simple.txt")
	require.NoError(t, err)
	assert.Equal(t, 9, simple.Rows())
	assert.Equal(t, 19, simple.Width())
	assert.Equal(t, 12, simple.RowLen(7))
	assert.Equal(t, 0, simple.RowLen(9))

	diagonal, err := gridgraph.ReadFile("testdata/diagonal.txt")
	require.NoError(t, err)
	assert.Equal(t, 14, diagonal.Rows())
	assert.Equal(t, 17, diagonal.Width())

	_, err = gridgraph.ReadFile("testdata/missing.txt")
	assert.Error(t, err)
}

func TestReadLayout_CRLF(t *testing.T) {
	g, err := gridgraph.ReadLayout(strings.NewReader("***\r\n*S*\r\n***\r\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	start, ok := g.Start()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 1}, start)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, gridgraph.ErrEmptyGrid},
		{"row with one boundary", []string{"***", "*  ", "***"}, gridgraph.ErrBoundary},
		{"blank row", []string{"***", "", "***"}, gridgraph.ErrBoundary},
		{"column without boundary", []string{"* *", "* *"}, gridgraph.ErrBoundary},
		{"second start", []string{"****", "*SS*", "****"}, gridgraph.ErrDuplicateMarker},
		{"second goal", []string{"****", "*GG*", "****"}, gridgraph.ErrDuplicateMarker},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.LoadStrings(tc.rows)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_CopiesInput(t *testing.T) {
	rows := [][]rune{[]rune("***"), []rune("* *"), []rune("***")}
	g, err := gridgraph.Load(rows)
	require.NoError(t, err)
	rows[1][1] = '#'
	assert.Equal(t, gridgraph.Empty, g.KindOf(gridgraph.Cell{Row: 1, Col: 1}))
}

func TestLoad_Markers(t *testing.T) {
	g := mustLoad(t, []string{"*****", "*S G*", "*****"})

	start, ok := g.Start()
	require.True(t, ok)
	goal, ok := g.Goal()
	require.True(t, ok)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 1}, start)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 3}, goal)
	assert.Equal(t, gridgraph.Start, g.KindOf(start))
	assert.Equal(t, gridgraph.Goal, g.KindOf(goal))
	assert.True(t, g.Passable(start))
	assert.Equal(t, "*****\n*S G*\n*****", g.String())
}

func TestIsValid_Simple(t *testing.T) {
	g, err := gridgraph.ReadFile("testdata/simple.txt")
	require.NoError(t, err)

	tests := []struct {
		cell gridgraph.Cell
		want bool
	}{
		{gridgraph.Cell{Row: 6, Col: 2}, true},
		{gridgraph.Cell{Row: 2, Col: 12}, true},
		{gridgraph.Cell{Row: 2, Col: 14}, true},
		{gridgraph.Cell{Row: 0, Col: 14}, false},  // above column's top boundary
		{gridgraph.Cell{Row: 0, Col: 1}, false},   // left of row's first boundary
		{gridgraph.Cell{Row: 1, Col: 14}, false},  // boundary
		{gridgraph.Cell{Row: 2, Col: 6}, false},   // obstacle
		{gridgraph.Cell{Row: 7, Col: 12}, false},  // past row end
		{gridgraph.Cell{Row: -1, Col: 3}, false},  // negative row
		{gridgraph.Cell{Row: 9, Col: 3}, false},   // past last row
		{gridgraph.Cell{Row: 3, Col: -2}, false},  // negative column
		{gridgraph.Cell{Row: 5, Col: 12}, false},  // below column's bottom boundary
		{gridgraph.Cell{Row: 1, Col: 17}, true},   // right corridor
		{gridgraph.Cell{Row: 0, Col: 15}, false},  // outside
		{gridgraph.Cell{Row: 8, Col: 5}, false},   // bottom boundary
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, g.IsValid(tc.cell), "IsValid(%v)", tc.cell)
	}
}

func TestKindOf(t *testing.T) {
	g, err := gridgraph.ReadFile("testdata/simple.txt")
	require.NoError(t, err)

	assert.Equal(t, gridgraph.Boundary, g.KindOf(gridgraph.Cell{Row: 0, Col: 3}))
	assert.Equal(t, gridgraph.Obstacle, g.KindOf(gridgraph.Cell{Row: 2, Col: 7}))
	assert.Equal(t, gridgraph.Empty, g.KindOf(gridgraph.Cell{Row: 0, Col: 0}))
	assert.Equal(t, gridgraph.Boundary, g.KindOf(gridgraph.Cell{Row: 7, Col: 15}), "past a short row")
	assert.Equal(t, "obstacle", gridgraph.Obstacle.String())
}

func TestMarkers_Placement(t *testing.T) {
	g := mustLoad(t, openRoom)
	_, ok := g.Start()
	assert.False(t, ok)

	require.NoError(t, g.SetStart(gridgraph.Cell{Row: 1, Col: 1}))
	require.NoError(t, g.SetStart(gridgraph.Cell{Row: 2, Col: 2}))
	start, _ := g.Start()
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 2}, start)
	assert.Equal(t, gridgraph.Empty, g.KindOf(gridgraph.Cell{Row: 1, Col: 1}))

	// start and goal may share a cell
	require.NoError(t, g.SetGoal(gridgraph.Cell{Row: 2, Col: 2}))
	goal, _ := g.Goal()
	assert.Equal(t, start, goal)

	err := g.SetGoal(gridgraph.Cell{Row: 0, Col: 2})
	assert.ErrorIs(t, err, gridgraph.ErrInvalidPlacement)
	goal, _ = g.Goal()
	assert.Equal(t, gridgraph.Cell{Row: 2, Col: 2}, goal, "failed placement leaves grid unchanged")
}

func TestObstacles(t *testing.T) {
	g := mustLoad(t, openRoom)
	c := gridgraph.Cell{Row: 1, Col: 2}

	require.NoError(t, g.AddObstacle(c))
	assert.Equal(t, gridgraph.Obstacle, g.KindOf(c))
	assert.False(t, g.IsValid(c))
	assert.False(t, g.Passable(c))
	assert.Equal(t, []gridgraph.Cell{c}, g.Obstacles())

	assert.ErrorIs(t, g.AddObstacle(c), gridgraph.ErrInvalidPlacement)
	assert.ErrorIs(t, g.SetStart(c), gridgraph.ErrInvalidPlacement)
	assert.ErrorIs(t, g.AddObstacle(gridgraph.Cell{Row: 0, Col: 0}), gridgraph.ErrInvalidPlacement)

	require.NoError(t, g.RemoveObstacle(c))
	assert.True(t, g.IsValid(c))
	assert.Empty(t, g.Obstacles())
	require.NoError(t, g.RemoveObstacle(c), "clearing an open cell is a no-op")
	assert.ErrorIs(t, g.RemoveObstacle(gridgraph.Cell{Row: 4, Col: 4}), gridgraph.ErrInvalidPlacement)
}

func TestAddObstacle_OverMarker(t *testing.T) {
	g := mustLoad(t, []string{"*****", "*S G*", "*****"})
	start, _ := g.Start()

	require.NoError(t, g.AddObstacle(start))
	_, ok := g.Start()
	assert.True(t, ok, "marker stays set")
	assert.Equal(t, gridgraph.Obstacle, g.KindOf(start))
	assert.False(t, g.IsValid(start))
}

func TestClone_Independent(t *testing.T) {
	g := mustLoad(t, openRoom)
	cp := g.Clone()
	require.NoError(t, cp.AddObstacle(gridgraph.Cell{Row: 2, Col: 2}))
	require.NoError(t, cp.SetStart(gridgraph.Cell{Row: 1, Col: 1}))

	assert.Equal(t, gridgraph.Empty, g.KindOf(gridgraph.Cell{Row: 2, Col: 2}))
	_, ok := g.Start()
	assert.False(t, ok)
	assert.Equal(t, strings.Join(openRoom, "\n"), g.String())
}

func TestRender(t *testing.T) {
	g := mustLoad(t, openRoom)
	require.NoError(t, g.SetStart(gridgraph.Cell{Row: 1, Col: 1}))
	require.NoError(t, g.SetGoal(gridgraph.Cell{Row: 3, Col: 3}))

	path := []gridgraph.Cell{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}}
	out := g.Render(path)
	got := make([]string, len(out))
	for i, row := range out {
		got[i] = string(row)
	}
	assert.Equal(t, []string{
		"*****",
		"*S  *",
		"*·  *",
		"*··G*",
		"*****",
	}, got)

	// the grid itself is untouched
	assert.Equal(t, gridgraph.Empty, g.KindOf(gridgraph.Cell{Row: 2, Col: 1}))
	// single-cell and empty paths draw no markers
	assert.Equal(t, g.String(), joinRows(g.Render([]gridgraph.Cell{{1, 1}})))
	assert.Equal(t, g.String(), joinRows(g.Render(nil)))
}

func joinRows(rows [][]rune) string {
	s := make([]string, len(rows))
	for i, r := range rows {
		s[i] = string(r)
	}

	return strings.Join(s, "\n")
}

func TestCell_Format(t *testing.T) {
	assert.Equal(t, "(6,2)", gridgraph.Cell{Row: 6, Col: 2}.String())
}

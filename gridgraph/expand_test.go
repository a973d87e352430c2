package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/motion"
)

// TestMinBreach_Wall crosses a full obstacle row: exactly one obstacle
// must be cleared.
func TestMinBreach_Wall(t *testing.T) {
	g := mustLoad(t, []string{
		"*****",
		"*S  *",
		"*###*",
		"*  G*",
		"*****",
	})

	path, cost, err := g.MinBreach(motion.Offsets4)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	assert.Equal(t, []gridgraph.Cell{{1, 1}, {2, 1}, {3, 1}, {3, 2}, {3, 3}}, path)
}

func TestMinBreach_Column(t *testing.T) {
	g := mustLoad(t, []string{
		"*******",
		"*S # G*",
		"*  #  *",
		"*  #  *",
		"*******",
	})

	path, cost, err := g.MinBreach(motion.Offsets4)
	require.NoError(t, err)
	assert.Equal(t, 1, cost)
	require.NotEmpty(t, path)
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 1}, path[0])
	assert.Equal(t, gridgraph.Cell{Row: 1, Col: 5}, path[len(path)-1])

	obstacles := 0
	for _, c := range path {
		if g.KindOf(c) == gridgraph.Obstacle {
			obstacles++
		}
	}
	assert.Equal(t, cost, obstacles)
}

func TestMinBreach_AlreadyReachable(t *testing.T) {
	g, err := gridgraph.ReadFile("testdata/simple.txt")
	require.NoError(t, err)
	require.NoError(t, g.SetStart(gridgraph.Cell{Row: 6, Col: 2}))
	require.NoError(t, g.SetGoal(gridgraph.Cell{Row: 2, Col: 12}))

	path, cost, err := g.MinBreach(motion.Offsets4)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Len(t, path, 37)
	for _, c := range path {
		assert.True(t, g.Passable(c), "%v", c)
	}
}

func TestMinBreach_StartIsGoal(t *testing.T) {
	g := mustLoad(t, openRoom)
	c := gridgraph.Cell{Row: 2, Col: 2}
	require.NoError(t, g.SetStart(c))
	require.NoError(t, g.SetGoal(c))

	path, cost, err := g.MinBreach(motion.Offsets4)
	require.NoError(t, err)
	assert.Equal(t, 0, cost)
	assert.Equal(t, []gridgraph.Cell{c}, path)
}

func TestMinBreach_Errors(t *testing.T) {
	g := mustLoad(t, openRoom)
	_, _, err := g.MinBreach(motion.Offsets4)
	assert.ErrorIs(t, err, gridgraph.ErrMarkersUnset)

	sealed := mustLoad(t, []string{
		"*******",
		"*S * G*",
		"*  *  *",
		"*******",
	})
	_, _, err = sealed.MinBreach(motion.Offsets8)
	assert.ErrorIs(t, err, gridgraph.ErrNoBreach)
}

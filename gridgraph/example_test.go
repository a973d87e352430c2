package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/motion"
)

// ExampleGrid_Render draws a path between the markers of a small room.
// The first and last path cells keep their 'S' and 'G' runes.
func ExampleGrid_Render() {
	g, _ := gridgraph.LoadStrings([]string{
		"*****",
		"*S  *",
		"*   *",
		"*  G*",
		"*****",
	})
	path := []gridgraph.Cell{{1, 1}, {1, 2}, {1, 3}, {2, 3}, {3, 3}}
	for _, row := range g.Render(path) {
		fmt.Println(string(row))
	}

	// Output:
	// *****
	// *S··*
	// *  ·*
	// *  G*
	// *****
}

// ExampleGrid_MinBreach reports how many obstacles separate start and goal.
func ExampleGrid_MinBreach() {
	g, _ := gridgraph.LoadStrings([]string{
		"*******",
		"*S # G*",
		"*  #  *",
		"*******",
	})
	_, cost, err := g.MinBreach(motion.Offsets4)
	fmt.Println(cost, err)

	// Output:
	// 1 <nil>
}

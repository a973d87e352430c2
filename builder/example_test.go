package builder_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/builder"
	"github.com/katalvlaran/gridsearch/gridgraph"
)

// ExampleBuildLayout composes a room, a wall and the two markers.
func ExampleBuildLayout() {
	rows, err := builder.BuildLayout(5, 7, nil,
		builder.Room(),
		builder.Wall(gridgraph.Cell{Row: 1, Col: 3}, gridgraph.Cell{Row: 3, Col: 3}),
		builder.Markers(gridgraph.Cell{Row: 1, Col: 1}, gridgraph.Cell{Row: 1, Col: 5}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, row := range rows {
		fmt.Println(row)
	}

	// Output:
	// *******
	// *S # G*
	// *  #  *
	// *  #  *
	// *******
}

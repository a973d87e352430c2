// Package gridgraph models a 2D character grid as an implicit graph for
// pathfinding: boundary and obstacle cells block movement, every other cell
// is open, and start/goal markers name the endpoints of a search.
//
// What:
//
//   - Grid holds jagged rows of runes loaded from text ('*' boundary,
//     '#' obstacle, 'S' start, 'G' goal, anything else open).
//   - Structural validation at load: every row and every column needs at
//     least two boundary cells.
//   - IsValid decides whether a cell lies inside the bounded region and may
//     carry a marker or an obstacle.
//   - Reachable and Regions flood-fill open cells under a set of directions.
//   - MinBreach finds the fewest obstacles to clear between start and goal
//     (0-1 BFS).
//
// Why:
//
//   - Search algorithms only need "is this neighbor passable?" and the two
//     markers; keeping the grid free of traversal state lets several
//     searches share one Grid.
//   - Text layouts double as test fixtures and as CLI rendering output.
//
// Complexity:
//
//   - Load:             O(R×C) time and memory.
//   - IsValid/Passable: O(1).
//   - Reachable:        O(R×C×d), d = number of directions.
//   - Regions:          O(R×C×d).
//   - MinBreach:        O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: layout has no rows.
//   - ErrBoundary: a row or column has fewer than two boundary cells.
//   - ErrDuplicateMarker: layout text contains a second 'S' or 'G'.
//   - ErrInvalidPlacement: marker or obstacle placed on an invalid cell.
//   - ErrMarkersUnset: MinBreach without start or goal.
//   - ErrNoBreach: goal cannot be connected to start even by clearing obstacles.
//
// A Grid is safe for concurrent reads. Mutating it while a search runs
// over it is a caller error.
package gridgraph

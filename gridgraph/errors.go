package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the layout has no rows.
	ErrEmptyGrid = errors.New("gridgraph: layout must have at least one row")
	// ErrBoundary indicates a row or column with fewer than two boundary cells.
	ErrBoundary = errors.New("gridgraph: every row and column needs at least two boundary cells")
	// ErrDuplicateMarker indicates a second start or goal marker in the layout.
	ErrDuplicateMarker = errors.New("gridgraph: duplicate start or goal marker")
	// ErrInvalidPlacement indicates a marker or obstacle placed on an invalid cell.
	ErrInvalidPlacement = errors.New("gridgraph: invalid placement")
	// ErrMarkersUnset indicates an operation that needs both start and goal.
	ErrMarkersUnset = errors.New("gridgraph: start and goal must be set")
	// ErrNoBreach indicates start and goal stay disconnected even with obstacles cleared.
	ErrNoBreach = errors.New("gridgraph: goal unreachable even through obstacles")
)

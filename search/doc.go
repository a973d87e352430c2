// Package search finds a path between the start and goal markers of a
// gridgraph.Grid with one of four classic strategies, all driven by the same
// expansion loop and differing only in the frontier that orders it.
//
// Overview:
//
//   - DFS       frontier.Stack, explores the newest discovery first.
//   - BFS       frontier.Queue, explores in discovery order; shortest in steps.
//   - Dijkstra  min frontier.BinaryHeap keyed by g (steps from start).
//   - AStar     min frontier.PriorityQueue keyed by g + h, h = Manhattan by default.
//
// The loop:
//
//	seed predecessors with {start}, push start, added = 1
//	while the frontier is not empty:
//	    pop a cell, visited++
//	    if it is the goal: rebuild the path from predecessors and stop
//	    for each direction in the motion order for this expansion:
//	        neighbor = cell + direction
//	        if neighbor is passable and has no predecessor yet:
//	            record cell as its predecessor, push it, added++
//
// Cells are marked when discovered, not when expanded, and a recorded
// predecessor is never relaxed. Every step costs 1, so BFS and Dijkstra
// return paths with the fewest steps. A* usually matches them with fewer
// expansions but, without relaxation, does not guarantee it.
//
// Motion:
//
//	The motion.Spec lists the neighbor offsets. Weighted specs redraw the
//	direction order for every expansion from a motion.Source; WithSeed or
//	WithSource make runs reproducible, and the default is motion.NewSource(0).
//
// Outcome:
//
//   - Found == true: Path runs from start to goal inclusive, Cost = len(Path)-1.
//   - Found == false with a nil error: the goal is unreachable (NotFound).
//     Visited and Added are still reported.
//
// Complexity:
//
//   - DFS, BFS:  O(R×C×d) time, O(R×C) memory.
//   - Dijkstra:  O(R×C×d·log(R×C)).
//   - AStar:     O(R×C×d·R×C) worst case; the sorted frontier inserts in O(n).
//
// Errors:
//
//   - ErrGridNil, ErrStartUnset, ErrGoalUnset, ErrStartInvalid, ErrGoalInvalid.
//   - ErrUnknownAlgorithm for an Algorithm outside the four above.
//   - ErrOptionViolation for meaningless options.
//   - ErrVisitLimit when WithMaxVisits is exceeded.
//   - ctx.Err() on cancellation, and errors returned by the OnVisit hook (wrapped).
package search

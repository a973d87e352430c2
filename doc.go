// Package gridsearch finds paths across character grids with the four
// classic uninformed and informed searches: DFS, BFS, Dijkstra and A*.
//
// What is gridsearch?
//
//	A small, dependency-light toolkit that brings together:
//		• Frontiers: Stack, Queue, sorted PriorityQueue, BinaryHeap
//		• Grid model: '*' boundary, '#' obstacle, 'S' start, 'G' goal
//		• Motion: 4-way and 8-way neighborhoods, optional weighted order
//		• Search: one walker, four disciplines, visited/added counters
//		• Builders: rooms, walls, scatter and mazes for fixtures
//
// Why gridsearch?
//
//   - Deterministic: same grid, motion and seed give the same path and counters
//   - Observable: OnVisit/OnEnqueue hooks, expansion order, search tree
//   - NotFound is a result, not an error
//   - Thread-safe reads: many searches may share one grid
//
// Everything is organized under these subpackages:
//
//	frontier/       ordered containers with Reverse and FIFO tie-breaking
//	gridgraph/      Grid, Cell, layout parsing, rendering, regions, MinBreach
//	motion/         Direction, Spec, presets, seeded weighted permutation
//	search/         DFS, BFS, Dijkstra, AStar, Search and Result
//	builder/        deterministic layout generators
//	cmd/gridsearch/ CLI: run, compare, watch, tree, gen, serve
//
// Quick ASCII example:
//
//	*******
//	*S··  *
//	* #·# *
//	*  ·G *
//	*******
//
// is a shortest path of five steps; '·' marks the cells between S and G.
//
//	go install github.com/katalvlaran/gridsearch/cmd/gridsearch@latest
package gridsearch

// Package builder generates text layouts for gridgraph: rooms, obstacle walls,
// random scatter and carved mazes, composed by functional constructors.
//
// The package offers the following key components:
//
//   - BuildLayout(rows, cols, opts, cons...): allocates a blank canvas and
//     applies constructors in order; returns rows ready for gridgraph.LoadStrings.
//   - BuildGrid: BuildLayout followed by gridgraph.LoadStrings.
//   - Constructors:
//     – Room():               perimeter boundary.
//     – Wall(from, to):       straight obstacle segment (row, column or diagonal).
//     – Scatter(density):     seeded random obstacles on interior cells.
//     – Maze():               recursive-backtracker maze carved with frontier.Stack.
//     – Markers(start, goal): 'S' and 'G' runes.
//   - Configuration primitives:
//     – BuilderOption:        a function that mutates builderConfig before use.
//     – WithSeed / WithRand:  the RNG for Scatter and Maze.
//
// Guarantees:
//
//   - Determinism: same size, options, seed and constructor order ⇒ identical rows.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with context.
//
// Errors:
//
//   - ErrTooSmall:        canvas smaller than 3×3.
//   - ErrInvalidDensity:  Scatter density outside [0,1).
//   - ErrNeedRandSource:  Scatter or Maze without WithSeed/WithRand.
//   - ErrOutOfRange:      a cell outside the canvas.
//   - ErrConstructFailed: nil constructor, bent wall, or conflicting markers.
package builder

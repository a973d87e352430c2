package motion

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for motion specs.
var (
	ErrNoDirections     = errors.New("motion: at least one direction is required")
	ErrZeroOffset       = errors.New("motion: direction must not be (0,0)")
	ErrProbabilityCount = errors.New("motion: one probability per direction is required")
	ErrProbabilityRange = errors.New("motion: probability must be within [0,1]")
	ErrProbabilitySum   = errors.New("motion: probabilities must sum to 1")
	ErrUnknownPreset    = errors.New("motion: unknown preset")
)

// sumTolerance is the per-direction slack allowed on the probability sum.
const sumTolerance = 1e-9

// Direction is a single step offset. Every step costs 1.
type Direction struct {
	DRow, DCol int
}

// String formats the offset as "(dr,dc)".
func (d Direction) String() string {
	return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
}

// Offsets4 lists N, E, S, W.
var Offsets4 = []Direction{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Offsets8 lists N, NE, E, SE, S, SW, W, NW.
var Offsets8 = []Direction{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}

// Preset returns a copy of a named neighborhood: "4" or "rook" for Offsets4,
// "8" or "king" for Offsets8.
func Preset(name string) ([]Direction, error) {
	var src []Direction
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "4", "rook", "four":
		src = Offsets4
	case "8", "king", "eight":
		src = Offsets8
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	out := make([]Direction, len(src))
	copy(out, src)
	return out, nil
}

// Spec is an ordered set of directions and an optional probability vector.
// A Spec is immutable once built by New; it is safe to share across searches.
type Spec struct {
	directions    []Direction
	probabilities []float64
}

// New validates and copies dirs and probs. A nil or empty probs means the
// declared order is used on every expansion.
func New(dirs []Direction, probs []float64) (Spec, error) {
	if len(dirs) == 0 {
		return Spec{}, ErrNoDirections
	}
	for i, d := range dirs {
		if d.DRow == 0 && d.DCol == 0 {
			return Spec{}, fmt.Errorf("%w: index %d", ErrZeroOffset, i)
		}
	}
	s := Spec{directions: make([]Direction, len(dirs))}
	copy(s.directions, dirs)
	if len(probs) == 0 {
		return s, nil
	}
	if len(probs) != len(dirs) {
		return Spec{}, fmt.Errorf("%w: %d directions, %d probabilities", ErrProbabilityCount, len(dirs), len(probs))
	}
	var sum float64
	for i, p := range probs {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return Spec{}, fmt.Errorf("%w: p[%d]=%v", ErrProbabilityRange, i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > sumTolerance*float64(len(probs)) {
		return Spec{}, fmt.Errorf("%w: got %v", ErrProbabilitySum, sum)
	}
	s.probabilities = make([]float64, len(probs))
	copy(s.probabilities, probs)
	return s, nil
}

// MustNew is New for package-level fixtures; it panics on invalid input.
func MustNew(dirs []Direction, probs []float64) Spec {
	s, err := New(dirs, probs)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of directions.
func (s Spec) Len() int { return len(s.directions) }

// Direction returns the i-th declared direction.
func (s Spec) Direction(i int) Direction { return s.directions[i] }

// Directions returns a copy of the declared directions.
func (s Spec) Directions() []Direction {
	out := make([]Direction, len(s.directions))
	copy(out, s.directions)
	return out
}

// Probabilities returns a copy of the probability vector, nil if unweighted.
func (s Spec) Probabilities() []float64 {
	if s.probabilities == nil {
		return nil
	}
	out := make([]float64, len(s.probabilities))
	copy(out, s.probabilities)
	return out
}

// Weighted reports whether Order draws a random permutation.
func (s Spec) Weighted() bool { return s.probabilities != nil }

// Package motion describes how an agent may step on a grid and in which
// order the neighbors of a cell are explored.
//
// What:
//
//   - Direction is a unit-cost offset (ΔRow, ΔCol).
//   - Spec is an ordered set of Directions plus an optional probability per
//     direction.
//   - Offsets4 and Offsets8 are the rook and king neighborhoods, listed from
//     North clockwise.
//   - Spec.Order returns the exploration order for one expansion step.
//
// Ordering:
//
//	Without probabilities Order returns 0..n-1 every time. With probabilities
//	it draws a fresh permutation on every call by weighted sampling without
//	replacement, so the first index is direction i with probability p[i], the
//	second is drawn from the remaining directions re-normalized, and so on.
//
// Determinism:
//
//	All randomness flows through a Source. NewSource(seed) returns a seeded
//	*rand.Rand; the same seed yields the same sequence of orders. A nil Source
//	draws from one package-wide, mutex-guarded stream that every nil-Source
//	call advances, so each call still gets a fresh order.
//
// Errors:
//
//   - ErrNoDirections      the direction list is empty.
//   - ErrZeroOffset        a direction is (0,0).
//   - ErrProbabilityCount  probabilities and directions differ in length.
//   - ErrProbabilityRange  a probability is negative, NaN or above 1.
//   - ErrProbabilitySum    probabilities do not sum to 1.
//   - ErrUnknownPreset     Preset does not recognize the name.
package motion

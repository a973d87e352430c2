package motion

// Order returns the direction indices in the order they should be explored
// for one expansion step. See AppendOrder.
func (s Spec) Order(src Source) []int {
	return s.AppendOrder(make([]int, 0, len(s.directions)), src)
}

// AppendOrder appends the exploration order to dst and returns the extended
// slice, letting a caller reuse one buffer across expansions.
//
// Unweighted specs append 0..n-1. Weighted specs append a permutation drawn
// by weighted sampling without replacement; directions whose probability is
// zero are never drawn and trail at the end in declared order. A nil src
// draws from a package-wide stream, so successive nil-src calls keep
// advancing it and yield independent orders; pass a Source for runs that
// must not depend on other callers.
func (s Spec) AppendOrder(dst []int, src Source) []int {
	n := len(s.directions)
	start := len(dst)
	for i := 0; i < n; i++ {
		dst = append(dst, i)
	}
	if !s.Weighted() {
		return dst
	}
	if src == nil {
		src = shared
	}
	remaining := dst[start:]
	for k := 0; k < n; k++ {
		var total float64
		for _, idx := range remaining[k:] {
			total += s.probabilities[idx]
		}
		if total <= 0 {
			break
		}
		j := s.draw(remaining[k:], src.Float64()*total)
		// move the drawn index to position k, keeping the rest in order
		picked := remaining[k+j]
		copy(remaining[k+1:k+j+1], remaining[k:k+j])
		remaining[k] = picked
	}
	return dst
}

// draw returns the offset within candidates selected by the cumulative
// weight u. The last candidate with positive weight absorbs rounding.
func (s Spec) draw(candidates []int, u float64) int {
	var acc float64
	last := -1
	for j, idx := range candidates {
		p := s.probabilities[idx]
		if p <= 0 {
			continue
		}
		acc += p
		last = j
		if u < acc {
			return j
		}
	}
	return last
}

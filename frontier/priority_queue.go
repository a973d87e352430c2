package frontier

import (
	"math"
	"slices"
)

// PriorityQueue keeps Item[V] values totally ordered by priority, ascending
// for Min and descending for Max. Two sentinel entries (−Inf and +Inf) bracket
// the real data so that the binary search never special-cases either end.
//
// Among equal priorities the queue is FIFO: a new item is placed after every
// item already holding the same priority.
type PriorityQueue[V any] struct {
	order Order
	items []Item[V] // items[0] and items[len-1] are sentinels
}

// NewPriorityQueue returns a queue of the given order seeded with items,
// inserted one by one in the given sequence.
func NewPriorityQueue[V any](order Order, items ...Item[V]) *PriorityQueue[V] {
	pq := &PriorityQueue[V]{order: order}
	pq.reset(len(items))
	for _, it := range items {
		pq.Push(it)
	}
	return pq
}

// reset installs the sentinel pair for the current order.
func (pq *PriorityQueue[V]) reset(capacity int) {
	lo := Item[V]{Priority: math.Inf(-1)}
	hi := Item[V]{Priority: math.Inf(1)}
	pq.items = make([]Item[V], 0, capacity+2)
	if pq.order == Max {
		lo, hi = hi, lo
	}
	pq.items = append(pq.items, lo, hi)
}

// Order returns the current ordering sense.
func (pq *PriorityQueue[V]) Order() Order { return pq.order }

// IsEmpty reports whether the queue holds no real items.
func (pq *PriorityQueue[V]) IsEmpty() bool { return pq.Size() == 0 }

// Size returns the number of real items (sentinels excluded).
func (pq *PriorityQueue[V]) Size() int { return len(pq.items) - 2 }

// Push inserts item after all entries it does not outrank.
// The insertion point is found by binary search over the closed range
// [lower sentinel, upper sentinel].
func (pq *PriorityQueue[V]) Push(item Item[V]) {
	left, right := 0, pq.Size()+1
	for right > left+1 {
		mid := (left + right) / 2
		p := pq.items[mid].Priority
		var after bool
		if pq.order == Max {
			after = item.Priority <= p
		} else {
			after = item.Priority >= p
		}
		if after {
			left = mid
		} else {
			right = mid
		}
	}
	pq.items = slices.Insert(pq.items, right, item)
}

// Pop removes and returns the first real entry.
func (pq *PriorityQueue[V]) Pop() (Item[V], bool) {
	if pq.IsEmpty() {
		return Item[V]{}, false
	}
	item := pq.items[1]
	pq.items = slices.Delete(pq.items, 1, 2)
	return item, true
}

// Peek returns the first real entry without removing it.
func (pq *PriorityQueue[V]) Peek() (Item[V], bool) {
	if pq.IsEmpty() {
		return Item[V]{}, false
	}
	return pq.items[1], true
}

// Reverse toggles Min and Max. Reversing the backing slice also swaps the
// sentinels, so the ordering invariant holds without re-sorting.
func (pq *PriorityQueue[V]) Reverse() {
	pq.order = pq.order.flip()
	reverseSlice(pq.items)
}

// Clear removes all real entries and keeps the current order.
func (pq *PriorityQueue[V]) Clear() {
	pq.reset(0)
}

// Items returns a copy of the real entries in pop order.
func (pq *PriorityQueue[V]) Items() []Item[V] {
	out := make([]Item[V], pq.Size())
	copy(out, pq.items[1:len(pq.items)-1])
	return out
}

// String formats the real entries in pop order.
func (pq *PriorityQueue[V]) String() string {
	return formatItems(pq.items[1 : len(pq.items)-1])
}

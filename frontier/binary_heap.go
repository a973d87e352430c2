package frontier

// BinaryHeap is an array-backed binary heap of Item[V]. Slot 0 is unused so
// that the parent of i is i/2 and its children are 2i and 2i+1.
//
// The heap only maintains the heap-order invariant (every parent ≤ its
// children for Min, ≥ for Max). Equal priorities come out in an order fixed
// by the heap shape, not by insertion order.
type BinaryHeap[V any] struct {
	order Order
	items []Item[V] // items[0] is a placeholder
}

// NewBinaryHeap returns a heap of the given order built from items with a
// bottom-up heapify.
func NewBinaryHeap[V any](order Order, items ...Item[V]) *BinaryHeap[V] {
	h := &BinaryHeap[V]{order: order}
	h.items = make([]Item[V], 1, len(items)+1)
	h.items = append(h.items, items...)
	h.heapify()
	return h
}

// Order returns the current heap type.
func (h *BinaryHeap[V]) Order() Order { return h.order }

// IsEmpty reports whether the heap holds no items.
func (h *BinaryHeap[V]) IsEmpty() bool { return h.Size() == 0 }

// Size returns the number of items in the heap.
func (h *BinaryHeap[V]) Size() int { return len(h.items) - 1 }

// Push appends item and sifts it toward the root.
func (h *BinaryHeap[V]) Push(item Item[V]) {
	h.items = append(h.items, item)
	h.siftUp(h.Size())
}

// Pop removes and returns the root. The last item takes its place and is
// sifted down.
func (h *BinaryHeap[V]) Pop() (Item[V], bool) {
	n := h.Size()
	if n == 0 {
		return Item[V]{}, false
	}
	root := h.items[1]
	h.items[1] = h.items[n]
	h.items[n] = Item[V]{}
	h.items = h.items[:n]
	h.siftDown(1)
	return root, true
}

// Peek returns the root without removing it.
func (h *BinaryHeap[V]) Peek() (Item[V], bool) {
	if h.IsEmpty() {
		return Item[V]{}, false
	}
	return h.items[1], true
}

// Reverse flips the heap type and restores the invariant by sifting every
// internal node down, from the last parent up to the root.
func (h *BinaryHeap[V]) Reverse() {
	h.order = h.order.flip()
	h.heapify()
}

// Clear removes all items and keeps the current heap type.
func (h *BinaryHeap[V]) Clear() {
	clear(h.items)
	h.items = h.items[:1]
}

// Items returns a copy of the heap array (root first, placeholder excluded).
func (h *BinaryHeap[V]) Items() []Item[V] {
	out := make([]Item[V], h.Size())
	copy(out, h.items[1:])
	return out
}

// String formats the heap array root first.
func (h *BinaryHeap[V]) String() string { return formatItems(h.items[1:]) }

// outranks reports whether a belongs strictly above b.
func (h *BinaryHeap[V]) outranks(a, b Item[V]) bool {
	if h.order == Max {
		return a.Priority > b.Priority
	}
	return a.Priority < b.Priority
}

func (h *BinaryHeap[V]) heapify() {
	for i := h.Size() / 2; i > 0; i-- {
		h.siftDown(i)
	}
}

func (h *BinaryHeap[V]) siftUp(i int) {
	for i > 1 {
		p := i / 2
		if !h.outranks(h.items[i], h.items[p]) {
			return
		}
		h.items[p], h.items[i] = h.items[i], h.items[p]
		i = p
	}
}

func (h *BinaryHeap[V]) siftDown(i int) {
	n := h.Size()
	for 2*i <= n {
		c := h.extremeChild(i)
		if !h.outranks(h.items[c], h.items[i]) {
			return
		}
		h.items[i], h.items[c] = h.items[c], h.items[i]
		i = c
	}
}

// extremeChild returns the child of i that is the swap candidate. A lone left
// child is the only candidate; on equal priorities the right child wins.
func (h *BinaryHeap[V]) extremeChild(i int) int {
	left, right := 2*i, 2*i+1
	if right > h.Size() {
		return left
	}
	if h.outranks(h.items[left], h.items[right]) {
		return left
	}
	return right
}

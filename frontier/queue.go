package frontier

// compactThreshold is the minimum number of consumed head slots before the
// backing slice is compacted.
const compactThreshold = 32

// Queue is a FIFO container. It keeps a head index into its backing slice so
// that Pop does not shift the remaining items; consumed slots are reclaimed
// once they make up half of the slice.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns a queue seeded with items, first item at the front.
// The input slice is copied.
func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{items: make([]T, len(items))}
	copy(q.items, items)
	return q
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.Size() == 0 }

// Size returns the number of items waiting in the queue.
func (q *Queue[T]) Size() int { return len(q.items) - q.head }

// Push appends item to the back of the queue.
func (q *Queue[T]) Push(item T) {
	q.items = append(q.items, item)
}

// Pop removes and returns the front item.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	q.compact()
	return item, true
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	return q.items[q.head], true
}

// Reverse reverses the waiting items in place: the back becomes the front.
func (q *Queue[T]) Reverse() {
	reverseSlice(q.items[q.head:])
}

// Clear removes all items.
func (q *Queue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
	q.head = 0
}

// Items returns a copy of the waiting items, front first.
func (q *Queue[T]) Items() []T {
	out := make([]T, q.Size())
	copy(out, q.items[q.head:])
	return out
}

// String formats the queue front first.
func (q *Queue[T]) String() string { return formatItems(q.items[q.head:]) }

// compact drops consumed head slots when they dominate the backing slice.
func (q *Queue[T]) compact() {
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
		return
	}
	if q.head < compactThreshold || q.head*2 < len(q.items) {
		return
	}
	n := copy(q.items, q.items[q.head:])
	clear(q.items[n:])
	q.items = q.items[:n]
	q.head = 0
}

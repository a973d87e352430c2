package frontier

// Stack is a LIFO container backed by a slice; the top is the last element.
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack seeded with items, first item at the bottom.
// The input slice is copied.
func NewStack[T any](items ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, len(items))}
	copy(s.items, items)
	return s
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Size returns the number of items on the stack.
func (s *Stack[T]) Size() int { return len(s.items) }

// Push adds item to the top of the stack.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	item := s.items[n-1]
	s.items[n-1] = zero // release reference for GC
	s.items = s.items[:n-1]
	return item, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

// Reverse reverses the stack in place: the bottom becomes the top.
func (s *Stack[T]) Reverse() {
	reverseSlice(s.items)
}

// Clear removes all items.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Items returns a copy of the stack, bottom first.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// String formats the stack bottom first.
func (s *Stack[T]) String() string { return formatItems(s.items) }

func reverseSlice[T any](a []T) {
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

package frontier

import (
	"fmt"
	"strings"
)

// Frontier is the ordered container contract consumed by the search engine.
type Frontier[T any] interface {
	// IsEmpty reports whether the container holds no items.
	IsEmpty() bool
	// Size returns the number of items held.
	Size() int
	// Push inserts item according to the variant's ordering rule.
	Push(item T)
	// Pop removes and returns the next item; ok is false when empty.
	Pop() (item T, ok bool)
	// Peek returns the next item without removing it; ok is false when empty.
	Peek() (item T, ok bool)
	// Reverse flips the ordering sense in place.
	Reverse()
	// Clear removes all items.
	Clear()
}

// Order selects the extremal sense of a priority container.
type Order int

const (
	// Min pops the lowest priority first.
	Min Order = iota
	// Max pops the highest priority first.
	Max
)

// String returns "min" or "max".
func (o Order) String() string {
	if o == Max {
		return "max"
	}
	return "min"
}

// flip returns the opposite order.
func (o Order) flip() Order {
	if o == Max {
		return Min
	}
	return Max
}

// Item pairs a value with the priority it is ordered by.
// Only Priority takes part in comparisons.
type Item[V any] struct {
	Priority float64
	Value    V
}

// String formats the item as "(priority, value)".
func (it Item[V]) String() string {
	return fmt.Sprintf("(%v, %v)", it.Priority, it.Value)
}

// formatItems renders a snapshot as "[a b c]".
func formatItems[T any](items []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, it := range items {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, it)
	}
	b.WriteByte(']')
	return b.String()
}

// compile-time checks
var (
	_ Frontier[int]       = (*Stack[int])(nil)
	_ Frontier[int]       = (*Queue[int])(nil)
	_ Frontier[Item[int]] = (*PriorityQueue[int])(nil)
	_ Frontier[Item[int]] = (*BinaryHeap[int])(nil)
)

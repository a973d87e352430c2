package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/gridsearch/frontier"
)

// ExamplePriorityQueue shows the FIFO tie-break of the sorted queue.
func ExamplePriorityQueue() {
	pq := frontier.NewPriorityQueue[string](frontier.Min)
	pq.Push(frontier.Item[string]{Priority: 2, Value: "first two"})
	pq.Push(frontier.Item[string]{Priority: 1, Value: "one"})
	pq.Push(frontier.Item[string]{Priority: 2, Value: "second two"})
	for !pq.IsEmpty() {
		it, _ := pq.Pop()
		fmt.Println(it.Priority, it.Value)
	}
	// Output:
	// 1 one
	// 2 first two
	// 2 second two
}

// ExampleBinaryHeap_Reverse turns a min-heap into a max-heap in place.
func ExampleBinaryHeap_Reverse() {
	h := frontier.NewBinaryHeap(frontier.Min,
		frontier.Item[string]{Priority: 3, Value: "c"},
		frontier.Item[string]{Priority: 1, Value: "a"},
		frontier.Item[string]{Priority: 2, Value: "b"},
	)
	root, _ := h.Peek()
	fmt.Println(h.Order(), root.Value)
	h.Reverse()
	root, _ = h.Peek()
	fmt.Println(h.Order(), root.Value)
	// Output:
	// min a
	// max c
}

// ExampleStack_Reverse shows that reversing a stack exposes its bottom.
func ExampleStack_Reverse() {
	s := frontier.NewStack("bottom", "middle", "top")
	s.Reverse()
	top, _ := s.Pop()
	fmt.Println(top, s.Size())
	// Output: bottom 2
}

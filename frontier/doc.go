// Package frontier provides the ordered containers that drive a grid
// traversal: the set of cells discovered but not yet expanded.
//
// What:
//
//   - Frontier[T] is the single capability interface shared by every variant:
//     IsEmpty, Size, Push, Pop, Peek, Reverse, Clear.
//   - Stack[T]            LIFO, used by depth-first search.
//   - Queue[T]            FIFO, used by breadth-first search.
//   - PriorityQueue[V]    sorted slice of Item[V], FIFO among equal priorities.
//   - BinaryHeap[V]       array-backed binary heap of Item[V], ties by heap shape.
//
// Why two priority containers:
//
//	PriorityQueue keeps a total order and is deterministic on ties: among equal
//	priorities, items come out in the order they went in. BinaryHeap only keeps
//	the heap-order invariant, so equal priorities come out in whatever order the
//	heap shape produces. A* relies on the former, Dijkstra on the latter, and
//	the difference is observable in visit counts.
//
// Complexity:
//
//   - Stack:         Push O(1) amortized, Pop O(1).
//   - Queue:         Push O(1) amortized, Pop O(1) amortized.
//   - PriorityQueue: Push O(log n) search + O(n) insertion, Pop O(n) shift.
//   - BinaryHeap:    Push O(log n), Pop O(log n), Reverse O(n).
//
// Empty containers never panic: Pop and Peek report ok == false.
//
// None of the containers are safe for concurrent use; a traversal owns its
// frontier exclusively.
package frontier

// Package frontier provides the two orderings used to drive grid searches
// over discovered-but-not-yet-expanded cells.
//
//   - Queue: first-in, first-out. Flood-fill pops cells in discovery order,
//     which expands them in non-decreasing hop count.
//   - MinHeap: min-priority over a float64 key. Dijkstra pops the cheapest
//     known entry first. Equal priorities pop in insertion order, so a
//     search fed the same input always yields the same output.
//
// MinHeap uses the lazy-decrease-key pattern: callers may push the same cell
// many times and must discard stale entries themselves when popped.
//
// Complexity:
//
//   - Queue:   Push/Pop amortised O(1).
//   - MinHeap: Push/Pop O(log N), N = entries currently held.
package frontier

import "github.com/katalvlaran/tilepath/tilegrid"

// Frontier is the ordering abstraction shared by Queue and MinHeap.
// Queue ignores priority.
type Frontier interface {
	Push(c tilegrid.Cell, priority float64)
	Pop() (c tilegrid.Cell, priority float64, ok bool)
	Len() int
}

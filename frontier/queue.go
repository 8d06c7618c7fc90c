package frontier

import "github.com/katalvlaran/tilepath/tilegrid"

// Queue is a FIFO frontier. The zero value is ready to use.
type Queue struct {
	items []tilegrid.Cell
	head  int
}

// NewQueue returns a Queue with room for capacity cells.
func NewQueue(capacity int) *Queue {
	return &Queue{items: make([]tilegrid.Cell, 0, capacity)}
}

// Push appends c to the back. priority is ignored.
func (q *Queue) Push(c tilegrid.Cell, _ float64) {
	q.items = append(q.items, c)
}

// Pop removes the front cell. ok is false when the queue is empty.
func (q *Queue) Pop() (tilegrid.Cell, float64, bool) {
	if q.head >= len(q.items) {
		return tilegrid.Invalid, 0, false
	}
	c := q.items[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the slice
	if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return c, 0, true
}

// Len returns the number of queued cells.
func (q *Queue) Len() int { return len(q.items) - q.head }

package frontier

import (
	"container/heap"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// entry is one (cell, priority) pair held by MinHeap.
// seq records insertion order and breaks priority ties.
type entry struct {
	cell     tilegrid.Cell
	priority float64
	seq      uint64
}

// entryPQ implements heap.Interface ordered by (priority, seq) ascending.
type entryPQ []entry

func (pq entryPQ) Len() int { return len(pq) }

func (pq entryPQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}

func (pq entryPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *entryPQ) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// MinHeap is a min-priority frontier. The zero value is ready to use.
// Duplicate cells are allowed.
type MinHeap struct {
	pq  entryPQ
	seq uint64
}

// NewMinHeap returns a MinHeap with room for capacity entries.
func NewMinHeap(capacity int) *MinHeap {
	return &MinHeap{pq: make(entryPQ, 0, capacity)}
}

// Push inserts c with the given priority.
func (h *MinHeap) Push(c tilegrid.Cell, priority float64) {
	heap.Push(&h.pq, entry{cell: c, priority: priority, seq: h.seq})
	h.seq++
}

// Pop removes the entry with the lowest priority. ok is false when empty.
func (h *MinHeap) Pop() (tilegrid.Cell, float64, bool) {
	if h.pq.Len() == 0 {
		return tilegrid.Invalid, 0, false
	}
	e := heap.Pop(&h.pq).(entry)
	return e.cell, e.priority, true
}

// Len returns the number of entries, stale duplicates included.
func (h *MinHeap) Len() int { return h.pq.Len() }

package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/tilepath/frontier"
	"github.com/katalvlaran/tilepath/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ frontier.Frontier = (*frontier.Queue)(nil)
	_ frontier.Frontier = (*frontier.MinHeap)(nil)
)

func cell(r, c int) tilegrid.Cell { return tilegrid.Cell{Row: r, Col: c} }

// TestQueue_FIFO pushes past the compaction threshold and checks order survives.
func TestQueue_FIFO(t *testing.T) {
	var q frontier.Queue
	_, _, ok := q.Pop()
	assert.False(t, ok, "empty queue")

	const n = 200
	for i := 0; i < n; i++ {
		q.Push(cell(i, 0), float64(n-i))
	}
	require.Equal(t, n, q.Len())

	// interleave pops and pushes
	for i := 0; i < n/2; i++ {
		c, _, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, cell(i, 0), c)
	}
	q.Push(cell(n, 0), 0)
	for i := n / 2; i <= n; i++ {
		c, _, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, cell(i, 0), c)
	}
	assert.Equal(t, 0, q.Len())
}

func TestMinHeap_Order(t *testing.T) {
	h := frontier.NewMinHeap(4)
	_, _, ok := h.Pop()
	assert.False(t, ok, "empty heap")

	r := rand.New(rand.NewSource(42))
	var prios []float64
	for i := 0; i < 100; i++ {
		p := float64(r.Intn(50))
		prios = append(prios, p)
		h.Push(cell(i, 0), p)
	}
	sort.Float64s(prios)
	for i, want := range prios {
		_, got, ok := h.Pop()
		require.True(t, ok)
		require.Equal(t, want, got, "pop %d", i)
	}
	assert.Equal(t, 0, h.Len())
}

// TestMinHeap_TiesInInsertionOrder: equal priorities come out first-in first-out.
func TestMinHeap_TiesInInsertionOrder(t *testing.T) {
	var h frontier.MinHeap
	h.Push(cell(0, 0), 5)
	h.Push(cell(0, 1), 1)
	h.Push(cell(0, 2), 5)
	h.Push(cell(0, 3), 1)
	h.Push(cell(0, 0), 1) // duplicate cell allowed

	want := []tilegrid.Cell{cell(0, 1), cell(0, 3), cell(0, 0), cell(0, 0), cell(0, 2)}
	for _, w := range want {
		c, _, ok := h.Pop()
		require.True(t, ok)
		assert.Equal(t, w, c)
	}
}

package pathsearch_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tilepath/tilegrid"
	"github.com/stretchr/testify/require"
)

func cell(r, c int) tilegrid.Cell { return tilegrid.Cell{Row: r, Col: c} }

func mustGrid(t testing.TB, codes [][]int) *tilegrid.Grid {
	t.Helper()
	g, err := tilegrid.New(codes)
	require.NoError(t, err)
	return g
}

// openGrid returns a rows×cols grid of open tiles.
func openGrid(t testing.TB, rows, cols int) *tilegrid.Grid {
	codes := make([][]int, rows)
	for r := range codes {
		codes[r] = make([]int, cols)
	}
	return mustGrid(t, codes)
}

// randomCodes fills a rows×cols matrix with tile codes; roughly one tile in
// five is blocked.
func randomCodes(r *rand.Rand, rows, cols int) [][]int {
	codes := make([][]int, rows)
	for i := range codes {
		codes[i] = make([]int, cols)
		for j := range codes[i] {
			switch n := r.Intn(10); {
			case n < 5:
				codes[i][j] = int(tilegrid.TileOpen)
			case n < 7:
				codes[i][j] = int(tilegrid.TileBlocked)
			case n < 8:
				codes[i][j] = int(tilegrid.TileWater)
			default:
				codes[i][j] = int(tilegrid.TileGrass)
			}
		}
	}
	return codes
}

func allCells(g *tilegrid.Grid) []tilegrid.Cell {
	out := make([]tilegrid.Cell, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		c, _ := g.CellAt(i)
		out = append(out, c)
	}
	return out
}

func isBlocked(g *tilegrid.Grid, c tilegrid.Cell) bool {
	t, _ := g.TileTypeAt(c)
	return t == tilegrid.TileBlocked
}

// hopDistance is an independent BFS oracle over non-blocked tiles.
// Returns -1 when end is unreachable.
func hopDistance(g *tilegrid.Grid, start, end tilegrid.Cell) int {
	dist := map[tilegrid.Cell]int{start: 0}
	queue := []tilegrid.Cell{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == end {
			return dist[u]
		}
		nbrs, _ := g.NeighborsOf(u)
		for _, v := range nbrs {
			if _, seen := dist[v]; seen || isBlocked(g, v) {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return -1
}

// bruteMinCost enumerates every simple path from start to end and returns the
// cheapest tile-cost sum, or +Inf when none exists. Blocked tiles are skipped
// when wallsImpassable is set.
func bruteMinCost(g *tilegrid.Grid, start, end tilegrid.Cell, wallsImpassable bool) float64 {
	best := math.Inf(1)
	onPath := map[tilegrid.Cell]bool{start: true}
	var walk func(u tilegrid.Cell, cost float64)
	walk = func(u tilegrid.Cell, cost float64) {
		if cost >= best {
			return
		}
		if u == end {
			best = cost
			return
		}
		nbrs, _ := g.NeighborsOf(u)
		for _, v := range nbrs {
			if onPath[v] || (wallsImpassable && isBlocked(g, v)) {
				continue
			}
			c, _ := g.CostAt(v)
			onPath[v] = true
			walk(v, cost+c)
			onPath[v] = false
		}
	}
	walk(start, 0)
	return best
}

// requireContiguous checks that path starts at start, ends at end and moves
// one cardinal step at a time.
func requireContiguous(t *testing.T, path []tilegrid.Cell, start, end tilegrid.Cell) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, end, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		dr := path[i].Row - path[i-1].Row
		dc := path[i].Col - path[i-1].Col
		require.Equal(t, 1, dr*dr+dc*dc, "step %v→%v", path[i-1], path[i])
	}
}

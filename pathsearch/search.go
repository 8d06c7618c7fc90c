package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// Search runs a fresh search of the given kind for at most budget
// expansions and returns its Result. Nothing is retained between calls.
//
// A path that is not found within budget is a normal Result with
// Found == false. Errors are returned only for invalid arguments or an
// inconsistent parent table.
func Search(kind Kind, start, end tilegrid.Cell, g *tilegrid.Grid, budget int, opts ...Option) (*Result, error) {
	if budget < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}
	r, err := NewRun(kind, start, end, g, opts...)
	if err != nil {
		return nil, err
	}
	if err = r.Advance(budget); err != nil {
		return nil, err
	}
	return r.Result(), nil
}

// FloodFill runs an unweighted breadth-first search from start to end.
func FloodFill(start, end tilegrid.Cell, g *tilegrid.Grid, budget int, opts ...Option) (*Result, error) {
	return Search(Unweighted, start, end, g, budget, opts...)
}

// Dijkstra runs a weighted search from start to end using tile costs.
func Dijkstra(start, end tilegrid.Cell, g *tilegrid.Grid, budget int, opts ...Option) (*Result, error) {
	return Search(Weighted, start, end, g, budget, opts...)
}

// PathCost sums the cost of entering every cell of path after the first.
func PathCost(g *tilegrid.Grid, path []tilegrid.Cell) (float64, error) {
	total := 0.0
	for i := 1; i < len(path); i++ {
		c, err := g.CostAt(path[i])
		if err != nil {
			return 0, err
		}
		total += c
	}
	return total, nil
}

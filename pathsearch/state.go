package pathsearch

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// Node is the per-cell record of a search run.
// Parent is tilegrid.Invalid until the cell is reached; Cost is +Inf until
// Dijkstra reaches it and is unused by flood-fill.
type Node struct {
	Parent tilegrid.Cell
	Cost   float64
}

// State is the node table of one search run, one Node per grid cell.
type State struct {
	grid  *tilegrid.Grid
	nodes []Node
}

// NewState returns a table with every parent Invalid and every cost +Inf.
func NewState(g *tilegrid.Grid) *State {
	nodes := make([]Node, g.Len())
	for i := range nodes {
		nodes[i] = Node{Parent: tilegrid.Invalid, Cost: math.Inf(1)}
	}
	return &State{grid: g, nodes: nodes}
}

// Node returns the record for c.
func (s *State) Node(c tilegrid.Cell) (Node, error) {
	i, err := s.grid.Index(c)
	if err != nil {
		return Node{}, err
	}
	return s.nodes[i], nil
}

// Cost returns the best known cost of c, +Inf when unreached or out of bounds.
func (s *State) Cost(c tilegrid.Cell) float64 {
	i, err := s.grid.Index(c)
	if err != nil {
		return math.Inf(1)
	}
	return s.nodes[i].Cost
}

// SetParent overwrites the parent of c. Searches never call it twice for
// the same cell in flood-fill; it is exported so callers can build tables
// by hand.
func (s *State) SetParent(c, parent tilegrid.Cell) error {
	i, err := s.grid.Index(c)
	if err != nil {
		return err
	}
	s.nodes[i].Parent = parent
	return nil
}

// SetCost overwrites the stored cost of c.
func (s *State) SetCost(c tilegrid.Cell, cost float64) error {
	i, err := s.grid.Index(c)
	if err != nil {
		return err
	}
	s.nodes[i].Cost = cost
	return nil
}

// Retrace follows parent links from end back to start and returns the path
// in start→end order.
//
// If a parent link is Invalid before start is reached, the cells collected
// so far are returned, reversed. If more than Len() cells are walked the
// table must contain a cycle and ErrInconsistentState is returned, as it is
// for a parent that lies outside the grid.
func Retrace(s *State, start, end tilegrid.Cell) ([]tilegrid.Cell, error) {
	limit := s.grid.Len()
	path := make([]tilegrid.Cell, 0, 16)
	cur := end
	for steps := 0; ; steps++ {
		if steps >= limit {
			return nil, fmt.Errorf("%w: retrace from %v exceeded %d steps", ErrInconsistentState, end, limit)
		}
		i, err := s.grid.Index(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: parent chain left the grid: %v", ErrInconsistentState, err)
		}
		path = append(path, cur)
		if cur == start {
			break
		}
		parent := s.nodes[i].Parent
		if !parent.IsValid() {
			break
		}
		cur = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

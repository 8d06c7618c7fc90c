package pathsearch

import (
	"fmt"

	"github.com/katalvlaran/tilepath/frontier"
	"github.com/katalvlaran/tilepath/tilegrid"
)

// Run is one search in progress. It owns its State and frontier; nothing is
// shared between Runs, so a Run advanced n times and a fresh Search with
// budget n produce the same Result.
//
// A Run is not safe for concurrent use.
type Run struct {
	kind       Kind
	grid       *tilegrid.Grid
	start, end tilegrid.Cell
	opts       Options

	state *State
	front frontier.Frontier

	// closed: cells that will not be expanded again.
	closed []bool

	visited    []tilegrid.Cell
	expansions int
	stop       StopReason
	path       []tilegrid.Cell
}

// NewRun validates the endpoints and seeds a search of the given kind.
// Out-of-bounds endpoints yield tilegrid.ErrOutOfBounds; endpoints on a tile
// the search may not enter yield ErrBlockedEndpoint.
func NewRun(kind Kind, start, end tilegrid.Cell, g *tilegrid.Grid, opts ...Option) (*Run, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if kind != Unweighted && kind != Weighted {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if o.Blocked != BlockedExpensive && o.Blocked != BlockedImpassable {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(o.Blocked))
	}

	r := &Run{
		kind:   kind,
		grid:   g,
		start:  start,
		end:    end,
		opts:   o,
		state:  NewState(g),
		closed: make([]bool, g.Len()),
	}
	for _, c := range []tilegrid.Cell{start, end} {
		t, err := g.TileTypeAt(c)
		if err != nil {
			return nil, fmt.Errorf("pathsearch: endpoint: %w", err)
		}
		if t == tilegrid.TileBlocked && r.blocksWalls() {
			return nil, fmt.Errorf("%w: %v", ErrBlockedEndpoint, c)
		}
	}

	switch kind {
	case Unweighted:
		r.initFlood()
	case Weighted:
		r.initDijkstra()
	}
	return r, nil
}

// blocksWalls reports whether blocked tiles are closed for this run.
func (r *Run) blocksWalls() bool {
	return r.kind == Unweighted || r.opts.Blocked == BlockedImpassable
}

// idx maps c to its offset. Callers only pass the endpoints NewRun has
// validated or cells returned by NeighborsOf, so the lookup cannot fail.
func (r *Run) idx(c tilegrid.Cell) int {
	i, _ := r.grid.Index(c)
	return i
}

// preclose marks every blocked tile closed.
func (r *Run) preclose() {
	for i := range r.closed {
		c, _ := r.grid.CellAt(i)
		if t, _ := r.grid.TileTypeAt(c); t == tilegrid.TileBlocked {
			r.closed[i] = true
		}
	}
}

func (r *Run) initFlood() {
	r.preclose()
	q := frontier.NewQueue(r.grid.Len())
	q.Push(r.start, 0)
	r.front = q
}

func (r *Run) initDijkstra() {
	if r.opts.Blocked == BlockedImpassable {
		r.preclose()
	}
	r.state.nodes[r.idx(r.start)].Cost = 0
	h := frontier.NewMinHeap(r.grid.Len())
	h.Push(r.start, 0)
	r.front = h
}

// Done reports whether the run has stopped on its own (goal or empty frontier).
func (r *Run) Done() bool { return r.stop == StopFound || r.stop == StopFrontierEmpty }

// Expansions returns the budget spent so far.
func (r *Run) Expansions() int { return r.expansions }

// Pending returns the number of frontier entries, stale duplicates included.
func (r *Run) Pending() int { return r.front.Len() }

// State exposes the node table. Callers must treat it as read-only.
func (r *Run) State() *State { return r.state }

// Step performs at most one expansion and reports whether one happened.
// It returns false once the run is done.
func (r *Run) Step() (bool, error) {
	if r.Done() {
		return false, nil
	}
	var (
		expanded bool
		err      error
	)
	switch r.kind {
	case Unweighted:
		expanded, err = r.stepFlood()
	default:
		expanded, err = r.stepDijkstra()
	}
	if err != nil {
		return false, err
	}
	if expanded {
		r.expansions++
	}
	return expanded, nil
}

// Advance performs up to n expansions, stopping early when the run is done.
func (r *Run) Advance(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrBadBudget, n)
	}
	for i := 0; i < n; i++ {
		ok, err := r.Step()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

func (r *Run) stepFlood() (bool, error) {
	cur, _, ok := r.front.Pop()
	if !ok {
		r.stop = StopFrontierEmpty
		return false, nil
	}
	ci := r.idx(cur)
	if !r.closed[ci] {
		r.visited = append(r.visited, cur)
	}
	r.closed[ci] = true
	r.opts.OnExpand(cur)

	if cur == r.end {
		return true, r.finish()
	}

	nbrs, err := r.grid.NeighborsOf(cur)
	if err != nil {
		return false, err
	}
	// Every open neighbor is queued, so a cell may sit in the queue more
	// than once; each pop of a copy spends budget. Only the first discovery
	// sets the parent, and FIFO order makes it the shallowest one.
	for _, nb := range nbrs {
		ni := r.idx(nb)
		if r.closed[ni] {
			continue
		}
		if !r.state.nodes[ni].Parent.IsValid() {
			r.state.nodes[ni].Parent = cur
		}
		r.front.Push(nb, 0)
	}
	return true, nil
}

func (r *Run) stepDijkstra() (bool, error) {
	var (
		cur  tilegrid.Cell
		prio float64
		ok   bool
	)
	for {
		cur, prio, ok = r.front.Pop()
		if !ok {
			r.stop = StopFrontierEmpty
			return false, nil
		}
		// a cheaper copy of cur was pushed after this one
		if prio <= r.state.nodes[r.idx(cur)].Cost {
			break
		}
	}
	r.opts.OnExpand(cur)

	if cur == r.end {
		return true, r.finish()
	}
	ci := r.idx(cur)
	r.closed[ci] = true
	r.visited = append(r.visited, cur)

	nbrs, err := r.grid.NeighborsOf(cur)
	if err != nil {
		return false, err
	}
	base := r.state.nodes[ci].Cost
	for _, nb := range nbrs {
		ni := r.idx(nb)
		if r.closed[ni] {
			continue
		}
		t, err := r.grid.TileTypeAt(nb)
		if err != nil {
			return false, err
		}
		cand := base + tilegrid.CostOf(t)
		if cand < r.state.nodes[ni].Cost {
			r.state.nodes[ni].Cost = cand
			r.state.nodes[ni].Parent = cur
			r.front.Push(nb, cand)
		}
	}
	return true, nil
}

// finish marks the goal found and retraces the path.
func (r *Run) finish() error {
	path, err := Retrace(r.state, r.start, r.end)
	if err != nil {
		return err
	}
	r.path = path
	r.stop = StopFound
	return nil
}

// Result snapshots the run. A run that is not done reports StopBudget.
// The returned slices are copies.
func (r *Run) Result() *Result {
	res := &Result{
		Kind:       r.kind,
		Path:       []tilegrid.Cell{},
		Visited:    append([]tilegrid.Cell(nil), r.visited...),
		Found:      r.stop == StopFound,
		Stop:       r.stop,
		Expansions: r.expansions,
	}
	if res.Stop == Running {
		res.Stop = StopBudget
	}
	if res.Found {
		res.Path = append(res.Path, r.path...)
		if r.kind == Weighted {
			res.Cost = r.state.nodes[r.idx(r.end)].Cost
		} else {
			res.Cost = float64(len(r.path) - 1)
		}
	}
	return res
}

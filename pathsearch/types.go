package pathsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// Sentinel errors for pathsearch.
var (
	// ErrNilGrid indicates a nil *tilegrid.Grid.
	ErrNilGrid = errors.New("pathsearch: grid is nil")
	// ErrBadBudget indicates a negative iteration budget.
	ErrBadBudget = errors.New("pathsearch: iteration budget must be non-negative")
	// ErrBlockedEndpoint indicates start or end lies on a tile the search may not enter.
	ErrBlockedEndpoint = errors.New("pathsearch: endpoint is on an impassable tile")
	// ErrUnknownKind indicates an unrecognised search kind.
	ErrUnknownKind = errors.New("pathsearch: unknown search kind")
	// ErrUnknownPolicy indicates an unrecognised blocked-tile policy.
	ErrUnknownPolicy = errors.New("pathsearch: unknown blocked policy")
	// ErrInconsistentState indicates parent links that do not lead back to
	// the start within the grid's cell count (a cycle or a corrupted table).
	ErrInconsistentState = errors.New("pathsearch: inconsistent search state")
)

// Kind selects the search algorithm.
type Kind int

const (
	// Unweighted is breadth-first flood-fill.
	Unweighted Kind = iota
	// Weighted is Dijkstra cost relaxation.
	Weighted
)

// ParseKind accepts "bfs", "floodfill", "unweighted", "dijkstra" or "weighted".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "floodfill", "flood-fill", "unweighted":
		return Unweighted, nil
	case "dijkstra", "weighted":
		return Weighted, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// String returns "bfs" or "dijkstra".
func (k Kind) String() string {
	switch k {
	case Unweighted:
		return "bfs"
	case Weighted:
		return "dijkstra"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// BlockedPolicy decides how Dijkstra treats tilegrid.TileBlocked.
// FloodFill always treats blocked tiles as impassable.
type BlockedPolicy int

const (
	// BlockedExpensive lets Dijkstra cross blocked tiles at their tile cost
	// when no cheaper route exists.
	BlockedExpensive BlockedPolicy = iota
	// BlockedImpassable makes Dijkstra skip blocked tiles entirely.
	BlockedImpassable
)

// ParseBlockedPolicy accepts "expensive" or "impassable".
func ParseBlockedPolicy(s string) (BlockedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "expensive":
		return BlockedExpensive, nil
	case "impassable", "wall":
		return BlockedImpassable, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// String returns "expensive" or "impassable".
func (p BlockedPolicy) String() string {
	switch p {
	case BlockedExpensive:
		return "expensive"
	case BlockedImpassable:
		return "impassable"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// Options configures a search run.
type Options struct {
	// Blocked is the Dijkstra blocked-tile policy.
	Blocked BlockedPolicy
	// OnExpand is called on every expansion, in order. Flood-fill can
	// report a cell more than once when repeated copies of it are popped.
	OnExpand func(c tilegrid.Cell)
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns BlockedExpensive and a no-op OnExpand.
func DefaultOptions() Options {
	return Options{
		Blocked:  BlockedExpensive,
		OnExpand: func(tilegrid.Cell) {},
	}
}

// WithBlockedPolicy sets how Dijkstra treats blocked tiles.
func WithBlockedPolicy(p BlockedPolicy) Option {
	return func(o *Options) {
		o.Blocked = p
	}
}

// WithOnExpand registers a hook run on every expansion.
func WithOnExpand(fn func(c tilegrid.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// StopReason tells why a run ended.
type StopReason int

const (
	// Running means the run may still expand cells.
	Running StopReason = iota
	// StopFound means the goal was expanded and a path retraced.
	StopFound
	// StopFrontierEmpty means every reachable cell was expanded without reaching the goal.
	StopFrontierEmpty
	// StopBudget means the iteration budget ran out first.
	StopBudget
)

// String returns a short lower-case label.
func (s StopReason) String() string {
	switch s {
	case Running:
		return "running"
	case StopFound:
		return "found"
	case StopFrontierEmpty:
		return "frontier-empty"
	case StopBudget:
		return "budget"
	}
	return fmt.Sprintf("stop(%d)", int(s))
}

// Result is the outcome of a search.
//
//   - Path: start→end inclusive, or empty when not found.
//   - Visited: expanded cells in first-expansion order, each once, for debug
//     overlays only.
//     Flood-fill includes the goal; Dijkstra stops before recording it.
//   - Cost: tile-cost sum along Path for Dijkstra, hop count for flood-fill.
//   - Expansions: budget units spent.
type Result struct {
	Kind       Kind
	Path       []tilegrid.Cell
	Visited    []tilegrid.Cell
	Found      bool
	Stop       StopReason
	Cost       float64
	Expansions int
}

// VisitedSet returns Visited as a set.
func (r *Result) VisitedSet() map[tilegrid.Cell]struct{} {
	set := make(map[tilegrid.Cell]struct{}, len(r.Visited))
	for _, c := range r.Visited {
		set[c] = struct{}{}
	}
	return set
}

package mapfile

import (
	"errors"

	"github.com/katalvlaran/tilepath/pathsearch"
	"github.com/katalvlaran/tilepath/tilegrid"
)

// Sentinel errors for mapfile.
var (
	// ErrMissingGrid indicates a document with neither layout nor tiles, or both.
	ErrMissingGrid = errors.New("mapfile: exactly one of layout or tiles is required")
	// ErrBadLayoutRune indicates a layout rune with no tile type.
	ErrBadLayoutRune = errors.New("mapfile: unknown layout rune")
	// ErrBadEndpoint indicates a start or end that is not an in-bounds [row, col] pair.
	ErrBadEndpoint = errors.New("mapfile: endpoint must be an in-bounds [row, col] pair")
	// ErrBadIterations indicates a negative iteration budget.
	ErrBadIterations = errors.New("mapfile: iterations must be non-negative")
)

// DefaultIterations is the budget used when a document leaves it unset.
const DefaultIterations = 500

// document is the on-disk TOML shape.
type document struct {
	Name       string  `toml:"name"`
	Algorithm  string  `toml:"algorithm,omitempty"`
	Iterations *int    `toml:"iterations,omitempty"`
	Blocked    string  `toml:"blocked,omitempty"`
	Start      []int   `toml:"start"`
	End        []int   `toml:"end"`
	Layout     string  `toml:"layout,multiline,omitempty"`
	Tiles      [][]int `toml:"tiles,omitempty"`
}

// Scenario is a validated search setup.
type Scenario struct {
	Name       string
	Grid       *tilegrid.Grid
	Start, End tilegrid.Cell
	Kind       pathsearch.Kind
	Blocked    pathsearch.BlockedPolicy
	Iterations int
}

// Search runs the scenario once. Extra options are applied after the
// scenario's own blocked policy.
func (s *Scenario) Search(opts ...pathsearch.Option) (*pathsearch.Result, error) {
	all := append([]pathsearch.Option{pathsearch.WithBlockedPolicy(s.Blocked)}, opts...)
	return pathsearch.Search(s.Kind, s.Start, s.End, s.Grid, s.Iterations, all...)
}

// NewRun starts a resumable run of the scenario.
func (s *Scenario) NewRun(opts ...pathsearch.Option) (*pathsearch.Run, error) {
	all := append([]pathsearch.Option{pathsearch.WithBlockedPolicy(s.Blocked)}, opts...)
	return pathsearch.NewRun(s.Kind, s.Start, s.End, s.Grid, all...)
}

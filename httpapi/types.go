// Package httpapi exposes grid path searches over HTTP using gin.
//
// Routes:
//
//	POST /v1/search           run a search on a grid supplied in the body
//	GET  /v1/maps/:name       run a bundled scenario (query: algorithm, iterations, blocked)
//	GET  /healthz             liveness probe
//
// Every search is independent: the server keeps no search state between
// requests.
package httpapi

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/tilepath/tilegrid"
)

// Sentinel errors for request validation.
var (
	// ErrGridTooLarge indicates a grid with more cells than Options.MaxCells.
	ErrGridTooLarge = errors.New("httpapi: grid exceeds cell limit")
	// ErrBudgetTooLarge indicates iterations above Options.MaxIterations.
	ErrBudgetTooLarge = errors.New("httpapi: iterations exceed limit")
)

// CellJSON is the wire form of a tilegrid.Cell.
type CellJSON struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c CellJSON) cell() tilegrid.Cell { return tilegrid.Cell{Row: c.Row, Col: c.Col} }

func cellsJSON(cells []tilegrid.Cell) []CellJSON {
	out := make([]CellJSON, len(cells))
	for i, c := range cells {
		out[i] = CellJSON{Row: c.Row, Col: c.Col}
	}
	return out
}

// SearchRequest is the body of POST /v1/search. Exactly one of Tiles or
// Layout describes the grid; Algorithm, Iterations and Blocked default to
// "bfs", Options.DefaultIterations and "expensive".
type SearchRequest struct {
	Tiles      [][]int   `json:"tiles,omitempty"`
	Layout     string    `json:"layout,omitempty"`
	Start      *CellJSON `json:"start" binding:"required"`
	End        *CellJSON `json:"end" binding:"required"`
	Algorithm  string    `json:"algorithm,omitempty"`
	Iterations *int      `json:"iterations,omitempty"`
	Blocked    string    `json:"blocked,omitempty"`
}

// SearchResponse reports one search. Visited is meant for debug overlays.
// Reachable tells whether start and end share a region of non-blocked tiles,
// independent of budget.
type SearchResponse struct {
	Algorithm   string     `json:"algorithm"`
	Found       bool       `json:"found"`
	Stop        string     `json:"stop"`
	Path        []CellJSON `json:"path"`
	Visited     []CellJSON `json:"visited"`
	Cost        float64    `json:"cost"`
	Expansions  int        `json:"expansions"`
	Reachable   bool       `json:"reachable"`
	TimeTakenMs float64    `json:"timeTakenMs"`
}

// ErrorResponse is the body of every 4xx/5xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Options configures a Server.
type Options struct {
	// MaxCells caps rows×cols of request grids.
	MaxCells int
	// MaxIterations caps the requested budget.
	MaxIterations int
	// DefaultIterations is used when a request omits iterations.
	DefaultIterations int
	// AllowOrigin is echoed in Access-Control-Allow-Origin; empty disables CORS headers.
	AllowOrigin string
	// Logger receives one Info record per search and a Warn or Error record
	// per failed request.
	Logger *slog.Logger
}

// Option configures a Server via functional arguments.
type Option func(*Options)

// DefaultOptions returns 65536 cells, 1<<20 iterations, 500 default
// iterations, CORS for any origin and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxCells:          1 << 16,
		MaxIterations:     1 << 20,
		DefaultIterations: 500,
		AllowOrigin:       "*",
		Logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithMaxCells sets the grid size limit; non-positive values are ignored.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxCells = n
		}
	}
}

// WithMaxIterations sets the budget limit; non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}

// WithDefaultIterations sets the budget used when a request omits one.
func WithDefaultIterations(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.DefaultIterations = n
		}
	}
}

// WithAllowOrigin sets the CORS origin.
func WithAllowOrigin(origin string) Option {
	return func(o *Options) {
		o.AllowOrigin = origin
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

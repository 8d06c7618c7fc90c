package httpapi

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/tilepath/mapfile"
	"github.com/katalvlaran/tilepath/pathsearch"
	"github.com/katalvlaran/tilepath/tilegrid"
)

// Server serves search requests. It holds configuration only.
type Server struct {
	opts   Options
	engine *gin.Engine
}

// New builds a Server and its routes.
func New(opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := &Server{opts: o, engine: gin.New()}
	s.engine.Use(gin.Recovery(), s.cors())
	s.engine.GET("/healthz", s.handleHealth)
	v1 := s.engine.Group("/v1")
	v1.POST("/search", s.handleSearch)
	v1.GET("/maps/:name", s.handleBundled)
	return s
}

// Handler returns the HTTP handler for the routes.
func (s *Server) Handler() http.Handler { return s.engine }

// ListenAndServe serves on addr until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.opts.Logger.Info("listening", slog.String("addr", addr))
	return s.engine.Run(addr)
}

func (s *Server) cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.opts.AllowOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", s.opts.AllowOrigin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("httpapi: bad request body: %w", err))
		return
	}

	g, err := s.grid(&req)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	budget := s.opts.DefaultIterations
	if req.Iterations != nil {
		budget = *req.Iterations
	}
	s.search(c, g, req.Start.cell(), req.End.cell(), req.Algorithm, req.Blocked, budget)
}

// handleBundled runs a scenario shipped with mapfile, with optional
// query overrides.
func (s *Server) handleBundled(c *gin.Context) {
	sc, err := mapfile.Bundled(c.Param("name"))
	if err != nil {
		s.fail(c, http.StatusNotFound, err)
		return
	}
	algo := c.DefaultQuery("algorithm", sc.Kind.String())
	blocked := c.DefaultQuery("blocked", sc.Blocked.String())
	budget := sc.Iterations
	if raw, ok := c.GetQuery("iterations"); ok {
		if budget, err = strconv.Atoi(raw); err != nil {
			s.fail(c, http.StatusBadRequest, fmt.Errorf("httpapi: iterations: %w", err))
			return
		}
	}
	s.search(c, sc.Grid, sc.Start, sc.End, algo, blocked, budget)
}

func (s *Server) grid(req *SearchRequest) (*tilegrid.Grid, error) {
	var (
		g   *tilegrid.Grid
		err error
	)
	switch {
	case req.Layout != "" && len(req.Tiles) == 0:
		if n := layoutCells(req.Layout, s.opts.MaxCells); n > s.opts.MaxCells {
			return nil, fmt.Errorf("%w: more than %d cells", ErrGridTooLarge, s.opts.MaxCells)
		}
		g, err = mapfile.ParseLayout(req.Layout)
	case req.Layout == "" && len(req.Tiles) > 0:
		if len(req.Tiles)*len(req.Tiles[0]) > s.opts.MaxCells {
			return nil, fmt.Errorf("%w: %d cells", ErrGridTooLarge, len(req.Tiles)*len(req.Tiles[0]))
		}
		g, err = tilegrid.New(req.Tiles)
	default:
		return nil, mapfile.ErrMissingGrid
	}
	if err != nil {
		return nil, err
	}
	if g.Len() > s.opts.MaxCells {
		return nil, fmt.Errorf("%w: %d cells", ErrGridTooLarge, g.Len())
	}
	return g, nil
}

// layoutCells counts the tile runes of a layout, stopping once limit is passed.
func layoutCells(layout string, limit int) int {
	n := 0
	for _, ch := range layout {
		if unicode.IsSpace(ch) {
			continue
		}
		if n++; n > limit {
			break
		}
	}
	return n
}

func (s *Server) search(c *gin.Context, g *tilegrid.Grid, start, end tilegrid.Cell, algo, blocked string, budget int) {
	kind := pathsearch.Unweighted
	if algo != "" {
		k, err := pathsearch.ParseKind(algo)
		if err != nil {
			s.fail(c, http.StatusBadRequest, err)
			return
		}
		kind = k
	}
	policy, err := pathsearch.ParseBlockedPolicy(blocked)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	if budget > s.opts.MaxIterations {
		s.fail(c, http.StatusBadRequest, fmt.Errorf("%w: %d > %d", ErrBudgetTooLarge, budget, s.opts.MaxIterations))
		return
	}

	began := time.Now()
	res, err := pathsearch.Search(kind, start, end, g, budget, pathsearch.WithBlockedPolicy(policy))
	elapsed := time.Since(began)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, pathsearch.ErrInconsistentState) {
			status = http.StatusInternalServerError
		}
		s.fail(c, status, err)
		return
	}

	s.opts.Logger.Info("search",
		slog.String("algorithm", kind.String()),
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()),
		slog.String("stop", res.Stop.String()),
		slog.Int("expansions", res.Expansions),
		slog.Duration("elapsed", elapsed))
	c.JSON(http.StatusOK, SearchResponse{
		Algorithm:   kind.String(),
		Found:       res.Found,
		Stop:        res.Stop.String(),
		Path:        cellsJSON(res.Path),
		Visited:     cellsJSON(res.Visited),
		Cost:        res.Cost,
		Expansions:  res.Expansions,
		Reachable:   g.Connected(start, end),
		TimeTakenMs: float64(elapsed.Microseconds()) / 1000,
	})
}

func (s *Server) fail(c *gin.Context, status int, err error) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.opts.Logger.LogAttrs(c.Request.Context(), level, "request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err))
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}

package tilegrid

import "fmt"

// New builds a Grid from a non-empty, rectangular row-major matrix of tile
// codes. The input is copied; later changes to codes do not affect the Grid.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrUnknownTile.
func New(codes [][]int) (*Grid, error) {
	if len(codes) == 0 || len(codes[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(codes), len(codes[0])
	tiles := make([]TileType, 0, rows*cols)
	for r, row := range codes {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, code := range row {
			if code < 0 || code >= int(tileTypeCount) {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrUnknownTile, code, r, c)
			}
			tiles = append(tiles, TileType(code))
		}
	}

	return &Grid{rows: rows, cols: cols, tiles: tiles}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds reports whether c lies within [0,rows)×[0,cols).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Index maps c to its row-major offset.
func (g *Grid) Index(c Cell) (int, error) {
	if !g.InBounds(c) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return c.Row*g.cols + c.Col, nil
}

// CellAt converts a row-major offset back to a Cell.
func (g *Grid) CellAt(idx int) (Cell, error) {
	if idx < 0 || idx >= len(g.tiles) {
		return Invalid, fmt.Errorf("%w: index %d in %dx%d grid", ErrOutOfBounds, idx, g.rows, g.cols)
	}
	return Cell{Row: idx / g.cols, Col: idx % g.cols}, nil
}

// TileTypeAt returns the tile type stored at c.
func (g *Grid) TileTypeAt(c Cell) (TileType, error) {
	idx, err := g.Index(c)
	if err != nil {
		return 0, err
	}
	return g.tiles[idx], nil
}

// CostAt returns the cost of stepping onto c.
func (g *Grid) CostAt(c Cell) (float64, error) {
	t, err := g.TileTypeAt(c)
	if err != nil {
		return 0, err
	}
	return CostOf(t), nil
}

// NeighborsOf returns the in-bounds cardinal neighbors of c in the order
// left, right, up, down.
func (g *Grid) NeighborsOf(c Cell) ([]Cell, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	out := make([]Cell, 0, 4)
	if c.Col-1 >= 0 {
		out = append(out, Cell{Row: c.Row, Col: c.Col - 1})
	}
	if c.Col+1 < g.cols {
		out = append(out, Cell{Row: c.Row, Col: c.Col + 1})
	}
	if c.Row-1 >= 0 {
		out = append(out, Cell{Row: c.Row - 1, Col: c.Col})
	}
	if c.Row+1 < g.rows {
		out = append(out, Cell{Row: c.Row + 1, Col: c.Col})
	}
	return out, nil
}

// Codes returns a fresh row-major copy of the tile codes.
func (g *Grid) Codes() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		row := make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			row[c] = int(g.tiles[r*g.cols+c])
		}
		out[r] = row
	}
	return out
}

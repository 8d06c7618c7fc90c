package tilegrid

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for tilegrid operations.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("tilegrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("tilegrid: all rows must have the same length")
	// ErrUnknownTile indicates a tile code with no TileType.
	ErrUnknownTile = errors.New("tilegrid: unknown tile code")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("tilegrid: cell out of bounds")
)

// Cell is a (row, column) grid coordinate. Cells compare by value.
type Cell struct {
	Row, Col int
}

// Invalid is the "no cell" sentinel, used as the parent of unreached cells.
var Invalid = Cell{Row: -1, Col: -1}

// IsValid reports whether c differs from Invalid.
func (c Cell) IsValid() bool { return c != Invalid }

// String renders c as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// TileType is the terrain code stored at a grid position.
type TileType uint8

const (
	// TileOpen is free terrain.
	TileOpen TileType = iota
	// TileBlocked is a wall. Flood-fill never enters it; weighted search
	// charges blockedCost unless told to treat it as impassable.
	TileBlocked
	// TileWater is the low-cost-terrain tag.
	TileWater
	// TileGrass is the medium-cost-terrain tag.
	TileGrass

	tileTypeCount
)

var tileCosts = [tileTypeCount]float64{
	TileOpen:    1.0,
	TileBlocked: 100.0,
	TileWater:   25.0,
	TileGrass:   10.0,
}

var tileNames = [tileTypeCount]string{
	TileOpen:    "open",
	TileBlocked: "blocked",
	TileWater:   "water",
	TileGrass:   "grass",
}

// Valid reports whether t is one of the known tile types.
func (t TileType) Valid() bool { return t < tileTypeCount }

// String returns the lower-case tile name.
func (t TileType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
	return tileNames[t]
}

// CostOf returns the cost of stepping onto a tile of type t.
// Unknown types cost +Inf.
func CostOf(t TileType) float64 {
	if !t.Valid() {
		return math.Inf(1)
	}
	return tileCosts[t]
}

// Grid is an immutable rectangular map of tile types.
// tiles holds rows*cols entries in row-major order.
type Grid struct {
	rows, cols int
	tiles      []TileType
}

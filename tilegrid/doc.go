// Package tilegrid models a fixed-size rectangular map of terrain tiles
// addressed by (row, column) cells.
//
// What:
//
//   - Grid owns a dense row-major buffer of TileType codes, validated once at
//     construction and read-only afterwards.
//   - Every accessor is bounds-checked: out-of-range cells are rejected with
//     ErrOutOfBounds rather than clamped.
//   - NeighborsOf enumerates the in-bounds cardinal neighbors of a cell in the
//     fixed order left, right, up, down. Searches depend on this order for
//     reproducible tie-breaking.
//   - Regions labels 4-connected areas of non-blocked tiles.
//
// Tile codes:
//
//	0 TileOpen     cost   1
//	1 TileBlocked  cost 100
//	2 TileWater    cost  25
//	3 TileGrass    cost  10
//
// Complexity:
//
//   - New:          O(R×C) time and memory.
//   - TileTypeAt:   O(1).
//   - NeighborsOf:  O(1).
//   - Regions:      O(R×C) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTile: a code outside 0..3.
//   - ErrOutOfBounds: a cell outside [0,rows)×[0,cols).
package tilegrid

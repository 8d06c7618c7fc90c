// Package tilepath is a small toolkit for path search on rectangular tile
// maps: walls, water, grass and open floor, each with its own movement cost.
//
// What is in the box?
//
//   - tilegrid/   the Grid type: tile codes, bounds checks, 4-neighbour
//     lookup and connected regions
//   - frontier/   FIFO queue and min-heap frontiers behind one interface
//   - pathsearch/ budgeted flood-fill (BFS) and Dijkstra, resumable Runs,
//     parent-chain Retrace
//   - mapfile/    TOML scenario files with ASCII layouts, plus bundled maps
//   - render/     text overlays of a search over its grid
//   - httpapi/    JSON search endpoint on gin
//   - cmd/tilepath the run, view (tcell) and serve commands
//
// Every search takes an iteration budget: the number of cells it may expand
// before giving up. A budget that runs out is reported as a result, not an
// error, so callers can show partial progress and resume.
//
// Quick ASCII example:
//
//	S . # . E        S * # * E
//	. . # . .   ->   . * # * .     (a shortest route, walls impassable)
//	. . . . .        . * * * .
//
// See examples/ for runnable programs.
package tilepath

// Package render draws search results over a tile grid as text, for
// terminals, logs and golden tests.
package render

import (
	"strings"

	"github.com/katalvlaran/tilepath/mapfile"
	"github.com/katalvlaran/tilepath/pathsearch"
	"github.com/katalvlaran/tilepath/tilegrid"
)

// Overlay runes.
const (
	RuneStart   = 'S'
	RuneEnd     = 'E'
	RunePath    = '*'
	RuneVisited = '+'
)

// Mark is what a single cell shows in an overlay.
type Mark int

const (
	MarkTile Mark = iota
	MarkVisited
	MarkPath
	MarkStart
	MarkEnd
)

// Marks classifies every cell of g, row-major. Visited cells are marked only
// when res found no path; a found path hides the search debris. Endpoints
// win over everything else. res may be nil.
func Marks(g *tilegrid.Grid, res *pathsearch.Result, start, end tilegrid.Cell) []Mark {
	marks := make([]Mark, g.Len())
	set := func(c tilegrid.Cell, m Mark) {
		if i, err := g.Index(c); err == nil {
			marks[i] = m
		}
	}
	if res != nil {
		if !res.Found {
			for _, c := range res.Visited {
				set(c, MarkVisited)
			}
		}
		for _, c := range res.Path {
			set(c, MarkPath)
		}
	}
	set(start, MarkStart)
	set(end, MarkEnd)
	return marks
}

// Overlay renders g with res drawn on top, one newline-terminated line per row.
func Overlay(g *tilegrid.Grid, res *pathsearch.Result, start, end tilegrid.Cell) string {
	marks := Marks(g, res, start, end)
	var sb strings.Builder
	sb.Grow(g.Len() + g.Rows())
	for i, m := range marks {
		switch m {
		case MarkStart:
			sb.WriteRune(RuneStart)
		case MarkEnd:
			sb.WriteRune(RuneEnd)
		case MarkPath:
			sb.WriteRune(RunePath)
		case MarkVisited:
			sb.WriteRune(RuneVisited)
		default:
			c, _ := g.CellAt(i)
			t, _ := g.TileTypeAt(c)
			sb.WriteRune(mapfile.TileRune(t))
		}
		if (i+1)%g.Cols() == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

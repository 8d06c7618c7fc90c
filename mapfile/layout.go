package mapfile

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tilepath/tilegrid"
)

var runeTiles = map[rune]tilegrid.TileType{
	'.': tilegrid.TileOpen,
	'#': tilegrid.TileBlocked,
	'~': tilegrid.TileWater,
	':': tilegrid.TileGrass,
}

var tileRunes = [...]rune{
	tilegrid.TileOpen:    '.',
	tilegrid.TileBlocked: '#',
	tilegrid.TileWater:   '~',
	tilegrid.TileGrass:   ':',
}

// TileRune returns the layout rune for t, or '?' for unknown types.
func TileRune(t tilegrid.TileType) rune {
	if int(t) >= len(tileRunes) {
		return '?'
	}
	return tileRunes[t]
}

// ParseLayout builds a grid from one line of runes per row. Blank lines and
// surrounding spaces are ignored.
func ParseLayout(s string) (*tilegrid.Grid, error) {
	var codes [][]int
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]int, 0, len(line))
		for col, ch := range []rune(line) {
			t, ok := runeTiles[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadLayoutRune, ch, len(codes), col)
			}
			row = append(row, int(t))
		}
		codes = append(codes, row)
	}
	return tilegrid.New(codes)
}

// FormatLayout renders g as layout text, one newline-terminated line per row.
func FormatLayout(g *tilegrid.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Rows())
	for _, row := range g.Codes() {
		for _, code := range row {
			sb.WriteRune(TileRune(tilegrid.TileType(code)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

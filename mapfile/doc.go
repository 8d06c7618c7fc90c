// Package mapfile reads and writes search scenarios: a tile grid plus the
// endpoints, algorithm and budget to run on it.
//
// Scenarios are TOML documents:
//
//	name       = "lab"
//	algorithm  = "dijkstra"     # bfs | dijkstra
//	iterations = 500
//	blocked    = "expensive"    # expensive | impassable
//	start      = [7, 3]         # [row, col]
//	end        = [2, 16]
//	layout     = '''
//	#####
//	#.~:#
//	#####
//	'''
//
// The grid comes from either layout (one rune per tile) or tiles (a matrix
// of integer codes). Layout runes:
//
//	.  open
//	#  blocked
//	~  water
//	:  grass
//
// Default returns the bundled ten-by-twenty lab map.
package mapfile

package tilegrid

// NoRegion labels blocked cells in the slice returned by Regions.
const NoRegion = -1

// Regions labels every 4-connected area of non-blocked tiles.
// The result has one entry per cell in row-major order: the region number
// (0, 1, ... in scan order) or NoRegion for blocked cells.
//
// Time:   O(R×C).
// Memory: O(R×C) for labels and the scan queue.
func (g *Grid) Regions() []int {
	labels := make([]int, len(g.tiles))
	for i := range labels {
		labels[i] = NoRegion
	}

	next := 0
	queue := make([]int, 0, len(g.tiles))
	for i0, t := range g.tiles {
		if t == TileBlocked || labels[i0] != NoRegion {
			continue
		}
		// flood the whole region before moving on
		labels[i0] = next
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			nbrs, _ := g.NeighborsOf(Cell{Row: u / g.cols, Col: u % g.cols})
			for _, nb := range nbrs {
				v := nb.Row*g.cols + nb.Col
				if g.tiles[v] == TileBlocked || labels[v] != NoRegion {
					continue
				}
				labels[v] = next
				queue = append(queue, v)
			}
		}
		next++
	}
	return labels
}

// Connected reports whether a and b are non-blocked cells in the same region.
// Out-of-bounds cells are never connected.
func (g *Grid) Connected(a, b Cell) bool {
	ia, err := g.Index(a)
	if err != nil {
		return false
	}
	ib, err := g.Index(b)
	if err != nil {
		return false
	}
	labels := g.Regions()
	return labels[ia] != NoRegion && labels[ia] == labels[ib]
}

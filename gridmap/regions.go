package gridmap

import "fmt"

// Regions finds all contiguous areas of walkable cells under 4- or 8-neighbour
// connectivity. Each region is a slice of row-major indices in BFS order;
// regions are ordered by their first cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *GridMap) Regions(allowDiagonal bool) [][]int {
	seen := make([]bool, g.Len())
	var regions [][]int
	var buf []Point

	for i0 := range g.walkable {
		if !g.walkable[i0] || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			buf = g.AppendNeighbors(buf[:0], ux, uy, allowDiagonal)
			for _, p := range buf {
				vi := g.Index(p.X, p.Y)
				if !g.walkable[vi] || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Connected reports whether a walkable route joins a and b.
// Returns ErrOutOfBounds if either point is outside the grid and ErrNotWalkable
// if either point is blocked.
// Complexity: O(W·H·d) worst case; stops as soon as b is reached.
func (g *GridMap) Connected(a, b Point, allowDiagonal bool) (bool, error) {
	for _, p := range [2]Point{a, b} {
		if !g.InBounds(p.X, p.Y) {
			return false, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
		}
		if !g.walkable[g.Index(p.X, p.Y)] {
			return false, fmt.Errorf("%w: %s", ErrNotWalkable, p)
		}
	}
	src, dst := g.Index(a.X, a.Y), g.Index(b.X, b.Y)
	if src == dst {
		return true, nil
	}

	seen := make([]bool, g.Len())
	seen[src] = true
	queue := []int{src}
	var buf []Point
	for qi := 0; qi < len(queue); qi++ {
		ux, uy := g.Coordinate(queue[qi])
		buf = g.AppendNeighbors(buf[:0], ux, uy, allowDiagonal)
		for _, p := range buf {
			vi := g.Index(p.X, p.Y)
			if !g.walkable[vi] || seen[vi] {
				continue
			}
			if vi == dst {
				return true, nil
			}
			seen[vi] = true
			queue = append(queue, vi)
		}
	}

	return false, nil
}

// Package gridmap provides a bounded 2D cell store for path finding. It supports:
//
//   - Walkability toggling with lenient out-of-range writes
//   - Strict, error-returning cell reads
//   - Four- or eight-neighbour enumeration
//   - A resettable search context owned by the grid
//
// Cells are addressed in row-major order: index = y*Width + x.
package gridmap

import (
	"fmt"
)

// GridMap is a fixed-size grid of cells. Its dimensions never change after New.
// walkable[i] holds the walkability of the cell at row-major index i; state is
// the search context used by the default path finder.
type GridMap struct {
	width, height int
	walkable      []bool
	state         *SearchState
}

// New constructs a width×height GridMap with every cell walkable and a freshly
// reset search context.
// Returns ErrInvalidSize if width or height is below 1.
// Algorithmic complexity: O(W×H) time and memory.
func New(width, height int) (*GridMap, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}
	n := width * height
	walkable := make([]bool, n)
	for i := range walkable {
		walkable[i] = true
	}
	g := &GridMap{
		width:    width,
		height:   height,
		walkable: walkable,
	}
	g.state = NewSearchState(g)

	return g, nil
}

// Width returns the number of columns.
func (g *GridMap) Width() int { return g.width }

// Height returns the number of rows.
func (g *GridMap) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *GridMap) Len() int { return len(g.walkable) }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *GridMap) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Index maps (x,y) to its row-major index: y*Width + x.
// The caller guarantees (x,y) is in bounds.
func (g *GridMap) Index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *GridMap) Coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Node returns a view of the cell at (x,y), including its current search state.
// Returns ErrOutOfBounds, wrapped with the coordinates and grid size, when the
// cell does not exist.
func (g *GridMap) Node(x, y int) (Node, error) {
	if !g.InBounds(x, y) {
		return Node{}, fmt.Errorf("%w: (%d,%d) not in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	i := g.Index(x, y)

	return Node{
		X:        x,
		Y:        y,
		Walkable: g.walkable[i],
		G:        g.state.G[i],
		H:        g.state.H[i],
		Parent:   g.state.Parent[i],
	}, nil
}

// SetWalkable marks the cell at (x,y) walkable or blocked.
// Out-of-range coordinates are ignored.
func (g *GridMap) SetWalkable(x, y int, walkable bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.walkable[g.Index(x, y)] = walkable
}

// IsWalkable reports whether (x,y) is inside the grid and walkable.
func (g *GridMap) IsWalkable(x, y int) bool {
	return g.InBounds(x, y) && g.walkable[g.Index(x, y)]
}

// WalkableAt reports the walkability of the cell at row-major index idx.
func (g *GridMap) WalkableAt(idx int) bool {
	return g.walkable[idx]
}

// Fill sets every cell to the given walkability.
func (g *GridMap) Fill(walkable bool) {
	for i := range g.walkable {
		g.walkable[i] = walkable
	}
}

// Obstacles lists every blocked cell in row-major order.
func (g *GridMap) Obstacles() []Point {
	var out []Point
	for i, ok := range g.walkable {
		if ok {
			continue
		}
		x, y := g.Coordinate(i)
		out = append(out, Point{X: x, Y: y})
	}

	return out
}

// Neighbors returns the in-bounds neighbours of (x,y): the orthogonal cells
// N, E, S, W first and, when allowDiagonal is set, the diagonal cells NE, SE,
// SW, NW after them. Walkability is not inspected.
// Complexity: O(1).
func (g *GridMap) Neighbors(x, y int, allowDiagonal bool) []Point {
	return g.AppendNeighbors(make([]Point, 0, 8), x, y, allowDiagonal)
}

// AppendNeighbors is Neighbors appending to dst, letting hot loops reuse a buffer.
func (g *GridMap) AppendNeighbors(dst []Point, x, y int, allowDiagonal bool) []Point {
	for _, d := range orthogonalOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			dst = append(dst, Point{X: nx, Y: ny})
		}
	}
	if !allowDiagonal {
		return dst
	}
	for _, d := range diagonalOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			dst = append(dst, Point{X: nx, Y: ny})
		}
	}

	return dst
}

// State returns the search context owned by the grid.
func (g *GridMap) State() *SearchState { return g.state }

// Reset clears G, H and Parent of every cell in the grid's own search context.
// It must run before every new search so no partial state leaks between queries.
func (g *GridMap) Reset() {
	g.state.Reset()
}

package gridmap

import (
	"container/list"
	"fmt"
)

// Breach finds a route from a to b that crosses the fewest blocked cells and
// returns it together with the blocked cells it crosses (the cells a caller
// would have to clear). Each blocked cell costs 1, walkable cells cost 0;
// blocked endpoints count as well. A zero-length cleared slice means a and b
// are already connected.
//
// Behavior:
//  1. Validate both endpoints are inside the grid (ErrOutOfBounds).
//  2. 0–1 BFS from a:
//     • Moving into a walkable cell → cost 0, pushed to the deque front
//     • Moving into a blocked cell  → cost 1, pushed to the deque back
//  3. Stop when b is dequeued.
//  4. Reconstruct the route via predecessor indices.
//
// Complexity: O(W·H·d) time, Memory: O(W·H) for distance and predecessors.
func (g *GridMap) Breach(a, b Point, allowDiagonal bool) (path []Point, cleared []Point, err error) {
	for _, p := range [2]Point{a, b} {
		if !g.InBounds(p.X, p.Y) {
			return nil, nil, fmt.Errorf("%w: %s", ErrOutOfBounds, p)
		}
	}

	n := g.Len()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = NoParent
	}

	src, dst := g.Index(a.X, a.Y), g.Index(b.X, b.Y)
	dist[src] = g.cellCost(src)
	dq := list.New()
	dq.PushFront(src)

	var buf []Point
	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		ux, uy := g.Coordinate(u)
		buf = g.AppendNeighbors(buf[:0], ux, uy, allowDiagonal)
		for _, p := range buf {
			v := g.Index(p.X, p.Y)
			step := g.cellCost(v)
			nd := dist[u] + step
			if nd >= dist[v] {
				continue
			}
			dist[v] = nd
			prev[v] = u
			if step == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	// Every cell is enterable at some cost, so dst is always reached.
	for at := dst; at != NoParent; at = prev[at] {
		x, y := g.Coordinate(at)
		path = append(path, Point{X: x, Y: y})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, p := range path {
		if !g.walkable[g.Index(p.X, p.Y)] {
			cleared = append(cleared, p)
		}
	}

	return path, cleared, nil
}

// cellCost is the 0–1 BFS weight of entering cell i.
func (g *GridMap) cellCost(i int) int {
	if g.walkable[i] {
		return 0
	}
	return 1
}

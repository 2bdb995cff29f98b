// Package astar implements A* search on a gridmap.GridMap.
//
// Notes on implementation choices:
//
//   - We check both endpoints before touching the search state, so a blocked start or goal
//     costs nothing and explores no cells.
//   - A neighbour is (re)queued when the new G-cost improves on its recorded one or when it
//     is not queued yet; a queued neighbour with a better G-cost is moved with heap.Fix.
//   - Settled cells are never reopened; the movement-matched heuristics are consistent.
//   - Panics raised during a search are recovered at the FindPath boundary and reported as
//     a failed Result.
package astar

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/gridroute/gridmap"
)

// PathFinder computes lowest-cost walkable paths on one grid. Its movement
// model is fixed at construction.
type PathFinder struct {
	grid    *gridmap.GridMap
	options Options
}

// New returns a PathFinder bound to grid.
//
// Preconditions and validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. a WithState context must cover exactly grid.Len() cells (ErrStateSize).
func New(grid *gridmap.GridMap, opts ...Option) (*PathFinder, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.State == nil {
		cfg.State = grid.State()
	} else if cfg.State.Len() != grid.Len() {
		return nil, fmt.Errorf("%w: state has %d cells, grid has %d", ErrStateSize, cfg.State.Len(), grid.Len())
	}
	if cfg.Heuristic == nil {
		if cfg.AllowDiagonal {
			cfg.Heuristic = Euclidean
		} else {
			cfg.Heuristic = Manhattan
		}
	}

	return &PathFinder{grid: grid, options: cfg}, nil
}

// AllowDiagonal reports whether the finder moves diagonally.
func (pf *PathFinder) AllowDiagonal() bool { return pf.options.AllowDiagonal }

// Grid returns the grid the finder searches.
func (pf *PathFinder) Grid() *gridmap.GridMap { return pf.grid }

// FindPath searches for the lowest-cost path from (startX,startY) to
// (endX,endY).
//
// Returns a Result that is successful with the start→goal path and its cost,
// or failed with one of:
//
//   - MsgStartBlocked / MsgGoalBlocked: endpoint is not walkable (NodesExplored = 0).
//   - MsgNoPath: the frontier ran dry (NodesExplored > 0).
//   - MsgSearchError: out-of-range endpoint or an internal fault, with the cause appended.
//
// ExecutionTimeMs is always set.
func (pf *PathFinder) FindPath(startX, startY, endX, endY int) (res Result) {
	began := time.Now()
	var r *runner
	defer func() {
		if p := recover(); p != nil {
			res = failure(fmt.Sprintf("%s: %v", MsgSearchError, p))
			if r != nil {
				res.NodesExplored = r.explored
			}
		}
		res.Elapsed = time.Since(began)
		res.ExecutionTimeMs = res.Elapsed.Milliseconds()
	}()

	// 1) Resolve both endpoints; an out-of-range read is reported, not raised.
	start, err := pf.grid.Node(startX, startY)
	if err != nil {
		return failure(fmt.Sprintf("%s: %v", MsgSearchError, err))
	}
	goal, err := pf.grid.Node(endX, endY)
	if err != nil {
		return failure(fmt.Sprintf("%s: %v", MsgSearchError, err))
	}

	// 2) Early exits for blocked endpoints.
	if !start.Walkable {
		return failure(MsgStartBlocked)
	}
	if !goal.Walkable {
		return failure(MsgGoalBlocked)
	}

	// 3) Run the search.
	r = pf.newRunner(start.Point(), goal.Point())
	r.init()

	return r.process()
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	grid      *gridmap.GridMap     // Topology; read-only during the search.
	state     *gridmap.SearchState // G, H, Parent per cell.
	diagonal  bool                 // Movement model.
	heuristic Heuristic            // Estimate to the goal.
	start     gridmap.Point        // Search origin.
	goal      gridmap.Point        // Search target.
	goalIdx   int                  // Row-major index of goal.
	open      *frontier            // Cells discovered but not settled.
	closed    []bool               // Cells whose G-cost is final.
	explored  int                  // Cells removed from the frontier.
	buf       []gridmap.Point      // Reused neighbour buffer.
}

func (pf *PathFinder) newRunner(start, goal gridmap.Point) *runner {
	n := pf.grid.Len()
	return &runner{
		grid:      pf.grid,
		state:     pf.options.State,
		diagonal:  pf.options.AllowDiagonal,
		heuristic: pf.options.Heuristic,
		start:     start,
		goal:      goal,
		goalIdx:   pf.grid.Index(goal.X, goal.Y),
		open:      newFrontier(n),
		closed:    make([]bool, n),
		buf:       make([]gridmap.Point, 0, 8),
	}
}

// init resets the search context and seeds the frontier with the start cell.
func (r *runner) init() {
	r.state.Reset()

	s := r.grid.Index(r.start.X, r.start.Y)
	r.state.G[s] = 0
	r.state.H[s] = r.heuristic(r.start, r.goal)
	heap.Push(r.open, frontierItem{idx: s, f: r.state.H[s]})
}

// process is the main loop: pop the lowest-F cell, stop at the goal, otherwise
// settle it and relax its neighbours.
func (r *runner) process() Result {
	for r.open.Len() > 0 {
		cur := heap.Pop(r.open).(frontierItem).idx
		r.explored++

		if cur == r.goalIdx {
			return Result{
				Success:       true,
				Path:          r.reconstruct(),
				TotalCost:     r.state.G[cur],
				NodesExplored: r.explored,
				Message:       MsgPathFound,
			}
		}

		r.closed[cur] = true
		r.relax(cur)
	}

	res := failure(MsgNoPath)
	res.NodesExplored = r.explored

	return res
}

// relax examines every neighbour of cur and records a better route through cur
// where one exists.
func (r *runner) relax(cur int) {
	cx, cy := r.grid.Coordinate(cur)
	from := gridmap.Point{X: cx, Y: cy}

	r.buf = r.grid.AppendNeighbors(r.buf[:0], cx, cy, r.diagonal)
	for _, nb := range r.buf {
		ni := r.grid.Index(nb.X, nb.Y)
		if !r.grid.WalkableAt(ni) || r.closed[ni] {
			continue
		}

		tentative := r.state.G[cur] + StepCost(from, nb)
		queued := r.open.contains(ni)
		if queued && tentative >= r.state.G[ni] {
			continue
		}

		r.state.G[ni] = tentative
		r.state.H[ni] = r.heuristic(nb, r.goal)
		r.state.Parent[ni] = cur
		f := tentative + r.state.H[ni]
		if queued {
			r.open.items[r.open.pos[ni]].f = f
			heap.Fix(r.open, r.open.pos[ni])
		} else {
			heap.Push(r.open, frontierItem{idx: ni, f: f})
		}
	}
}

// reconstruct follows Parent indices from the goal back to the start and
// returns the coordinates in start→goal order.
func (r *runner) reconstruct() []gridmap.Point {
	var path []gridmap.Point
	for at := r.goalIdx; at != gridmap.NoParent; at = r.state.Parent[at] {
		x, y := r.grid.Coordinate(at)
		path = append(path, gridmap.Point{X: x, Y: y})
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// failure builds an unsuccessful Result with the given message.
func failure(msg string) Result {
	return Result{Message: msg}
}

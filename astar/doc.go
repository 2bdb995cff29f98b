// Package astar finds lowest-cost walkable paths between two cells of a
// gridmap.GridMap with the A* algorithm.
//
// Overview:
//
//   - A* expands cells in order of F = G + H, where G is the exact cost from the start and H
//     an admissible estimate of the remaining cost to the goal.
//   - Orthogonal steps cost 1, diagonal steps cost √2.
//   - With diagonal movement the default heuristic is Euclidean distance; without it,
//     Manhattan distance. Both are admissible and consistent for their movement model, so a
//     settled cell is never reopened.
//
// Key features:
//
//   - Search state lives in the grid's gridmap.SearchState (flat G/H/Parent arrays) and is
//     reset at the start of every FindPath call.
//   - The frontier is an indexed binary heap: membership is an O(1) lookup and an improved
//     G-cost is applied with a decrease-key, never by scanning the queue.
//   - FindPath never panics and never returns an error: blocked endpoints, an exhausted
//     frontier, out-of-range coordinates and unexpected internal faults all come back as a
//     Result with Success=false and a descriptive Message.
//
// Options:
//
//   - WithDiagonal(bool):        allow 8-neighbour movement (default true).
//   - WithHeuristic(Heuristic):  override the movement-matched default heuristic.
//   - WithState(*SearchState):   search in a private context instead of the grid's own.
//
// Complexity:
//
//   - Time:  O(N log N) for N = W×H cells (each cell settled once, d ≤ 8 relaxations each).
//   - Space: O(N) for the closed flags and the heap position index.
//
// Tie-breaking:
//
//   - Among equal-F entries the order is whatever the heap yields. Callers must not rely on
//     a particular path when several optimal paths exist; only the cost is guaranteed.
//
// Thread safety:
//
//   - A PathFinder mutates its SearchState. Concurrent FindPath calls on finders sharing one
//     state, or walkability edits during a search, must be serialized by the caller.
//
// Errors (sentinel, construction only):
//
//   - ErrNilGrid:   New was given a nil grid.
//   - ErrStateSize: WithState was given a context sized for another grid.
package astar

// Package gridmap models a fixed-size 2D grid of walkable or blocked cells
// together with the per-cell search state used by path finders.
//
// What:
//
//   - GridMap stores a rectangular width×height walkability layout in row-major order.
//   - SearchState keeps G, H and predecessor indices in flat arrays parallel to the cells,
//     so a search never holds references into the grid.
//   - Neighbors yields the 4 orthogonal cells and, on request, the 4 diagonal cells.
//   - Regions / Connected / Breach analyse the walkable topology.
//   - WriteSnapshot / ReadSnapshot persist a layout as a compressed bitmap.
//
// Why:
//
//   - Game and robot maps: obstacle layouts edited between queries.
//   - Route planning: a path finder resets and reuses the same arrays for every query.
//   - Diagnostics: explain why two points are disconnected and what it takes to join them.
//
// Complexity:
//
//   - New, Fill, Reset, Obstacles: O(W×H) time, Memory: O(W×H).
//   - Node, SetWalkable, IsWalkable, Neighbors: O(1).
//   - Regions, Connected, Breach:  O(W×H×d), Memory: O(W×H)   (d = 4 or 8).
//
// Bounds:
//
//   - Node returns ErrOutOfBounds for coordinates outside [0,W)×[0,H): reading a cell that
//     does not exist is a caller bug.
//   - SetWalkable silently ignores out-of-range coordinates so bulk obstacle edits need no
//     pre-validation.
//
// Concurrency:
//
//   - GridMap performs no locking. A search mutates the grid's SearchState; callers must
//     serialize searches and walkability edits on the same grid. Independent searches may
//     share one topology by giving each its own SearchState.
//
// Errors:
//
//   - ErrInvalidSize: width or height below 1.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrNotWalkable: Connected endpoint is blocked.
//   - ErrBadSnapshot: snapshot stream is malformed.
package gridmap

// Package gridmap defines core types and sentinel errors for grid storage
// and per-search cell state.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrInvalidSize indicates a width or height below 1.
	ErrInvalidSize = errors.New("gridmap: width and height must be at least 1")
	// ErrOutOfBounds indicates a coordinate outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("gridmap: coordinate out of bounds")
	// ErrNotWalkable indicates an analysis endpoint lies on a blocked cell.
	ErrNotWalkable = errors.New("gridmap: cell is not walkable")
	// ErrBadSnapshot indicates a malformed snapshot stream.
	ErrBadSnapshot = errors.New("gridmap: malformed snapshot")
)

// NoParent marks a cell without a predecessor in a SearchState.
const NoParent = -1

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Node is a read-only view of one cell: its coordinates, walkability and the
// search state currently recorded for it.
type Node struct {
	X, Y     int     // Coordinates within the grid
	Walkable bool    // False for obstacle cells
	G        float64 // Accumulated cost from the search origin
	H        float64 // Heuristic estimate to the goal
	Parent   int     // Row-major index of the predecessor, or NoParent
}

// F returns G + H, the frontier priority of the node.
func (n Node) F() float64 { return n.G + n.H }

// Point returns the node coordinates.
func (n Node) Point() Point { return Point{X: n.X, Y: n.Y} }

// HasParent reports whether the node has a predecessor.
func (n Node) HasParent() bool { return n.Parent != NoParent }

// orthogonalOffsets lists N, E, S, W.
var orthogonalOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// diagonalOffsets lists NE, SE, SW, NW.
var diagonalOffsets = [4][2]int{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}

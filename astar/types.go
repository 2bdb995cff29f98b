// Package astar defines the result record, heuristics and configuration
// options of the A* path finder.
package astar

import (
	"errors"
	"time"

	"github.com/katalvlaran/gridroute/gridmap"
)

// Sentinel errors returned by New.
var (
	// ErrNilGrid indicates that a nil *gridmap.GridMap was passed to New.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStateSize indicates that the search context given by WithState does not
	// cover exactly the cells of the grid.
	ErrStateSize = errors.New("astar: search state does not match grid size")
)

// Result messages. Failure messages are stable so callers can match on them.
const (
	MsgPathFound    = "path found"
	MsgStartBlocked = "start position is not walkable"
	MsgGoalBlocked  = "goal position is not walkable"
	MsgNoPath       = "no path found"
	MsgSearchError  = "search error"
)

// Result is the outcome of one search. Its JSON shape is the public result
// record: success, path, totalCost, nodesExplored, message, executionTimeMs.
//
// Path runs start→goal inclusive and is nil on failure. NodesExplored counts
// cells removed from the frontier. Elapsed carries the same measurement as
// ExecutionTimeMs at full resolution and is not serialized.
type Result struct {
	Success         bool            `json:"success"`
	Path            []gridmap.Point `json:"path"`
	TotalCost       float64         `json:"totalCost"`
	NodesExplored   int             `json:"nodesExplored"`
	Message         string          `json:"message"`
	ExecutionTimeMs int64           `json:"executionTimeMs"`
	Elapsed         time.Duration   `json:"-"`
}

// Heuristic estimates the remaining cost from a to b.
type Heuristic func(a, b gridmap.Point) float64

// Options configures a PathFinder.
//
// AllowDiagonal – permit the 4 diagonal moves in addition to the 4 orthogonal ones.
// Heuristic     – estimate used for H; nil selects Euclidean or Manhattan by AllowDiagonal.
// State         – search context; nil selects the grid's own context.
type Options struct {
	AllowDiagonal bool
	Heuristic     Heuristic
	State         *gridmap.SearchState
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// WithDiagonal enables or disables diagonal movement.
func WithDiagonal(allow bool) Option {
	return func(o *Options) {
		o.AllowDiagonal = allow
	}
}

// WithHeuristic replaces the default heuristic. The function must never
// overestimate the true remaining cost, or returned paths may be suboptimal.
// Passing nil panics.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic("astar: WithHeuristic requires a non-nil heuristic")
		}
		o.Heuristic = h
	}
}

// WithState makes the finder search in s instead of the grid's own context,
// so several finders can search one topology independently.
// Passing nil panics.
func WithState(s *gridmap.SearchState) Option {
	return func(o *Options) {
		if s == nil {
			panic("astar: WithState requires a non-nil search state")
		}
		o.State = s
	}
}

// DefaultOptions returns diagonal movement with the matching default
// heuristic and the grid's own search context.
func DefaultOptions() Options {
	return Options{
		AllowDiagonal: true,
	}
}

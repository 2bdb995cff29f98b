package pathfinding

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridroute/astar"
	"github.com/katalvlaran/gridroute/gridmap"
)

// tracerName identifies spans emitted by this package.
const tracerName = "github.com/katalvlaran/gridroute/pathfinding"

// Service owns one grid and one path finder for its lifetime. Callers only
// ever see coordinates; no grid cell escapes.
type Service struct {
	grid   *gridmap.GridMap
	finder *astar.PathFinder
	logger *slog.Logger
	tracer trace.Tracer
}

// NewService builds a width×height service with every cell walkable.
// Returns gridmap.ErrInvalidSize (wrapped) for non-positive dimensions.
func NewService(width, height int, allowDiagonal bool, opts ...Option) (*Service, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	grid, err := gridmap.New(width, height)
	if err != nil {
		return nil, err
	}
	finder, err := astar.New(grid, astar.WithDiagonal(allowDiagonal))
	if err != nil {
		return nil, err
	}

	return &Service{
		grid:   grid,
		finder: finder,
		logger: cfg.Logger,
		tracer: cfg.TracerProvider.Tracer(tracerName),
	}, nil
}

// GridWidth returns the number of columns.
func (s *Service) GridWidth() int { return s.grid.Width() }

// GridHeight returns the number of rows.
func (s *Service) GridHeight() int { return s.grid.Height() }

// AllowDiagonal reports the movement model fixed at construction.
func (s *Service) AllowDiagonal() bool { return s.finder.AllowDiagonal() }

// SetObstacle blocks (isObstacle=true) or frees the cell at (x,y).
// Out-of-range coordinates are ignored.
func (s *Service) SetObstacle(x, y int, isObstacle bool) {
	s.grid.SetWalkable(x, y, !isObstacle)
}

// SetObstacles blocks every listed cell, ignoring out-of-range entries.
func (s *Service) SetObstacles(points []Point) {
	for _, p := range points {
		s.SetObstacle(p.X, p.Y, true)
	}
}

// ClearObstacles makes every cell walkable.
func (s *Service) ClearObstacles() {
	s.grid.Fill(true)
}

// IsObstacle reports whether (x,y) is blocked. Out-of-range cells count as blocked.
func (s *Service) IsObstacle(x, y int) bool {
	return !s.grid.IsWalkable(x, y)
}

// Obstacles lists the blocked cells in row-major order.
func (s *Service) Obstacles() []Point {
	return s.grid.Obstacles()
}

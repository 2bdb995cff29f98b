package pathfinding

import (
	"fmt"
	"io"

	"github.com/katalvlaran/gridroute/gridmap"
)

// Reachable reports whether a walkable route joins a and b under the service's
// movement model. Errors are gridmap.ErrOutOfBounds or gridmap.ErrNotWalkable.
func (s *Service) Reachable(a, b Point) (bool, error) {
	return s.grid.Connected(a, b, s.finder.AllowDiagonal())
}

// BreachCost returns the fewest obstacles that must be cleared to join a and b,
// and which ones. Zero means the points are already connected.
func (s *Service) BreachCost(a, b Point) (int, []Point, error) {
	_, cleared, err := s.grid.Breach(a, b, s.finder.AllowDiagonal())
	if err != nil {
		return 0, nil, err
	}
	return len(cleared), cleared, nil
}

// SaveObstacles writes the current obstacle layout as a compressed snapshot.
func (s *Service) SaveObstacles(w io.Writer) error {
	return gridmap.WriteSnapshot(w, s.grid)
}

// LoadObstacles replaces the obstacle layout with one read from r.
// Returns gridmap.ErrBadSnapshot for malformed input and ErrSnapshotSize when
// the snapshot was taken from a grid of another size; the layout is unchanged
// on error.
func (s *Service) LoadObstacles(r io.Reader) error {
	snap, err := gridmap.ReadSnapshot(r)
	if err != nil {
		return err
	}
	if snap.Width() != s.grid.Width() || snap.Height() != s.grid.Height() {
		return fmt.Errorf("%w: snapshot %dx%d, service %dx%d",
			ErrSnapshotSize, snap.Width(), snap.Height(), s.grid.Width(), s.grid.Height())
	}

	return s.grid.CopyWalkability(snap)
}

package gridmap

// SearchState holds the search-scoped fields of every cell in flat arrays
// parallel to a grid's cells. Parent stores row-major indices (or NoParent)
// instead of references, so the predecessor chain is plain index state that a
// single Reset discards.
type SearchState struct {
	G      []float64 // accumulated cost from the origin
	H      []float64 // heuristic estimate to the goal
	Parent []int     // predecessor index, NoParent when none
}

// NewSearchState allocates a reset search context sized for g.
// Several contexts may share one grid as long as its walkability is not edited
// while they are in use.
func NewSearchState(g *GridMap) *SearchState {
	n := g.Len()
	s := &SearchState{
		G:      make([]float64, n),
		H:      make([]float64, n),
		Parent: make([]int, n),
	}
	s.Reset()

	return s
}

// Len returns the number of cells covered by the context.
func (s *SearchState) Len() int { return len(s.G) }

// Reset restores G and H to 0 and Parent to NoParent for every cell.
func (s *SearchState) Reset() {
	for i := range s.G {
		s.G[i] = 0
		s.H[i] = 0
		s.Parent[i] = NoParent
	}
}

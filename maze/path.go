package maze

// Path is an ordered sequence of cells where each consecutive pair shares an open wall.
type Path []CellPosition

// Moves returns the number of edges in the path.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether pos lies on the path.
func (p Path) Contains(pos CellPosition) bool {
	for _, c := range p {
		if c == pos {
			return true
		}
	}
	return false
}

// Valid reports whether every consecutive pair of p is joined by an open wall in g.
func (p Path) Valid(g *Grid) bool {
	if len(p) == 0 {
		return false
	}
	if !g.InBound(p[0].Row, p[0].Col) {
		return false
	}
	for i := 1; i < len(p); i++ {
		if !g.IsOpen(p[i-1], p[i]) {
			return false
		}
	}
	return true
}

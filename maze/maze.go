/*
Package maze provides the grid model for rectangular mazes.

A Grid owns rows*cols cells in row-major order. Every cell starts with its four
walls closed; walls are opened only through OpenWall, which keeps the wall shared
by two neighbors symmetric. Geometric neighbors come from the grid bounds and
connected neighbors from wall state, so there is a single source of truth for
the carved topology.

Cells also carry the transient flags the generator (visited) and the solver
(explored, parent) need. Reset clears all of it before a new carve.

A Grid has no internal locking. Observers called during generation or solving
may read it but must not mutate it.
*/
package maze

import (
	"fmt"
)

// Grid represents a rectangular maze of cells separated by walls.
type Grid struct {
	rows       int    // Number of rows
	cols       int    // Number of columns
	cells      []Cell // Row-major cell storage
	openWalls  int    // Number of distinct open walls
	incomplete bool   // Set when a carve stopped early
}

// New creates a grid of the given dimensions with every wall closed.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
	g.Reset()
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the number of cells.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBound reports whether (row, col) lies inside the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Position returns the cell position stored at row-major index i.
func (g *Grid) Position(i int) CellPosition {
	return CellPosition{Row: i / g.cols, Col: i % g.cols}
}

func (g *Grid) index(pos CellPosition) int {
	return pos.Row*g.cols + pos.Col
}

func (g *Grid) check(pos CellPosition) error {
	if !g.InBound(pos.Row, pos.Col) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, pos, g.rows, g.cols)
	}
	return nil
}

// Cell returns a copy of the cell at pos.
func (g *Grid) Cell(pos CellPosition) (Cell, error) {
	if err := g.check(pos); err != nil {
		return Cell{}, err
	}
	return g.cells[g.index(pos)], nil
}

// Neighbors returns the in-bound cells adjacent to pos regardless of walls,
// in North, South, West, East order.
func (g *Grid) Neighbors(pos CellPosition) ([]CellPosition, error) {
	if err := g.check(pos); err != nil {
		return nil, err
	}

	result := make([]CellPosition, 0, len(Directions))
	for _, d := range Directions {
		n := pos.Step(d)
		if g.InBound(n.Row, n.Col) {
			result = append(result, n)
		}
	}
	return result, nil
}

// ConnectedNeighbors returns the neighbors of pos reachable through an open wall,
// in North, South, West, East order.
func (g *Grid) ConnectedNeighbors(pos CellPosition) ([]CellPosition, error) {
	if err := g.check(pos); err != nil {
		return nil, err
	}

	cell := g.cells[g.index(pos)]
	result := make([]CellPosition, 0, len(Directions))
	for _, d := range Directions {
		n := pos.Step(d)
		if g.InBound(n.Row, n.Col) && !cell.HasWall(d) {
			result = append(result, n)
		}
	}
	return result, nil
}

// DirectionBetween returns the side of a that b lies on.
// It fails with ErrInvalidOperation unless a and b are in-bound neighbors.
func (g *Grid) DirectionBetween(a, b CellPosition) (Direction, error) {
	if err := g.check(a); err != nil {
		return 0, err
	}
	if err := g.check(b); err != nil {
		return 0, err
	}
	for _, d := range Directions {
		if a.Step(d) == b {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %v and %v", ErrNotAdjacent, a, b)
}

// OpenWall removes the wall shared by two adjacent cells on both sides.
// Opening an already open wall is a no-op. The grid is left unmodified on error.
func (g *Grid) OpenWall(a, b CellPosition) error {
	d, err := g.DirectionBetween(a, b)
	if err != nil {
		return err
	}

	from := &g.cells[g.index(a)]
	to := &g.cells[g.index(b)]
	if !from.HasWall(d) {
		return nil
	}

	from.setWall(d, false)
	to.setWall(d.Opposite(), false)
	g.openWalls++
	return nil
}

// IsOpen reports whether a and b are neighbors with an open wall between them.
func (g *Grid) IsOpen(a, b CellPosition) bool {
	d, err := g.DirectionBetween(a, b)
	if err != nil {
		return false
	}
	return !g.cells[g.index(a)].HasWall(d)
}

// OpenWallCount returns the number of distinct open walls.
func (g *Grid) OpenWallCount() int { return g.openWalls }

// Reset closes every wall and clears all generation and search state.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = closedCell()
	}
	g.openWalls = 0
	g.incomplete = false
}

// ClearSearch clears the explored flags and parent links left by a previous solve.
func (g *Grid) ClearSearch() {
	for i := range g.cells {
		g.cells[i].Explored = false
		g.cells[i].HasParent = false
		g.cells[i].Parent = CellPosition{}
	}
}

// MarkVisited flags pos as visited by the generator.
func (g *Grid) MarkVisited(pos CellPosition) error {
	if err := g.check(pos); err != nil {
		return err
	}
	g.cells[g.index(pos)].Visited = true
	return nil
}

// Visited reports whether pos was visited by the generator. Out-of-bound positions are never visited.
func (g *Grid) Visited(pos CellPosition) bool {
	if g.check(pos) != nil {
		return false
	}
	return g.cells[g.index(pos)].Visited
}

// MarkExplored flags pos as explored by the solver with no parent; used for the search root.
func (g *Grid) MarkExplored(pos CellPosition) error {
	if err := g.check(pos); err != nil {
		return err
	}
	c := &g.cells[g.index(pos)]
	c.Explored = true
	c.HasParent = false
	return nil
}

// Explore flags pos as explored and records parent as the cell it was reached from.
func (g *Grid) Explore(pos, parent CellPosition) error {
	if err := g.check(pos); err != nil {
		return err
	}
	if err := g.check(parent); err != nil {
		return err
	}
	c := &g.cells[g.index(pos)]
	c.Explored = true
	c.Parent = parent
	c.HasParent = true
	return nil
}

// Explored reports whether pos was reached by the current search.
func (g *Grid) Explored(pos CellPosition) bool {
	if g.check(pos) != nil {
		return false
	}
	return g.cells[g.index(pos)].Explored
}

// Parent returns the cell pos was reached from during the current search.
func (g *Grid) Parent(pos CellPosition) (CellPosition, bool) {
	if g.check(pos) != nil {
		return CellPosition{}, false
	}
	c := g.cells[g.index(pos)]
	return c.Parent, c.HasParent
}

// MarkIncomplete flags the grid as partially carved. Reset clears the flag.
func (g *Grid) MarkIncomplete() { g.incomplete = true }

// Incomplete reports whether the last carve stopped before covering every cell.
func (g *Grid) Incomplete() bool { return g.incomplete }

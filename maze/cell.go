package maze

import "fmt"

// Direction names one side of a cell.
type Direction int

// Directions in the order neighbors are reported.
const (
	North Direction = iota
	South
	West
	East
)

var directionNames = [...]string{"North", "South", "West", "East"}

// String returns the direction name (North, South, West, East).
func (d Direction) String() string {
	if d < North || d > East {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the side facing d across a shared wall.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case West:
		return East
	default:
		return West
	}
}

// Delta returns the row/col offset of one step in direction d.
func (d Direction) Delta() CellPosition {
	switch d {
	case North:
		return CellPosition{Row: -1, Col: 0}
	case South:
		return CellPosition{Row: 1, Col: 0}
	case West:
		return CellPosition{Row: 0, Col: -1}
	default:
		return CellPosition{Row: 0, Col: 1}
	}
}

// Directions lists every direction in neighbor order.
var Directions = [...]Direction{North, South, West, East}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Step returns the position one cell away in direction d. The result may be out of bounds.
func (p CellPosition) Step(d Direction) CellPosition {
	delta := d.Delta()
	return CellPosition{Row: p.Row + delta.Row, Col: p.Col + delta.Col}
}

// Manhattan returns |Δrow| + |Δcol| between p and other.
func (p CellPosition) Manhattan(other CellPosition) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

func (p CellPosition) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Move represents a movement from one cell to an adjacent one.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction Direction    // Side of From that To lies on
}

// Cell is a read-only view of a single grid cell.
// Grid.Cell returns copies; writing to a copy never changes the grid.
type Cell struct {
	NorthWall bool // NorthWall indicates whether the north side is closed.
	SouthWall bool // SouthWall indicates whether the south side is closed.
	WestWall  bool // WestWall indicates whether the west side is closed.
	EastWall  bool // EastWall indicates whether the east side is closed.

	Visited   bool         // Set by the generator while carving.
	Explored  bool         // Set by the solver while searching.
	Parent    CellPosition // Solver back-reference; valid only when HasParent.
	HasParent bool         // Whether Parent has been set.
}

// HasWall reports whether the wall on side d is closed.
func (c Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case West:
		return c.WestWall
	default:
		return c.EastWall
	}
}

func (c *Cell) setWall(d Direction, closed bool) {
	switch d {
	case North:
		c.NorthWall = closed
	case South:
		c.SouthWall = closed
	case West:
		c.WestWall = closed
	default:
		c.EastWall = closed
	}
}

// closedCell returns a cell with every wall closed and no transient state.
func closedCell() Cell {
	return Cell{
		NorthWall: true,
		SouthWall: true,
		WestWall:  true,
		EastWall:  true,
	}
}

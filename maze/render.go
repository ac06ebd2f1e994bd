package maze

import (
	"strings"
)

// Render draws the grid as ASCII art. Cells listed in marks show their glyph;
// every other cell is blank. Rendering is derived entirely from wall state.
func (g *Grid) Render(marks map[CellPosition]byte) string {
	var b strings.Builder

	// Top boundary
	b.WriteString("+" + strings.Repeat("---+", g.cols) + "\n")

	for row := 0; row < g.rows; row++ {
		// Cell row
		b.WriteString("|")
		for col := 0; col < g.cols; col++ {
			pos := CellPosition{Row: row, Col: col}
			cell := g.cells[g.index(pos)]

			if glyph, ok := marks[pos]; ok {
				b.WriteString(" " + string(glyph) + " ")
			} else {
				b.WriteString("   ")
			}

			if cell.EastWall {
				b.WriteString("|")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")

		// Wall row
		b.WriteString("+")
		for col := 0; col < g.cols; col++ {
			if g.cells[g.index(CellPosition{Row: row, Col: col})].SouthWall {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

// String provides a textual representation of the grid without marks.
func (g *Grid) String() string {
	return g.Render(nil)
}

// PathMarks returns a mark set placing glyph on every cell of p.
func PathMarks(p Path, glyph byte) map[CellPosition]byte {
	marks := make(map[CellPosition]byte, len(p))
	for _, pos := range p {
		marks[pos] = glyph
	}
	return marks
}

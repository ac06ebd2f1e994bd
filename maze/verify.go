package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// VerifySpanningTree checks that the open walls of g form a spanning tree:
// exactly Size()-1 open walls, no cycles, one component.
func VerifySpanningTree(g *Grid) error {
	if g.Incomplete() {
		return ErrIncompleteGeneration
	}

	want := g.Size() - 1
	if g.OpenWallCount() != want {
		return fmt.Errorf("%w: %d open walls, want %d", ErrNotSpanningTree, g.OpenWallCount(), want)
	}

	sets := make([]*disjoint.Element, g.Size())
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}

	// Each open wall is seen once, from its north or west side.
	for i, c := range g.cells {
		pos := g.Position(i)
		for _, d := range [...]Direction{South, East} {
			n := pos.Step(d)
			if !g.InBound(n.Row, n.Col) || c.HasWall(d) {
				continue
			}
			a, b := sets[i], sets[g.index(n)]
			if a.Find() == b.Find() {
				return fmt.Errorf("%w: cycle through wall %v-%v", ErrNotSpanningTree, pos, n)
			}
			disjoint.Union(a, b)
		}
	}

	root := sets[0].Find()
	for i, s := range sets {
		if s.Find() != root {
			return fmt.Errorf("%w: %v is disconnected", ErrNotSpanningTree, g.Position(i))
		}
	}
	return nil
}

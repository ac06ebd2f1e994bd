// Package solver finds paths through a carved maze.Grid.
package solver

import (
	"fmt"
	"slices"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// FindPath runs a breadth-first search from start to goal over open walls and
// returns the path including both endpoints.
//
// The explored flags and parent links of g are cleared first and left in place
// afterwards, so a caller can inspect the search. observer, if non-nil, is called
// once per dequeued cell.
func FindPath(g *maze.Grid, start, goal maze.CellPosition, observer maze.ProgressObserver) (maze.Path, error) {
	observer = maze.OrNop(observer)

	if !g.InBound(start.Row, start.Col) {
		return nil, fmt.Errorf("start %v: %w", start, maze.ErrOutOfBounds)
	}
	if !g.InBound(goal.Row, goal.Col) {
		return nil, fmt.Errorf("goal %v: %w", goal, maze.ErrOutOfBounds)
	}

	g.ClearSearch()
	if err := g.MarkExplored(start); err != nil {
		return nil, err
	}
	if start == goal {
		observer.OnProgress(maze.Progress{Phase: maze.PhaseSolve, Grid: g, Current: start, Done: 1, Total: g.Size(), Last: true})
		return maze.Path{start}, nil
	}

	queue := []maze.CellPosition{start}
	dequeued := 0

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		dequeued++

		neighbors, err := g.ConnectedNeighbors(current)
		if err != nil {
			return nil, err
		}

		found := false
		for _, n := range neighbors {
			if g.Explored(n) {
				continue
			}
			if err := g.Explore(n, current); err != nil {
				return nil, err
			}
			if n == goal {
				found = true
				break
			}
			queue = append(queue, n)
		}

		observer.OnProgress(maze.Progress{
			Phase:   maze.PhaseSolve,
			Grid:    g,
			Current: current,
			Done:    dequeued,
			Total:   g.Size(),
			Last:    found || len(queue) == 0,
		})

		if found {
			return reconstruct(g, start, goal)
		}
	}

	return nil, fmt.Errorf("%w: %v to %v", maze.ErrNoPathFound, start, goal)
}

// reconstruct walks parent links from goal back to start.
func reconstruct(g *maze.Grid, start, goal maze.CellPosition) (maze.Path, error) {
	path := maze.Path{goal}
	for cur := goal; cur != start; {
		parent, ok := g.Parent(cur)
		if !ok {
			return nil, fmt.Errorf("%w: broken parent chain at %v", maze.ErrNoPathFound, cur)
		}
		path = append(path, parent)
		cur = parent
	}
	slices.Reverse(path)
	return path, nil
}

// Package generator carves a fully walled maze.Grid into a spanning tree.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// targetNotifications bounds observer callbacks per carve, whatever the grid size.
const targetNotifications = 100

// Stats describes a finished (or interrupted) carve.
type Stats struct {
	Carved        int           // Walls opened
	Backtracks    int           // Stack pops
	Reseeds       int           // Times the stack emptied with cells still unvisited
	Notifications int           // Observer callbacks made
	Duration      time.Duration // Wall-clock time spent
}

// Carve resets g and carves it with a randomized depth-first search driven by rng.
// On success the open walls of g form a spanning tree.
//
// ctx is checked once per iteration. When it is done, g is marked incomplete and
// the returned error wraps both maze.ErrIncompleteGeneration and ctx.Err().
// observer may be nil; rng may not.
func Carve(ctx context.Context, g *maze.Grid, rng *rand.Rand, observer maze.ProgressObserver) (Stats, error) {
	if rng == nil {
		return Stats{}, fmt.Errorf("%w: nil random source", maze.ErrInvalidOperation)
	}
	start := time.Now()
	observer = maze.OrNop(observer)
	g.Reset()

	var st Stats
	total := g.Size()

	// A full carve takes total-1 carves and total pops.
	iterations := 2*total - 1
	interval := max(1, (iterations+targetNotifications-1)/targetNotifications)
	sinceNotify := 0

	first := maze.CellPosition{Row: rng.Intn(g.Rows()), Col: rng.Intn(g.Cols())}
	if err := g.MarkVisited(first); err != nil {
		return st, err
	}
	stack := []maze.CellPosition{first}
	visited := 1

	for visited < total || len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			g.MarkIncomplete()
			st.Duration = time.Since(start)
			return st, fmt.Errorf("%w after %d of %d cells: %w", maze.ErrIncompleteGeneration, visited, total, err)
		}

		if len(stack) == 0 {
			// Unreachable on a rectangular grid; counted so tests can prove it.
			seed, ok := firstUnvisited(g)
			if !ok {
				break
			}
			if err := g.MarkVisited(seed); err != nil {
				return st, err
			}
			stack = append(stack, seed)
			visited++
			st.Reseeds++
		}

		current := stack[len(stack)-1]
		candidates, err := unvisitedNeighbors(g, current)
		if err != nil {
			return st, err
		}

		if len(candidates) > 0 {
			next := candidates[rng.Intn(len(candidates))]
			if err := g.OpenWall(current, next); err != nil {
				return st, err
			}
			if err := g.MarkVisited(next); err != nil {
				return st, err
			}
			stack = append(stack, next)
			visited++
			st.Carved++
			current = next
		} else {
			stack = stack[:len(stack)-1]
			st.Backtracks++
		}

		sinceNotify++
		if sinceNotify >= interval || len(stack) == 0 {
			observer.OnProgress(maze.Progress{
				Phase:   maze.PhaseGenerate,
				Grid:    g,
				Current: current,
				Done:    visited,
				Total:   total,
				Last:    len(stack) == 0 && visited == total,
			})
			st.Notifications++
			sinceNotify = 0
		}
	}

	st.Duration = time.Since(start)
	return st, nil
}

// unvisitedNeighbors returns the geometric neighbors of pos the carve has not reached.
func unvisitedNeighbors(g *maze.Grid, pos maze.CellPosition) ([]maze.CellPosition, error) {
	neighbors, err := g.Neighbors(pos)
	if err != nil {
		return nil, err
	}

	result := neighbors[:0]
	for _, n := range neighbors {
		if !g.Visited(n) {
			result = append(result, n)
		}
	}
	return result, nil
}

// firstUnvisited scans g in row-major order for a cell the carve has not reached.
func firstUnvisited(g *maze.Grid) (maze.CellPosition, bool) {
	for i := 0; i < g.Size(); i++ {
		if p := g.Position(i); !g.Visited(p) {
			return p, true
		}
	}
	return maze.CellPosition{}, false
}

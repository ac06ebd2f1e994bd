package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/beka-birhanu/vinom-maze/generator"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func carvedGrid(t *testing.T, rows, cols int, seed int64) *maze.Grid {
	t.Helper()
	g, err := maze.New(rows, cols)
	require.NoError(t, err)
	_, err = generator.Carve(context.Background(), g, rand.New(rand.NewSource(seed)), nil)
	require.NoError(t, err)
	return g
}

// treeDistances returns the edge count from root to every cell, walking open walls depth-first.
func treeDistances(t *testing.T, g *maze.Grid, root maze.CellPosition) map[maze.CellPosition]int {
	t.Helper()
	dist := map[maze.CellPosition]int{root: 0}
	stack := []maze.CellPosition{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		neighbors, err := g.ConnectedNeighbors(cur)
		require.NoError(t, err)
		for _, n := range neighbors {
			if _, seen := dist[n]; !seen {
				dist[n] = dist[cur] + 1
				stack = append(stack, n)
			}
		}
	}
	return dist
}

func TestFindPathAllPairs(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		g := carvedGrid(t, 5, 6, seed)

		for i := 0; i < g.Size(); i++ {
			start := g.Position(i)
			dist := treeDistances(t, g, start)
			require.Len(t, dist, g.Size())

			for j := 0; j < g.Size(); j++ {
				goal := g.Position(j)
				path, err := FindPath(g, start, goal, nil)
				require.NoError(t, err, "%v -> %v", start, goal)

				assert.Equal(t, start, path[0])
				assert.Equal(t, goal, path[len(path)-1])
				assert.True(t, path.Valid(g))
				assert.Equal(t, dist[goal], path.Moves())
			}
		}
	}
}

func TestFindPathDeterministic(t *testing.T) {
	g := carvedGrid(t, 20, 20, 99)
	start := maze.CellPosition{Row: 0, Col: 0}
	goal := maze.CellPosition{Row: 19, Col: 19}

	first, err := FindPath(g, start, goal, nil)
	require.NoError(t, err)
	second, err := FindPath(g, start, goal, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindPathSingleCell(t *testing.T) {
	g := carvedGrid(t, 1, 1, 1)
	origin := maze.CellPosition{}

	path, err := FindPath(g, origin, origin, nil)
	require.NoError(t, err)
	assert.Equal(t, maze.Path{origin}, path)
	assert.Zero(t, path.Moves())
}

func TestFindPathTwoByTwo(t *testing.T) {
	lengths := map[int]bool{}
	for seed := int64(0); seed < 40; seed++ {
		g := carvedGrid(t, 2, 2, seed)
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				if i == j {
					continue
				}
				path, err := FindPath(g, g.Position(i), g.Position(j), nil)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, path.Moves(), 1)
				assert.LessOrEqual(t, path.Moves(), 3)
				lengths[path.Moves()] = true
			}
		}
	}
	assert.Len(t, lengths, 3)
}

func TestFindPathErrors(t *testing.T) {
	t.Run("Disconnected grid", func(t *testing.T) {
		g, err := maze.New(2, 2)
		require.NoError(t, err)
		require.NoError(t, g.OpenWall(maze.CellPosition{Row: 0, Col: 0}, maze.CellPosition{Row: 0, Col: 1}))

		path, err := FindPath(g, maze.CellPosition{Row: 0, Col: 0}, maze.CellPosition{Row: 1, Col: 1}, nil)
		assert.ErrorIs(t, err, maze.ErrNoPathFound)
		assert.Nil(t, path)
	})

	t.Run("Out of bounds", func(t *testing.T) {
		g := carvedGrid(t, 3, 3, 1)
		_, err := FindPath(g, maze.CellPosition{Row: -1, Col: 0}, maze.CellPosition{}, nil)
		assert.ErrorIs(t, err, maze.ErrOutOfBounds)
		_, err = FindPath(g, maze.CellPosition{}, maze.CellPosition{Row: 3, Col: 3}, nil)
		assert.ErrorIs(t, err, maze.ErrInvalidOperation)
	})
}

func TestFindPathObserver(t *testing.T) {
	g := carvedGrid(t, 8, 8, 5)
	start := maze.CellPosition{Row: 0, Col: 0}
	goal := maze.CellPosition{Row: 7, Col: 7}

	var seen []maze.CellPosition
	last := 0
	path, err := FindPath(g, start, goal, maze.ObserverFunc(func(p maze.Progress) {
		assert.Equal(t, maze.PhaseSolve, p.Phase)
		assert.Equal(t, len(seen)+1, p.Done)
		assert.True(t, g.Explored(p.Current))
		seen = append(seen, p.Current)
		if p.Last {
			last++
		}
	}))
	require.NoError(t, err)

	assert.Equal(t, start, seen[0])
	assert.Equal(t, 1, last)
	assert.LessOrEqual(t, len(seen), g.Size())
	// The goal is found as a neighbor, so the cell before it is the last one dequeued.
	assert.Equal(t, path[len(path)-2], seen[len(seen)-1])
}

func TestFindPathLeavesSearchState(t *testing.T) {
	g := carvedGrid(t, 4, 4, 11)
	start := maze.CellPosition{Row: 0, Col: 0}
	goal := maze.CellPosition{Row: 3, Col: 3}

	path, err := FindPath(g, start, goal, nil)
	require.NoError(t, err)
	for _, p := range path {
		assert.True(t, g.Explored(p))
	}

	// A second search from the goal starts from clean state.
	back, err := FindPath(g, goal, start, nil)
	require.NoError(t, err)
	assert.Equal(t, path.Moves(), back.Moves())
	_, hasParent := g.Parent(goal)
	assert.False(t, hasParent)
}

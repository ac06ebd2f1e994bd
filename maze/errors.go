package maze

import (
	"errors"
	"fmt"
)

// Maze errors. Callers match them with errors.Is.
var (
	// ErrInvalidOperation reports a request that breaks grid adjacency or bounds.
	ErrInvalidOperation = errors.New("invalid maze operation")
	// ErrOutOfBounds is an ErrInvalidOperation for coordinates outside the grid.
	ErrOutOfBounds = fmt.Errorf("%w: cell out of bounds", ErrInvalidOperation)
	// ErrNotAdjacent is an ErrInvalidOperation for a wall between non-neighbors.
	ErrNotAdjacent = fmt.Errorf("%w: cells are not neighbors", ErrInvalidOperation)
	// ErrInvalidDimensions is returned when a grid is requested with non-positive size.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")

	// ErrNoPathFound is returned when the goal cannot be reached from the start.
	ErrNoPathFound = errors.New("no path found")
	// ErrIncompleteGeneration marks a carve that stopped before covering every cell.
	ErrIncompleteGeneration = errors.New("maze generation incomplete")
	// ErrNotSpanningTree is returned by VerifySpanningTree for a malformed carving.
	ErrNotSpanningTree = errors.New("maze is not a spanning tree")
)

// Package pursuit moves maze obstacles toward a target one cell at a time.
package pursuit

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Agent is a greedy pursuer. Each Step looks only at the cells reachable through
// an open wall and picks the one closest to the target by Manhattan distance,
// breaking ties at random. It keeps no memory between steps, so it can stall in
// dead ends that are close to the target as the crow flies.
type Agent struct {
	rng *rand.Rand
}

// New creates an agent that breaks ties with rng. A nil rng is replaced by a
// clock-seeded source.
func New(rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent{rng: rng}
}

// Step returns the cell the agent should occupy next. An agent with no open wall
// around it stays where it is.
func (a *Agent) Step(g *maze.Grid, agent, target maze.CellPosition) (maze.CellPosition, error) {
	if !g.InBound(target.Row, target.Col) {
		return agent, fmt.Errorf("%w: target %v", maze.ErrOutOfBounds, target)
	}
	neighbors, err := g.ConnectedNeighbors(agent)
	if err != nil {
		return agent, err
	}
	if len(neighbors) == 0 {
		return agent, nil
	}

	best := make([]maze.CellPosition, 0, len(neighbors))
	bestDist := -1
	for _, n := range neighbors {
		d := n.Manhattan(target)
		switch {
		case bestDist < 0 || d < bestDist:
			bestDist = d
			best = append(best[:0], n)
		case d == bestDist:
			best = append(best, n)
		}
	}

	if len(best) == 1 {
		return best[0], nil
	}
	return best[a.rng.Intn(len(best))], nil
}

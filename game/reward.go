package game

import (
	"errors"
	"math/rand"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// ErrInvalidRewardModel is returned for negative rewards or a probability outside [0, 1].
var ErrInvalidRewardModel = errors.New("invalid reward model")

// RewardModel defines the reward configuration for a maze.
// RewardOne and RewardTwo represent two possible reward values
// that can be assigned to maze cells.
// RewardTypeProb determines the base probability of assigning RewardOne
// over RewardTwo, adjusted dynamically based on cell location.
type RewardModel struct {
	RewardOne      int     // Value of the first reward type
	RewardTwo      int     // Value of the second reward type
	RewardTypeProb float64 // Base probability of RewardOne (0.0 to 1.0)
}

// Validate rejects probabilities outside [0, 1] and negative rewards.
func (r RewardModel) Validate() error {
	if r.RewardTypeProb > 1 || r.RewardTypeProb < 0 || min(r.RewardOne, r.RewardTwo) < 0 {
		return ErrInvalidRewardModel
	}
	return nil
}

// populateRewards assigns a reward to every cell of a rows x cols grid.
// The probability of assigning RewardTwo decreases as cells are closer
// to the center of the maze.
func populateRewards(r RewardModel, rows, cols int, rng *rand.Rand) map[maze.CellPosition]int {
	rewards := make(map[maze.CellPosition]int, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := maze.CellPosition{Row: row, Col: col}
			reward := r.RewardOne
			if rng.Float64() > calcProb(r.RewardTypeProb, cell, rows, cols) {
				reward = r.RewardTwo
			}
			if reward != 0 {
				rewards[cell] = reward
			}
		}
	}
	return rewards
}

// calcProb calculates the adjusted probability of assigning RewardOne
// based on the cell's Manhattan distance from the center of the maze.
// Cells further from the center keep a probability closer to p.
func calcProb(p float64, cell maze.CellPosition, rows, cols int) float64 {
	mid := maze.CellPosition{Row: rows / 2, Col: cols / 2}
	maxDist := float64(mid.Row + mid.Col)
	if maxDist == 0 {
		return p
	}

	// Normalize the distance and invert it
	normalizedDist := 1.0 - float64(cell.Manhattan(mid))/maxDist

	return p + (1-p)*normalizedDist/10
}

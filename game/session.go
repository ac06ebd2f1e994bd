// Package game hosts a single-player maze run: a player walking to the goal
// corner while pursuers chase it, with rewards to collect on the way.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/beka-birhanu/vinom-maze/generator"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/pursuit"
	"github.com/beka-birhanu/vinom-maze/solver"
	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"
)

// Game-related errors.
var (
	ErrNotBigEnoughDimension = errors.New("dimension is not big enough")
	ErrTooManyPursuers       = errors.New("too many pursuers")
	ErrInvalidInterval       = errors.New("pursuit interval must be positive")
	ErrInvalidMove           = errors.New("invalid move request")
	ErrNotRunning            = errors.New("game is not running")
	ErrNotGenerated          = errors.New("maze has not been generated")
	ErrNilRandom             = errors.New("random source must not be nil")
)

const (
	minDimension = 2 // Minimum maze dimension (rows or cols).
	maxPursuers  = 8 // Maximum number of pursuers.
)

// Status is the state of a session.
type Status int

const (
	StatusIdle    Status = iota // No playable maze yet
	StatusRunning               // Player still moving
	StatusWon                   // Player reached the goal
	StatusLost                  // A pursuer reached the player
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Logger is the logging surface a session needs.
type Logger interface {
	Debug(string)
	Info(string)
	Warn(string)
	Error(string)
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}

// Options configures a session.
type Options struct {
	Rows            int         // Maze rows
	Cols            int         // Maze columns
	PursuerCount    int         // Pursuers spawned per maze
	PursuitInterval int         // Pursuers step once every PursuitInterval ticks
	Rewards         RewardModel // Reward distribution
}

// Pursuer is an obstacle chasing the player.
type Pursuer struct {
	ID  uuid.UUID
	Pos maze.CellPosition
}

// State is a read-only copy of a session for presentation.
type State struct {
	ID          uuid.UUID
	Version     int64
	Tick        int
	Status      Status
	Rows        int
	Cols        int
	Player      maze.CellPosition
	LastMove    *maze.Move
	Goal        maze.CellPosition
	Pursuers    []Pursuer
	Score       int
	RewardsLeft int
}

// Session owns one maze and everything moving inside it.
// Methods are safe for concurrent use.
type Session struct {
	ID       uuid.UUID                 // Session identifier.
	opts     Options                   // Immutable configuration.
	grid     *maze.Grid                // The maze; outlives every regeneration.
	rng      *rand.Rand                // Drives carving, spawning, rewards and tie breaks.
	agent    *pursuit.Agent            // Shared pursuit policy.
	logger   Logger                    // Lifecycle logging.
	player   maze.CellPosition         // Player position.
	lastMove *maze.Move                // Player's latest accepted move, nil after regeneration.
	goal     maze.CellPosition         // Cell the player must reach.
	pursuers []Pursuer                 // Active pursuers.
	rewards  map[maze.CellPosition]int // Uncollected rewards.
	score    int                       // Rewards collected so far.
	tick     int                       // Ticks since the maze was generated.
	version  int64                     // Bumped on every state change.
	status   Status                    // Current game status.
	sync.RWMutex
}

// NewSession validates opts and allocates the maze grid. Call Regenerate before playing.
// A nil logger discards all output.
func NewSession(opts Options, rng *rand.Rand, logger Logger) (*Session, error) {
	if opts.Rows < minDimension || opts.Cols < minDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotBigEnoughDimension, opts.Rows, opts.Cols)
	}
	if opts.PursuerCount < 0 || opts.PursuerCount > maxPursuers {
		return nil, fmt.Errorf("%w: %d", ErrTooManyPursuers, opts.PursuerCount)
	}
	if opts.PursuitInterval < 1 {
		return nil, ErrInvalidInterval
	}
	if rng == nil {
		return nil, ErrNilRandom
	}
	if err := opts.Rewards.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = nopLogger{}
	}

	grid, err := maze.New(opts.Rows, opts.Cols)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:      uuid.New(),
		opts:    opts,
		grid:    grid,
		rng:     rng,
		agent:   pursuit.New(rng),
		logger:  logger,
		rewards: map[maze.CellPosition]int{},
	}, nil
}

// Regenerate carves a new maze and restarts the game on it.
// observer runs while the session lock is held; it may read Progress.Grid but
// must not call back into the session.
func (s *Session) Regenerate(ctx context.Context, observer maze.ProgressObserver) error {
	s.Lock()
	defer s.Unlock()

	s.status = StatusIdle
	s.version++

	st, err := generator.Carve(ctx, s.grid, s.rng, observer)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Generating maze: %v", err))
		return err
	}
	if err := maze.VerifySpanningTree(s.grid); err != nil {
		s.logger.Error(fmt.Sprintf("Verifying maze: %v", err))
		return err
	}

	s.player = maze.CellPosition{Row: 0, Col: 0}
	s.goal = maze.CellPosition{Row: s.grid.Rows() - 1, Col: s.grid.Cols() - 1}

	pursuers, err := s.spawnPursuers()
	if err != nil {
		s.logger.Error(fmt.Sprintf("Spawning pursuers: %v", err))
		return err
	}
	s.pursuers = pursuers

	s.rewards = populateRewards(s.opts.Rewards, s.grid.Rows(), s.grid.Cols(), s.rng)
	delete(s.rewards, s.player)

	s.lastMove = nil
	s.score = 0
	s.tick = 0
	s.status = StatusRunning

	s.logger.Info(fmt.Sprintf("Maze %dx%d generated in %v: %d walls open, %d pursuers",
		s.grid.Rows(), s.grid.Cols(), st.Duration, s.grid.OpenWallCount(), len(s.pursuers)))
	return nil
}

// spawnPursuers places pursuers on distinct cells away from the start, its
// open neighbors and the goal.
func (s *Session) spawnPursuers() ([]Pursuer, error) {
	avoid := mapset.New[maze.CellPosition]()
	avoid.Put(s.player)
	avoid.Put(s.goal)
	near, err := s.grid.ConnectedNeighbors(s.player)
	if err != nil {
		return nil, err
	}
	for _, n := range near {
		avoid.Put(n)
	}

	candidates := make([]maze.CellPosition, 0, s.grid.Size())
	for i := 0; i < s.grid.Size(); i++ {
		if p := s.grid.Position(i); !avoid.Has(p) {
			candidates = append(candidates, p)
		}
	}

	pursuers := make([]Pursuer, 0, s.opts.PursuerCount)
	for len(pursuers) < s.opts.PursuerCount {
		if len(candidates) == 0 {
			return nil, fmt.Errorf("%w: no free cell for pursuer %d", ErrTooManyPursuers, len(pursuers)+1)
		}
		i := s.rng.Intn(len(candidates))
		pursuers = append(pursuers, Pursuer{ID: uuid.New(), Pos: candidates[i]})
		candidates[i] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}
	return pursuers, nil
}

// Move moves the player one cell in direction d and returns the reward collected there.
func (s *Session) Move(d maze.Direction) (int, error) {
	s.Lock()
	defer s.Unlock()

	if s.status != StatusRunning {
		return 0, fmt.Errorf("%w: %v", ErrNotRunning, s.status)
	}

	to := s.player.Step(d)
	if !s.grid.IsOpen(s.player, to) {
		return 0, fmt.Errorf("%w: %v from %v", ErrInvalidMove, d, s.player)
	}

	move := maze.Move{From: s.player, To: to, Direction: d}
	s.player = to
	s.lastMove = &move
	reward := s.rewards[to]
	delete(s.rewards, to)
	s.score += reward
	s.version++
	s.logger.Debug(fmt.Sprintf("Player moved %v from %v to %v, reward %d", move.Direction, move.From, move.To, reward))

	s.resolve()
	return reward, nil
}

// Tick advances the game clock. Pursuers step on every PursuitInterval-th tick.
func (s *Session) Tick() Status {
	s.Lock()
	defer s.Unlock()

	if s.status != StatusRunning {
		return s.status
	}

	s.tick++
	if s.tick%s.opts.PursuitInterval == 0 {
		for i := range s.pursuers {
			next, err := s.agent.Step(s.grid, s.pursuers[i].Pos, s.player)
			if err != nil {
				s.logger.Error(fmt.Sprintf("Pursuer %s step: %v", s.pursuers[i].ID, err))
				continue
			}
			s.pursuers[i].Pos = next
		}
		s.version++
	}

	s.resolve()
	return s.status
}

// resolve settles the game once a pursuer reaches the player or the player
// reaches the goal. Being caught on the goal cell counts as a loss.
func (s *Session) resolve() {
	for _, p := range s.pursuers {
		if p.Pos == s.player {
			s.status = StatusLost
			s.logger.Info(fmt.Sprintf("Pursuer %s caught the player at %v on tick %d", p.ID, s.player, s.tick))
			return
		}
	}
	if s.player == s.goal {
		s.status = StatusWon
		s.logger.Info(fmt.Sprintf("Player reached the goal on tick %d with score %d", s.tick, s.score))
	}
}

// Solution returns the path from the player's cell to the goal.
func (s *Session) Solution() (maze.Path, error) {
	s.Lock()
	defer s.Unlock()
	return s.solution()
}

// solution runs the solver; the caller holds the write lock since the search
// marks the grid.
func (s *Session) solution() (maze.Path, error) {
	if s.status == StatusIdle {
		return nil, ErrNotGenerated
	}
	return solver.FindPath(s.grid, s.player, s.goal, nil)
}

// NextDirection returns the direction of the first step along Solution.
func (s *Session) NextDirection() (maze.Direction, error) {
	s.Lock()
	defer s.Unlock()

	path, err := s.solution()
	if err != nil {
		return 0, err
	}
	if len(path) < 2 {
		return 0, fmt.Errorf("%w: player is on the goal", ErrInvalidMove)
	}
	return s.grid.DirectionBetween(path[0], path[1])
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.RLock()
	defer s.RUnlock()

	return State{
		ID:          s.ID,
		Version:     s.version,
		Tick:        s.tick,
		Status:      s.status,
		Rows:        s.grid.Rows(),
		Cols:        s.grid.Cols(),
		Player:      s.player,
		LastMove:    s.lastMove,
		Goal:        s.goal,
		Pursuers:    slices.Clone(s.pursuers),
		Score:       s.score,
		RewardsLeft: len(s.rewards),
	}
}

// Render draws the maze with the player (P), goal (G), pursuers (M) and an
// optional path (.) overlaid.
func (s *Session) Render(path maze.Path) string {
	s.RLock()
	defer s.RUnlock()

	marks := maze.PathMarks(path, '.')
	if s.status != StatusIdle {
		marks[s.goal] = 'G'
		marks[s.player] = 'P'
		for _, p := range s.pursuers {
			marks[p.Pos] = 'M'
		}
	}
	return s.grid.Render(marks)
}

package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/akamensky/argparse"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// runOptions holds the effective settings after flags override config.Envs.
type runOptions struct {
	rows            int
	cols            int
	seed            int64
	pursuers        int
	pursuitInterval int
	playerInterval  int
	maxTicks        int
	watch           bool
	logLevel        string
}

// Global variables for dependencies
var (
	opts       runOptions
	appLogger  *logger.Logger
	gameLogger *logger.Logger
	genLogger  *logger.Logger
	playLogger *logger.Logger
	session    *game.Session
)

func initFlags() {
	parser := argparse.NewParser("vinom-maze", "Generate, solve and play a maze with pursuers, headless")

	rows := parser.Int("r", "rows", &argparse.Options{Default: config.Envs.Rows, Help: "maze rows"})
	cols := parser.Int("c", "cols", &argparse.Options{Default: config.Envs.Cols, Help: "maze columns"})
	seed := parser.Int("s", "seed", &argparse.Options{Default: int(config.Envs.Seed), Help: "random seed, 0 for clock based"})
	pursuers := parser.Int("p", "pursuers", &argparse.Options{Default: config.Envs.PursuerCount, Help: "number of pursuers"})
	pursuitInterval := parser.Int("i", "pursuit-interval", &argparse.Options{Default: config.Envs.PursuitInterval, Help: "ticks between pursuer steps"})
	playerInterval := parser.Int("y", "player-interval", &argparse.Options{Default: config.Envs.PlayerInterval, Help: "ticks between player steps"})
	maxTicks := parser.Int("t", "max-ticks", &argparse.Options{Default: config.Envs.MaxTicks, Help: "tick budget"})
	watch := parser.Flag("w", "watch", &argparse.Options{Help: "print the maze while it is carved"})
	logLevel := parser.String("l", "log-level", &argparse.Options{Default: config.Envs.LogLevel, Help: "debug|info|warn|error"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Fprint(os.Stderr, parser.Usage(err))
		os.Exit(1)
	}

	opts = runOptions{
		rows:            *rows,
		cols:            *cols,
		seed:            int64(*seed),
		pursuers:        *pursuers,
		pursuitInterval: *pursuitInterval,
		playerInterval:  max(1, *playerInterval),
		maxTicks:        *maxTicks,
		watch:           *watch,
		logLevel:        *logLevel,
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
}

func initLoggers() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}

	gameLogger, err = logger.New("GAME", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game logger: %v", err))
		os.Exit(1)
	}

	genLogger, err = logger.New("GEN", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator logger: %v", err))
		os.Exit(1)
	}

	playLogger, err = logger.New("PLAY", config.ColorYellow, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating play logger: %v", err))
		os.Exit(1)
	}

	for _, l := range []*logger.Logger{appLogger, gameLogger, genLogger, playLogger} {
		if err := l.SetLevel(opts.logLevel); err != nil {
			appLogger.Warn(fmt.Sprintf("Keeping info level: %v", err))
		}
	}
}

func initSession() {
	var err error
	session, err = game.NewSession(game.Options{
		Rows:            opts.rows,
		Cols:            opts.cols,
		PursuerCount:    opts.pursuers,
		PursuitInterval: opts.pursuitInterval,
		Rewards: game.RewardModel{
			RewardOne:      config.Envs.RewardOne,
			RewardTwo:      config.Envs.RewardTwo,
			RewardTypeProb: config.Envs.RewardProb,
		},
	}, rand.New(rand.NewSource(opts.seed)), gameLogger.With("seed", opts.seed))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game session: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Session %s initialized", session.ID))
}

func generate(ctx context.Context) {
	var observer maze.ProgressObserver
	if opts.watch {
		observer = maze.ObserverFunc(func(p maze.Progress) {
			genLogger.Info(fmt.Sprintf("Carving %d/%d at %v", p.Done, p.Total, p.Current))
			fmt.Print(p.Grid.Render(map[maze.CellPosition]byte{p.Current: '*'}))
		})
	}

	if err := session.Regenerate(ctx, observer); err != nil {
		appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}
}

func printSolution() {
	path, err := session.Solution()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Solving maze: %v", err))
		os.Exit(1)
	}
	fmt.Print(session.Render(path))
	appLogger.Info(fmt.Sprintf("Solution from start to goal takes %d moves", path.Moves()))
}

// play walks the player along the current solution while pursuers chase it.
func play() {
	for tick := 1; tick <= opts.maxTicks; tick++ {
		if tick%opts.playerInterval == 0 {
			d, err := session.NextDirection()
			if err != nil {
				playLogger.Error(fmt.Sprintf("Planning move: %v", err))
				break
			}
			reward, err := session.Move(d)
			if err != nil {
				playLogger.Error(fmt.Sprintf("Moving %v: %v", d, err))
				break
			}
			if reward > 0 {
				playLogger.Debug(fmt.Sprintf("Collected %d on tick %d", reward, tick))
			}
		}
		if status := session.Tick(); status != game.StatusRunning {
			break
		}
	}

	st := session.Snapshot()
	fmt.Print(session.Render(nil))
	appLogger.Info(fmt.Sprintf("Game %s after %d ticks: score=%d rewards_left=%d", st.Status, st.Tick, st.Score, st.RewardsLeft))
}

func main() {
	initFlags()
	initLoggers()
	initSession()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel() // Ensure the context is always canceled

	generate(ctx)
	printSolution()
	play()
}

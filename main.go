package main

import (
	"checkers/engine"
	"checkers/experiments"
	"checkers/game"
	"checkers/meta"
	"checkers/searcher"
	"checkers/searcher/agent"
	"checkers/server"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	depth      int
	movetime   time.Duration
	goroutines int
	evaluate   string
	algorithm  string
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if err := run(os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

// run parses the command line and executes the selected mode. Deferred cleanup runs before
// main decides the exit code.
func run(args []string) error {
	flags := flag.NewFlagSet("checkers", flag.ContinueOnError)
	mode := flags.String("mode", "play", "What to run: play, serve or experiment")
	depth := flags.Int("depth", meta.DEFAULT_DEPTH, "Search depth below the root successors")
	movetime := flags.Duration("movetime", 0, "Time budget per move, 0 for none")
	goroutines := flags.Int("goroutines", meta.GO_ROUTINES, "Number of goroutines searching root successors")
	evaluate := flags.String("evaluate", "material", "Evaluation function: material or outcome")
	algorithm := flags.String("algorithm", "negamax", "Search formulation: negamax or minimax")
	position := flags.String("position", "", "Starting position, standard opening when empty")
	opponent := flags.String("opponent", "random", "Opponent in play mode: random or search")
	seed := flags.Uint64("seed", 1, "Seed of the random opponent")
	addr := flags.String("addr", ":8080", "Listen address in serve mode")
	configPath := flags.String("config", "experiment.yaml", "Experiment configuration file")
	logLevel := flags.String("log-level", "info", "Log level")
	if err := flags.Parse(args); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	zerolog.SetGlobalLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config{
		depth:      *depth,
		movetime:   *movetime,
		goroutines: *goroutines,
		evaluate:   *evaluate,
		algorithm:  *algorithm,
	}

	switch *mode {
	case "play":
		err = runPlay(ctx, cfg, *position, *opponent, *seed)
	case "serve":
		err = runServer(ctx, cfg, *addr)
	case "experiment":
		err = runExperiment(ctx, *configPath)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		return fmt.Errorf("%s failed: %w", *mode, err)
	}
	return nil
}

func runServer(ctx context.Context, cfg config, addr string) error {
	if cfg.depth > server.MaxDepth {
		return fmt.Errorf("depth %d exceeds the server limit of %d", cfg.depth, server.MaxDepth)
	}
	alphaBeta, err := createAlphaBeta(cfg)
	if err != nil {
		return err
	}
	return server.ListenAndServe(ctx, addr, server.NewRouter(alphaBeta, cfg.depth))
}

func runPlay(ctx context.Context, cfg config, position, opponent string, seed uint64) error {
	start := game.NewPosition()
	if position != "" {
		var err error
		if start, err = game.Parse(position); err != nil {
			return err
		}
	}

	alphaBeta, err := createAlphaBeta(cfg)
	if err != nil {
		return err
	}
	agents := []agent.Agent{agent.NewSearchAgent(alphaBeta, cfg.depth)}
	switch opponent {
	case "random":
		agents = append(agents, agent.NewRandomAgent(seed))
	case "search":
		agents = append(agents, agent.NewSearchAgent(alphaBeta, cfg.depth))
	default:
		return fmt.Errorf("unknown opponent %q", opponent)
	}

	output := termenv.NewOutput(os.Stdout)
	fmt.Fprint(os.Stdout, render(output, start))

	e := engine.NewLocalEngine(start, agents, meta.MAX_TURNS)
	e.OnMove = func(step int, state game.State) {
		p := state.(*game.Position)
		fmt.Fprintf(os.Stdout, "\n%d. %s plays %s\n", step, p.Next().Other(), p.LastMove())
		fmt.Fprint(os.Stdout, render(output, p))
	}

	winner, gameMetric, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	if winner == "" {
		winner = "nobody"
	}
	fmt.Fprintf(os.Stdout, "\n%s wins after %d moves (%s)\n", winner, gameMetric.TotalMoves, gameMetric.Duration.Round(time.Millisecond))
	return nil
}

func runExperiment(ctx context.Context, path string) error {
	config, err := experiments.LoadConfig(path)
	if err != nil {
		return err
	}
	dir, err := experiments.Run(ctx, config)
	if err != nil {
		return err
	}
	log.Info().Msgf("results written to %s", dir)
	return nil
}

func createAlphaBeta(cfg config) (*searcher.AlphaBeta, error) {
	evaluate, ok := game.Evaluators[cfg.evaluate]
	if !ok {
		return nil, fmt.Errorf("unknown evaluation %q", cfg.evaluate)
	}
	algorithm, err := searcher.ParseAlgorithm(cfg.algorithm)
	if err != nil {
		return nil, err
	}

	return searcher.NewAlphaBeta(
		searcher.WithEvaluationFn(evaluate),
		searcher.WithAlgorithm(algorithm),
		searcher.WithGoroutines(cfg.goroutines),
		searcher.WithDuration(cfg.movetime),
	), nil
}

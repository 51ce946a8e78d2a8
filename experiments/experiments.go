package experiments

import (
	"checkers/engine"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher/agent"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// scheduled is one game of a matchup waiting for a worker
type scheduled struct {
	id       int
	matchup  []int
	sequence int
}

// Run plays every matchup of the experiment and stores the agent configs, game records and move
// records as CSV files. It returns the directory holding them.
func Run(ctx context.Context, config Config) (string, error) {
	start := game.NewPosition()
	if config.Start != "" {
		var err error
		start, err = game.Parse(config.Start)
		if err != nil {
			return "", fmt.Errorf("experiment %s: %w", config.Name, err)
		}
	}

	log.Info().Msgf("starting %s experiment...", config.Name)

	var mu sync.Mutex
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	games := make(chan scheduled)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(games)
		count := 0
		for _, matchup := range config.Matchups {
			for i := 0; i < config.Games; i++ {
				count++
				select {
				case games <- scheduled{id: count, matchup: matchup, sequence: i + 1}:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
		return nil
	})

	for range config.Parallel {
		g.Go(func() error {
			for gm := range games {
				config1, config2 := config.agent(gm.matchup[0]), config.agent(gm.matchup[1])
				log.Info().Msgf("starting game %d (%d of %d) between agent1=%+v and agent2=%+v...", gm.id, gm.sequence, config.Games, config1, config2)

				winner, gameMetric, moveMetrics, err := runGame(ctx, start, config1, config2, config.MaxTurns)
				if err != nil {
					return fmt.Errorf("game %d: %w", gm.id, err)
				}

				mu.Lock()
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         gm.id,
					Agent1:     config1.ID,
					Agent2:     config2.ID,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       gm.id,
						MoveMetric: mm,
					})
				}
				mu.Unlock()

				log.Info().Msgf("completed game %d with winner: %q", gm.id, winner)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	log.Info().Msgf("completed %s experiment", config.Name)

	// Parallel games finish out of order
	slices.SortFunc(gameRecords, func(a, b metrics.GameRecord) int { return a.ID - b.ID })
	slices.SortStableFunc(moveRecords, func(a, b metrics.MoveRecord) int { return a.Game - b.Game })

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(config.Agents)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(ctx context.Context, start game.State, config1, config2 metrics.AgentConfig, maxTurns int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := agent.FromConfig(config1)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	agent2, err := agent.FromConfig(config2)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine(start, []agent.Agent{agent1, agent2}, maxTurns)
	return e.Run(ctx)
}

package engine

import (
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/searcher/agent"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type LocalEngine struct {
	State    game.State
	Agents   []agent.Agent // Agents[0] plays the first move
	MaxTurns int
	OnMove   func(step int, state game.State) // Called after every accepted move, may be nil
}

func NewLocalEngine(start game.State, agents []agent.Agent, maxTurns int) *LocalEngine {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}
	if maxTurns <= 0 || maxTurns > MaxMoves {
		maxTurns = MaxMoves
	}

	return &LocalEngine{
		State:    start,
		Agents:   agents,
		MaxTurns: maxTurns,
	}
}

// Run executes the game loop until the game ends or MaxTurns moves were played.
func (e *LocalEngine) Run(ctx context.Context) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.State.Player())

	step := 0
	for !e.State.IsTerminal() && step < e.MaxTurns {
		player := e.State.Player()
		if err := ctx.Err(); err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("turn %d (%s): game interrupted: %w", step+1, player, err)
		}

		candidate, searchMetric, err := e.Agents[step%2].FindMove(ctx, e.State)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("turn %d (%s): %w", step+1, player, err)
		}

		// Remote agents hand back a rebuilt state; keep our own successor instead
		next, ok := lo.Find(e.State.Successors(), func(s game.State) bool {
			return candidate != nil && s.Hash() == candidate.Hash()
		})
		if !ok {
			return "", gameMetric, moveMetrics, fmt.Errorf("%w: turn %d (%s)", ErrIllegalMove, step+1, player)
		}

		step++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         describe(next),
			SearchMetric: searchMetric,
		})
		log.Debug().Int("step", step).Str("player", player).Str("move", describe(next)).Msg("move played")

		e.State = next
		if e.OnMove != nil {
			e.OnMove(step, next)
		}
	}

	winner := e.State.Winner()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = winner
	gameMetric.TotalMoves = step

	if winner != "" {
		log.Info().Msgf("game ended after %d moves, winner: %s", step, winner)
	} else {
		log.Info().Msgf("game ended after %d moves without a winner", step)
	}

	return winner, gameMetric, moveMetrics, nil
}

func describe(state game.State) string {
	if p, ok := state.(interface{ LastMove() game.Move }); ok {
		return p.LastMove().String()
	}
	return ""
}

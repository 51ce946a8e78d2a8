package engine

import (
	"bytes"
	"checkers/experiments/metrics"
	"checkers/game"
	"checkers/server"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// RemoteAgent asks an agent server (see package server) for its moves.
type RemoteAgent struct {
	URL    string
	Depth  int
	Client *http.Client // http.DefaultClient when nil
}

func (a RemoteAgent) FindMove(ctx context.Context, state game.State) (game.State, metrics.SearchMetric, error) {
	position, ok := state.(*game.Position)
	if !ok {
		return nil, metrics.SearchMetric{}, fmt.Errorf("remote agent: unexpected state type %T", state)
	}

	depth := a.Depth
	bodyBytes, err := json.Marshal(server.FindMoveRequest{Position: position.String(), Depth: &depth})
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("remote agent: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.URL+"/findmove", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("remote agent: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("remote agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return nil, metrics.SearchMetric{}, fmt.Errorf("remote agent: status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var move server.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("remote agent: %w", err)
	}
	next, err := game.Parse(move.Position)
	if err != nil {
		return nil, metrics.SearchMetric{}, fmt.Errorf("remote agent: %w", err)
	}

	return next, metrics.SearchMetric{
		Depth:     depth,
		Evaluated: move.Evaluated,
		Nodes:     move.Nodes,
		Stopped:   move.Stopped,
	}, nil
}

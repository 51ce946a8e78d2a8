package experiments

import (
	"checkers/meta"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config, err := ParseConfig([]byte(`
agents:
  - id: 1
    kind: search
    depth: 4
    duration: 250ms
  - id: 2
    kind: random
    seed: 3
matchups:
  - [1, 2]
  - [2, 1]
`))

		require.NoError(t, err)
		require.Equal(t, "experiment", config.Name)
		require.Equal(t, meta.GAMES, config.Games)
		require.Equal(t, meta.MAX_TURNS, config.MaxTurns)
		require.Equal(t, 1, config.Parallel)
		require.Len(t, config.Agents, 2)
		require.Equal(t, 250*time.Millisecond, config.Agents[0].Duration)
		require.Equal(t, uint64(3), config.Agents[1].Seed)
		require.Equal(t, [][]int{{1, 2}, {2, 1}}, config.Matchups)
		require.Equal(t, 4, config.agent(1).Depth)
	})

	t.Run("invalid configs", func(t *testing.T) {
		for name, data := range map[string]string{
			"no agents":         `name: empty`,
			"duplicate ids":     "agents: [{id: 1}, {id: 1}]",
			"unknown agent":     "agents: [{id: 1}]\nmatchups: [[1, 2]]",
			"three agents":      "agents: [{id: 1}, {id: 2}, {id: 3}]\nmatchups: [[1, 2, 3]]",
			"no games":          "games: 0\nagents: [{id: 1}]",
			"negative parallel": "parallel: -1\nagents: [{id: 1}]",
			"not yaml":          "agents: [",
		} {
			_, err := ParseConfig([]byte(data))
			require.Error(t, err, name)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})
}

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	output := t.TempDir()
	require.NoError(t, os.WriteFile(path, []byte(`
name: smoke
output: `+output+`
games: 2
max_turns: 12
parallel: 2
agents:
  - id: 1
    kind: search
    depth: 1
  - id: 2
    kind: random
    seed: 8
matchups:
  - [1, 2]
  - [2, 1]
`), 0644))
	config, err := LoadConfig(path)
	require.NoError(t, err)

	dir, err := Run(context.Background(), config)

	require.NoError(t, err)
	require.Equal(t, filepath.Join(output, "smoke"), filepath.Dir(dir))

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 5, "Header plus one row per game")
	for i, row := range games[1:] {
		require.Equal(t, []string{"1", "2", "3", "4"}[i], row[0], "Game records should be ordered by id")
	}
	require.Equal(t, []string{"1", "2"}, games[1][1:3])
	require.Equal(t, []string{"2", "1"}, games[3][1:3])

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Len(t, moves, 1+4*12, "Every game should reach the turn limit")
	require.Equal(t, "1", moves[1][0])
	require.Equal(t, "1", moves[1][1])

	agents := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, agents, 3)
}

func TestRunBadStart(t *testing.T) {
	config, err := ParseConfig([]byte("start: nonsense\nagents: [{id: 1}]"))
	require.NoError(t, err)

	_, err = Run(context.Background(), config)
	require.Error(t, err)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

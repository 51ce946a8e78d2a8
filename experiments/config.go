package experiments

import (
	"checkers/experiments/metrics"
	"checkers/meta"
	"fmt"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Config describes an experiment: the agents taking part and which of them play each other.
type Config struct {
	Name     string                `yaml:"name"`
	Output   string                `yaml:"output"`
	Games    int                   `yaml:"games"` // Per matchup
	MaxTurns int                   `yaml:"max_turns"`
	Parallel int                   `yaml:"parallel"` // Games played at the same time
	Start    string                `yaml:"start"`    // Starting position, standard opening when empty
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"` // Pairs of agent IDs, first one moves first
}

// LoadConfig reads a YAML experiment file and fills in defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (Config, error) {
	config := Config{ // Default values
		Name:     "experiment",
		Output:   "experiments",
		Games:    meta.GAMES,
		MaxTurns: meta.MAX_TURNS,
		Parallel: 1,
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	return config, config.validate()
}

func (c Config) validate() error {
	if len(c.Agents) == 0 {
		return fmt.Errorf("experiment %s: no agents", c.Name)
	}
	if c.Games <= 0 || c.Parallel <= 0 {
		return fmt.Errorf("experiment %s: games and parallel must be positive", c.Name)
	}

	ids := lo.Map(c.Agents, func(a metrics.AgentConfig, _ int) int { return a.ID })
	if dups := lo.FindDuplicates(ids); len(dups) > 0 {
		return fmt.Errorf("experiment %s: duplicate agent ids %v", c.Name, dups)
	}
	for _, matchup := range c.Matchups {
		if len(matchup) != 2 {
			return fmt.Errorf("experiment %s: matchup %v must name two agents", c.Name, matchup)
		}
		for _, id := range matchup {
			if !lo.Contains(ids, id) {
				return fmt.Errorf("experiment %s: matchup references unknown agent %d", c.Name, id)
			}
		}
	}
	return nil
}

func (c Config) agent(id int) metrics.AgentConfig {
	config, _ := lo.Find(c.Agents, func(a metrics.AgentConfig) bool { return a.ID == id })
	return config
}

package experiments

import (
	"fmt"
	"mancala/config"
	"mancala/experiments/metrics"
	"mancala/game"
)

// RunOrderingExperiment pits a searcher with move ordering against the same
// searcher without it. At a fixed depth both play identically strong, so the
// records measure how many nodes ordering saves through earlier pruning.
func RunOrderingExperiment(cfg config.ExperimentConfig) ([]Standing, string, error) {
	if err := checkBounds(cfg); err != nil {
		return nil, "", err
	}
	if len(cfg.Heuristics) == 0 {
		return nil, "", fmt.Errorf("move ordering experiment needs a heuristic")
	}
	heuristic := cfg.Heuristics[0]
	if _, err := game.LookupWeights(heuristic); err != nil {
		return nil, "", err
	}

	ordered := metrics.AgentConfig{
		ID:        1,
		Heuristic: heuristic,
		Duration:  cfg.Duration.Std(),
		MinDepth:  cfg.MinDepth,
		MaxDepth:  cfg.MaxDepth,
		Ordering:  true,
	}
	unordered := ordered
	unordered.ID = 2
	unordered.Ordering = false
	configs := []metrics.AgentConfig{ordered, unordered}

	// Both sides, so neither agent profits from the first move
	matchUps := [][]metrics.AgentConfig{
		{ordered, unordered},
		{unordered, ordered},
	}

	return runExperiment(cfg.Dir(), "move_ordering", cfg.Games, configs, matchUps)
}

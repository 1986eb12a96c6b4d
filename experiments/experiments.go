package experiments

import (
	"fmt"
	"mancala/config"
	"mancala/engine"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"
	"mancala/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Standing is an agent's record over an experiment.
type Standing struct {
	Agent  metrics.AgentConfig
	Wins   int
	Losses int
	Ties   int
	Stones int // Stones stored over all games

	Searches int
	Nodes    int
	Pruned   int
}

// NodesPerSearch is the mean number of nodes visited per decision.
func (s Standing) NodesPerSearch() float64 {
	if s.Searches == 0 {
		return 0
	}
	return float64(s.Nodes) / float64(s.Searches)
}

func (s Standing) Points() float64 {
	return float64(s.Wins) + 0.5*float64(s.Ties)
}

// RunHeuristicTournament plays every pair of heuristics against each other,
// each taking both sides, and writes the records under cfg.Dir(). It returns
// the standings in agent order and the directory written to.
func RunHeuristicTournament(cfg config.ExperimentConfig) ([]Standing, string, error) {
	if err := checkBounds(cfg); err != nil {
		return nil, "", err
	}
	configs := make([]metrics.AgentConfig, 0, len(cfg.Heuristics))
	for i, name := range cfg.Heuristics {
		if _, err := game.LookupWeights(name); err != nil {
			return nil, "", err
		}
		configs = append(configs, metrics.AgentConfig{
			ID:        i + 1,
			Heuristic: name,
			Duration:  cfg.Duration.Std(),
			MinDepth:  cfg.MinDepth,
			MaxDepth:  cfg.MaxDepth,
			Ordering:  true,
		})
	}

	// Each pairing plays with both agents as player 1
	matchUps := [][]metrics.AgentConfig{}
	for i := range configs {
		for j := i + 1; j < len(configs); j++ {
			matchUps = append(matchUps,
				[]metrics.AgentConfig{configs[i], configs[j]},
				[]metrics.AgentConfig{configs[j], configs[i]},
			)
		}
	}

	return runExperiment(cfg.Dir(), "heuristic_tournament", cfg.Games, configs, matchUps)
}

// checkBounds rejects settings that leave a searcher without a duration or
// a depth to stop at.
func checkBounds(cfg config.ExperimentConfig) error {
	if cfg.Duration < 0 || cfg.MinDepth < 0 || cfg.MaxDepth < 0 {
		return fmt.Errorf("experiment duration and depths must not be negative")
	}
	if cfg.Duration == 0 && cfg.MaxDepth == 0 {
		return fmt.Errorf("experiment needs a duration or a max depth")
	}
	return nil
}

func runExperiment(root, name string, numGames int, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) ([]Standing, string, error) {
	if numGames < 1 {
		return nil, "", fmt.Errorf("%s experiment needs at least one game per matchup", name)
	}

	standings := make(map[int]*Standing, len(configs))
	for _, c := range configs {
		standings[c.ID] = &Standing{Agent: c}
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			result, gameMetric, moveMetrics := runGame(config1, config2)
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
				s := standings[matchup[mm.Player-1].ID]
				s.Searches++
				s.Nodes += mm.Nodes
				s.Pruned += mm.Pruned
			}
			record(standings[config1.ID], standings[config2.ID], result)

			log.Info().Msgf("completed matchup %d of %d game %d of %d: %s", mi+1, len(matchUps), i+1, numGames, result)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	dir, err := store(root, name, configs, gameRecords, moveRecords)
	if err != nil {
		return nil, "", err
	}

	table := make([]Standing, 0, len(configs))
	for _, c := range configs {
		s := *standings[c.ID]
		log.Info().Int("agent", c.ID).Str("heuristic", c.Heuristic).Int("wins", s.Wins).Int("losses", s.Losses).Int("ties", s.Ties).Float64("points", s.Points()).Float64("nodes_per_search", s.NodesPerSearch()).Msg("standing")
		table = append(table, s)
	}
	return table, dir, nil
}

func record(s1, s2 *Standing, result game.MatchResult) {
	s1.Stones += result.P1
	s2.Stones += result.P2
	switch result.Verdict {
	case game.Player1Wins:
		s1.Wins++
		s2.Losses++
	case game.Player2Wins:
		s1.Losses++
		s2.Wins++
	default:
		s1.Ties++
		s2.Ties++
	}
}

func store(root, name string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame executes a single game between two search agents.
func runGame(config1, config2 metrics.AgentConfig) (game.MatchResult, metrics.GameMetric, []metrics.MoveMetric) {
	agents := [2]agent.Agent{
		agent.NewSearchAgent(createSearcher(config1)),
		agent.NewSearchAgent(createSearcher(config2)),
	}
	return engine.NewLocalEngine(agents).Run()
}

func createSearcher(config metrics.AgentConfig) *searcher.AlphaBeta {
	weights, err := game.LookupWeights(config.Heuristic)
	if err != nil {
		panic(err)
	}

	options := []searcher.Option{
		searcher.WithWeights(weights),
		searcher.WithMoveOrdering(config.Ordering),
	}
	if config.Duration > 0 {
		options = append(options, searcher.WithDuration(config.Duration))
	}
	if config.MinDepth > 0 {
		options = append(options, searcher.WithMinDepth(config.MinDepth))
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}
	return searcher.NewAlphaBeta(options...)
}

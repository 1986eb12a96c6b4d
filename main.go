package main

import (
	"flag"
	"fmt"
	"mancala/config"
	"mancala/engine"
	"mancala/experiments"
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"mancala/render"
	"mancala/searcher/agent"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	humanAI    = "human-ai"
	aiAI       = "ai-ai"
	experiment = "experiment"
)

type flags struct {
	mode       string
	side       int
	h1, h2     string
	duration   time.Duration
	depth      int
	experiment string
}

func main() {
	var f flags
	flag.StringVar(&f.mode, "mode", humanAI, "Game mode: human-ai, ai-ai or experiment")
	flag.IntVar(&f.side, "side", 1, "Player the human plays as (1 or 2)")
	flag.StringVar(&f.h1, "h1", "", "Heuristic of the AI, or of player 1 in ai-ai mode")
	flag.StringVar(&f.h2, "h2", "", "Heuristic of player 2 in ai-ai mode")
	flag.DurationVar(&f.duration, "duration", 0, "Time per AI move, overrides the config")
	flag.IntVar(&f.depth, "depth", 0, "Fixed AI search depth, overrides the config")
	flag.StringVar(&f.experiment, "experiment", "tournament", "Experiment to run: tournament or ordering")
	configPath := flag.String("config", "", "Config file, defaults to the XDG config location")
	saveConfig := flag.Bool("save-config", false, "Write the effective config to the XDG config location and exit")
	logLevel := flag.String("log-level", "", "Log level, defaults to warn while playing and info for experiments")
	flag.Parse()

	setupLogging(*logLevel, f.mode)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *saveConfig {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	switch f.mode {
	case humanAI, aiAI:
		err = play(cfg, f)
	case experiment:
		err = runExperiment(cfg, f)
	default:
		err = fmt.Errorf("unknown mode %q", f.mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", f.mode)
	}
}

func setupLogging(level, mode string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if level == "" {
		level = zerolog.WarnLevel.String()
		if mode == experiment {
			level = zerolog.InfoLevel.String()
		}
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Err(err).Msg("unknown log level => using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.InitConfig()
}

// searchConfig applies the command line overrides for one AI player. Two AIs
// play a fixed depth unless a duration is given.
func searchConfig(base config.SearchConfig, f flags, heuristic string) config.SearchConfig {
	s := base
	if heuristic != "" {
		s.Heuristic = heuristic
		s.Weights = nil
	}

	if f.mode == aiAI && f.duration == 0 {
		s.Duration = 0
		s.MaxDepth = meta.FIXED_DEPTH
	}
	if f.duration > 0 {
		s.Duration = config.Duration(f.duration)
	}
	if f.depth > 0 {
		s.MaxDepth = f.depth
	}
	return s
}

func searchAgent(s config.SearchConfig) (agent.Agent, error) {
	ab, err := s.NewSearcher()
	if err != nil {
		return nil, err
	}
	return agent.NewSearchAgent(ab), nil
}

func setupPlayers(cfg *config.Config, f flags) ([2]agent.Agent, [2]string, error) {
	var agents [2]agent.Agent
	var names [2]string

	switch f.mode {
	case humanAI:
		if f.side != 1 && f.side != 2 {
			return agents, names, fmt.Errorf("side must be 1 or 2, got %d", f.side)
		}
		ai, err := searchAgent(searchConfig(cfg.Search, f, f.h1))
		if err != nil {
			return agents, names, err
		}
		human := f.side - 1
		agents[human] = agent.NewHumanAgent(os.Stdin, os.Stdout)
		agents[1-human] = ai
		names[human], names[1-human] = "You", "AI"

	case aiAI:
		for i, heuristic := range []string{f.h1, f.h2} {
			s := searchConfig(cfg.Search, f, heuristic)
			a, err := searchAgent(s)
			if err != nil {
				return agents, names, err
			}
			agents[i] = a
			names[i] = fmt.Sprintf("AI P%d (%s)", i+1, s.Heuristic)
		}
	}
	return agents, names, nil
}

func play(cfg *config.Config, f flags) error {
	agents, names, err := setupPlayers(cfg, f)
	if err != nil {
		return err
	}

	r := render.New(os.Stdout)
	r.Board(game.NewBoard())
	e := engine.NewLocalEngine(agents, engine.WithObserver(func(move metrics.MoveMetric, board game.Board) {
		r.Move(move, board)
	}))

	result, gameMetric, _ := e.Run()
	if gameMetric.Aborted {
		fmt.Println("Game abandoned.")
	}
	r.Result(result, names)
	return nil
}

func runExperiment(cfg *config.Config, f flags) error {
	ecfg := cfg.Experiment
	if f.duration > 0 {
		ecfg.Duration = config.Duration(f.duration)
	}
	if f.depth > 0 {
		ecfg.MaxDepth = f.depth
	}

	var (
		standings []experiments.Standing
		dir       string
		err       error
	)
	switch f.experiment {
	case "tournament":
		standings, dir, err = experiments.RunHeuristicTournament(ecfg)
	case "ordering":
		standings, dir, err = experiments.RunOrderingExperiment(ecfg)
	default:
		return fmt.Errorf("unknown experiment %q", f.experiment)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%-4s %-12s %5s %5s %5s %8s %12s\n", "ID", "Heuristic", "W", "L", "T", "Points", "Nodes/move")
	for _, s := range standings {
		fmt.Printf("%-4d %-12s %5d %5d %5d %8.1f %12.0f\n",
			s.Agent.ID, s.Agent.Heuristic, s.Wins, s.Losses, s.Ties, s.Points(), s.NodesPerSearch())
	}
	fmt.Printf("Records written to %s\n", dir)
	return nil
}

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"mancala/game"
	"mancala/meta"
	"mancala/searcher"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"golang.org/x/exp/slices"
)

var (
	cfgFile = "mancala/config.json"
	dataDir = "mancala/experiments"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// Duration is a time.Duration written as "1.5s" in JSON.
type Duration time.Duration

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("duration must be a string like \"1.5s\": %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// SearchConfig configures the AI player.
type SearchConfig struct {
	Duration     Duration      `json:"duration"`  // Allowance per decision, 0 for fixed depth
	MinDepth     int           `json:"min_depth"` // Plies before the clock is checked
	MaxDepth     int           `json:"max_depth"` // Fixed depth, 0 for clock only
	Heuristic    string        `json:"heuristic"` // Name of a weight preset
	Weights      *game.Weights `json:"weights,omitempty"`
	MoveOrdering bool          `json:"move_ordering"`
	ShuffleSeed  uint64        `json:"shuffle_seed,omitempty"` // 0 keeps index order among equal moves
}

// ExperimentConfig configures heuristic tournaments.
type ExperimentConfig struct {
	Games      int      `json:"games"` // Per side of each pairing
	Duration   Duration `json:"duration"`
	MinDepth   int      `json:"min_depth"`
	MaxDepth   int      `json:"max_depth"`
	Heuristics []string `json:"heuristics"`
	OutputDir  string   `json:"output_dir,omitempty"` // Defaults to the XDG data directory
}

type Config struct {
	Search     SearchConfig     `json:"search"`
	Experiment ExperimentConfig `json:"experiment"`
}

var DefaultConfig = Config{
	Search: SearchConfig{
		Duration:     Duration(meta.DURATION),
		MinDepth:     meta.MIN_DEPTH,
		Heuristic:    meta.HEURISTIC,
		MoveOrdering: true,
	},
	Experiment: ExperimentConfig{
		Games:      2,
		MaxDepth:   6,
		Heuristics: game.PresetNames(),
	},
}

// InitConfig returns the default configuration overlaid with the user's
// config file, if there is one.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := defaults()
		return &config, nil
	}
	return Load(absPath)
}

// defaults copies DefaultConfig without sharing its slices.
func defaults() Config {
	config := DefaultConfig
	config.Experiment.Heuristics = slices.Clone(DefaultConfig.Experiment.Heuristics)
	return config
}

// Load reads the configuration at path over the defaults.
func Load(path string) (*Config, error) {
	config := defaults()
	if err := readCfgFile(path, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	s := c.Search
	if s.Duration < 0 || s.MinDepth < 0 || s.MaxDepth < 0 {
		return &InvalidConfig{"search duration and depths must not be negative"}
	}
	if s.Duration == 0 && s.MaxDepth == 0 {
		return &InvalidConfig{"search needs a duration or a max depth"}
	}
	if _, err := s.weights(); err != nil {
		return &InvalidConfig{err.Error()}
	}

	e := c.Experiment
	if e.Duration < 0 || e.MinDepth < 0 || e.MaxDepth < 0 {
		return &InvalidConfig{"experiment duration and depths must not be negative"}
	}
	if e.Games < 1 {
		return &InvalidConfig{"experiment needs at least one game per pairing"}
	}
	if e.Duration == 0 && e.MaxDepth == 0 {
		return &InvalidConfig{"experiment needs a duration or a max depth"}
	}
	if len(e.Heuristics) < 2 {
		return &InvalidConfig{"experiment needs at least two heuristics"}
	}
	for _, name := range e.Heuristics {
		if _, err := game.LookupWeights(name); err != nil {
			return &InvalidConfig{err.Error()}
		}
	}
	return nil
}

// Save writes the configuration to the user's config file.
func (c *Config) Save() (string, error) {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return "", fmt.Errorf("failed to locate config file: %w", err)
	}
	return absPath, saveCfgFile(absPath, c, 0664)
}

// weights resolves explicit weights or the named preset.
func (s SearchConfig) weights() (game.Weights, error) {
	if s.Weights != nil {
		return *s.Weights, s.Weights.Validate()
	}
	return game.LookupWeights(s.Heuristic)
}

// Options translates the configuration into searcher options.
func (s SearchConfig) Options() ([]searcher.Option, error) {
	weights, err := s.weights()
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{
		searcher.WithDuration(s.Duration.Std()),
		searcher.WithMinDepth(s.MinDepth),
		searcher.WithMaxDepth(s.MaxDepth),
		searcher.WithWeights(weights),
		searcher.WithMoveOrdering(s.MoveOrdering),
	}
	if s.ShuffleSeed != 0 {
		options = append(options, searcher.WithShuffle(s.ShuffleSeed))
	}
	return options, nil
}

// NewSearcher builds a searcher from the configuration.
func (s SearchConfig) NewSearcher() (*searcher.AlphaBeta, error) {
	options, err := s.Options()
	if err != nil {
		return nil, err
	}
	if s.Duration == 0 && s.MaxDepth == 0 {
		return nil, &InvalidConfig{"search needs a duration or a max depth"}
	}
	return searcher.NewAlphaBeta(options...), nil
}

// Dir returns the directory experiment results are written to.
func (e ExperimentConfig) Dir() string {
	if e.OutputDir != "" {
		return e.OutputDir
	}
	return filepath.Join(xdg.DataHome, dataDir)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	err = os.WriteFile(filePath, jsonData, perm)
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	err = json.Unmarshal(data, a)
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", filePath, err)
	}
	return nil
}

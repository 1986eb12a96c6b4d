package engine

import (
	"mancala/experiments/metrics"
	"mancala/game"
)

type Engine interface {
	// Run plays a match till the game is over, an agent resigns or the turn
	// limit is reached
	Run() (result game.MatchResult, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// Observer is called after every move with the board it produced.
type Observer func(move metrics.MoveMetric, board game.Board)

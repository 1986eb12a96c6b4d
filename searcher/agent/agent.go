package agent

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/searcher"
)

type Agent interface {
	// FindMove returns a legal move for the player to move and the metrics
	// of the decision (zero for agents that do not search)
	FindMove(board game.Board) (pit int, metric metrics.SearchMetric)
}

type searchAgent struct {
	searcher *searcher.AlphaBeta
}

// NewSearchAgent returns an agent that plays the searcher's choice.
func NewSearchAgent(s *searcher.AlphaBeta) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) FindMove(board game.Board) (int, metrics.SearchMetric) {
	return a.searcher.FindMove(board)
}

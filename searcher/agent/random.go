package agent

import (
	"mancala/experiments/metrics"
	"mancala/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly random legal moves,
// a baseline for experiments.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board game.Board) (int, metrics.SearchMetric) {
	moves := board.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves: game is over")
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Moves: len(moves)}
}

package searcher

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"math"
	"time"
)

// Searcher picks a move for the player to move.
type Searcher interface {
	ChooseMove(board game.Board, player game.Player, budget time.Duration) (pit int, metric metrics.SearchMetric)
}

// Phase is the state of an AlphaBeta decision: Idle -> Searching -> Decided.
type Phase int

const (
	Idle Phase = iota
	Searching
	Decided
)

func (p Phase) String() string {
	switch p {
	case Searching:
		return "searching"
	case Decided:
		return "decided"
	default:
		return "idle"
	}
}

// node is a position owned by exactly one search call.
type node struct {
	board     game.Board
	depth     int  // Plies searched, extra turns excluded
	extraTurn bool // The move into this position granted an extra turn
}

// child plays pit from n. An extra turn keeps the depth.
func (n node) child(pit int) node {
	board, extraTurn := n.board.Play(pit)
	depth := n.depth + 1
	if extraTurn {
		depth = n.depth
	}
	return node{board: board, depth: depth, extraTurn: extraTurn}
}

// Scores are always from player 1's point of view: player 1 maximizes and
// player 2 minimizes.
func maximizing(board game.Board) bool {
	return board.Turn == game.Player1
}

func worst(maximizing bool) float64 {
	if maximizing {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func improves(maximizing bool, score, best float64) bool {
	if maximizing {
		return score > best
	}
	return score < best
}

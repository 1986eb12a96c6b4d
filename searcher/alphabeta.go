package searcher

import (
	"fmt"
	"mancala/experiments/metrics"
	"mancala/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *AlphaBeta)

// AlphaBeta is a single-threaded minimax searcher with alpha-beta pruning
// over the extra-turn aware game tree, bounded by a wall-clock budget and/or
// a fixed depth. An AlphaBeta must not be used by concurrent callers.
type AlphaBeta struct {
	duration   time.Duration
	minDepth   int
	maxDepth   int
	weights    game.Weights
	ordering   bool
	pruning    bool
	rng        *rand.Rand
	now        func() time.Time
	newMetrics func() metrics.Collector
	phase      Phase
}

// WithDuration sets the wall-clock allowance of one decision. The allowance
// is split evenly between the top-level moves.
func WithDuration(duration time.Duration) Option {
	return func(s *AlphaBeta) {
		if duration > 0 {
			s.duration = duration
		}
	}
}

// WithMinDepth sets the number of plies searched before the clock is
// consulted.
func WithMinDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth >= 0 {
			s.minDepth = depth
		}
	}
}

// WithMaxDepth stops every line after depth plies regardless of the clock.
func WithMaxDepth(depth int) Option {
	return func(s *AlphaBeta) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func WithWeights(weights game.Weights) Option {
	return func(s *AlphaBeta) {
		s.weights = weights
	}
}

func WithMoveOrdering(enabled bool) Option {
	return func(s *AlphaBeta) {
		s.ordering = enabled
	}
}

// WithPruning(false) turns the search into plain minimax.
func WithPruning(enabled bool) Option {
	return func(s *AlphaBeta) {
		s.pruning = enabled
	}
}

// WithShuffle shuffles moves before ordering them so that equally ranked
// moves are tried in random order.
func WithShuffle(seed uint64) Option {
	return func(s *AlphaBeta) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *AlphaBeta) {
		if now != nil {
			s.now = now
		}
	}
}

func WithoutMetrics() Option {
	return func(s *AlphaBeta) {
		s.newMetrics = metrics.NewDummyCollector
	}
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	s := &AlphaBeta{ // Default values
		weights:    game.DefaultWeights,
		ordering:   true,
		pruning:    true,
		now:        time.Now,
		newMetrics: metrics.NewCollector,
	}
	for _, option := range options {
		option(s)
	}
	if s.duration <= 0 && s.maxDepth <= 0 {
		panic("Must specify search duration or max depth")
	}
	if s.maxDepth > 0 && s.minDepth > s.maxDepth {
		s.minDepth = s.maxDepth
	}
	return s
}

func (s *AlphaBeta) Phase() Phase {
	return s.phase
}

// FindMove picks a move for the player to move using the configured duration.
func (s *AlphaBeta) FindMove(board game.Board) (int, metrics.SearchMetric) {
	return s.ChooseMove(board, board.Turn, s.duration)
}

// ChooseMove returns one of player's legal moves. The budget replaces the
// configured duration for this decision; a zero budget searches to the max
// depth only.
//
// ChooseMove panics if the board is malformed or player has no legal move.
func (s *AlphaBeta) ChooseMove(board game.Board, player game.Player, budget time.Duration) (int, metrics.SearchMetric) {
	board.Turn = player
	pit, _, metric := s.decide(board, budget)
	return pit, metric
}

// Score searches the position with the configured duration and returns the
// chosen move with its minimax value from player 1's point of view.
func (s *AlphaBeta) Score(board game.Board) (pit int, score float64, metric metrics.SearchMetric) {
	return s.decide(board, s.duration)
}

func (s *AlphaBeta) decide(board game.Board, budget time.Duration) (int, float64, metrics.SearchMetric) {
	if err := board.Validate(); err != nil {
		panic(err)
	}
	moves := board.LegalMoves()
	if len(moves) == 0 {
		panic(fmt.Sprintf("no legal moves for %s: game is over", board.Turn))
	}
	if budget <= 0 && s.maxDepth <= 0 {
		panic("Must specify search duration or max depth")
	}

	s.phase = Searching
	defer func() { s.phase = Decided }()

	run := &search{
		AlphaBeta: s,
		clocked:   budget > 0,
		collector: s.newMetrics(),
	}
	run.collector.Start(budget, len(moves))
	run.collector.AddNode(0)

	moves = s.order(board, moves)
	share := budget / time.Duration(len(moves))
	maximize := maximizing(board)
	alpha, beta := worst(true), worst(false)
	best := worst(maximize)
	bestPit := moves[0]

	for _, pit := range moves {
		run.deadline = s.now().Add(share)
		score := run.search(node{depth: 0, board: board}.child(pit), alpha, beta)
		if improves(maximize, score, best) {
			best, bestPit = score, pit
		}
		if maximize {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}
	}

	metric := run.collector.Complete(best)
	log.Debug().
		Str("player", board.Turn.String()).
		Int("pit", bestPit).
		Float64("score", best).
		Int("nodes", metric.Nodes).
		Int("pruned", metric.Pruned).
		Int("depth", metric.Depth).
		Dur("elapsed", metric.Duration).
		Msg("move decided")
	return bestPit, best, metric
}

// search holds the state of one decision.
type search struct {
	*AlphaBeta
	deadline  time.Time
	clocked   bool
	collector metrics.Collector
}

func (c *search) search(n node, alpha, beta float64) float64 {
	c.collector.AddNode(n.depth)
	if n.extraTurn {
		c.collector.AddExtraTurn()
	}

	if n.board.IsGameOver() || n.board.IsEffectivelyOver() || c.cutoff(n) {
		return c.weights.Evaluate(n.board, game.Player1)
	}

	moves := c.order(n.board, n.board.LegalMoves())
	maximize := maximizing(n.board)
	best := worst(maximize)

	for i, pit := range moves {
		score := c.search(n.child(pit), alpha, beta)
		if improves(maximize, score, best) {
			best = score
		}
		if maximize {
			alpha = max(alpha, best)
		} else {
			beta = min(beta, best)
		}

		if c.pruning && alpha >= beta {
			c.collector.AddPruned(len(moves) - i - 1)
			break
		}
	}
	return best
}

// cutoff reports whether an open position should be evaluated instead of
// expanded. A position reached by an extra turn is always expanded so that
// chains are searched to their end.
func (c *search) cutoff(n node) bool {
	if n.extraTurn {
		return false
	}
	if c.maxDepth > 0 && n.depth >= c.maxDepth {
		return true
	}
	if !c.clocked || n.depth < c.minDepth {
		return false
	}
	if c.now().Before(c.deadline) {
		return false
	}
	c.collector.AddCutoff()
	return true
}

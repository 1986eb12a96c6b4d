package searcher

import (
	"mancala/game"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

/*
- choice: always a legal move of the requested player
- tactics: takes a winning capture for either player
- alpha-beta: same value and move as plain minimax at a fixed depth
- clock: an expired clock searches exactly to the min depth
- failures: game over / malformed board / no limits panic
*/

// minimax is an independent, unpruned reference search with the same depth
// rules: extra turns do not count as a ply and are never cut off.
func minimax(b game.Board, depth, maxDepth int, extraTurn bool, w game.Weights) float64 {
	if b.IsGameOver() || b.IsEffectivelyOver() || (!extraTurn && depth >= maxDepth) {
		return w.Evaluate(b, game.Player1)
	}
	maximize := b.Turn == game.Player1
	best := math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	for _, pit := range b.LegalMoves() {
		next, again := b.Play(pit)
		d := depth + 1
		if again {
			d = depth
		}
		score := minimax(next, d, maxDepth, again, w)
		if (maximize && score > best) || (!maximize && score < best) {
			best = score
		}
	}
	return best
}

func rootMinimax(b game.Board, maxDepth int, w game.Weights) (int, float64) {
	maximize := b.Turn == game.Player1
	bestPit, best := -1, math.Inf(1)
	if maximize {
		best = math.Inf(-1)
	}
	for _, pit := range b.LegalMoves() {
		next, again := b.Play(pit)
		d := 1
		if again {
			d = 0
		}
		score := minimax(next, d, maxDepth, again, w)
		if (maximize && score > best) || (!maximize && score < best) {
			bestPit, best = pit, score
		}
	}
	return bestPit, best
}

// randomPositions plays random games and collects open positions.
func randomPositions(seed uint64, n int) []game.Board {
	rng := rand.New(rand.NewSource(seed))
	positions := []game.Board{}
	for len(positions) < n {
		b := game.NewBoard()
		plies := 2 + rng.Intn(24)
		for i := 0; i < plies && !b.IsGameOver(); i++ {
			moves := b.LegalMoves()
			b, _ = b.Play(moves[rng.Intn(len(moves))])
		}
		if !b.IsGameOver() && !b.IsEffectivelyOver() {
			positions = append(positions, b)
		}
	}
	return positions
}

// expiredClock moves an hour forward on every reading.
func expiredClock() func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(time.Hour)
		return now
	}
}

func TestChooseMove(t *testing.T) {
	t.Run("returns a legal move for the requested player", func(t *testing.T) {
		s := NewAlphaBeta(WithMaxDepth(3))
		b := game.NewBoard()

		pit, metric := s.ChooseMove(b, game.Player2, 0)
		require.Contains(t, b.LegalMovesFor(game.Player2), pit)
		require.Positive(t, metric.Nodes)
		require.Equal(t, 6, metric.Moves)
		require.Equal(t, game.NewBoard(), b, "Search should not modify the caller's board")
	})

	t.Run("single legal move", func(t *testing.T) {
		s := NewAlphaBeta(WithMaxDepth(4))
		b := game.MustParseBoard("0 0 0 0 1 0 | 20 | 4 4 4 4 4 4 | 3")

		pit, _ := s.ChooseMove(b, game.Player1, 0)
		require.Equal(t, 4, pit)
	})

	t.Run("player 1 takes the winning capture", func(t *testing.T) {
		b := game.MustParseBoard("1 1 0 0 0 0 | 19 | 1 1 1 10 1 1 | 12")
		for _, depth := range []int{1, 2, 4} {
			s := NewAlphaBeta(WithMaxDepth(depth))
			pit, score, _ := s.Score(b)
			require.Equal(t, 1, pit, "depth %d", depth)
			require.Greater(t, score, game.DefaultWeights.Bound(), "Capture should decide the game")
		}
	})

	t.Run("player 2 takes the winning capture", func(t *testing.T) {
		b := game.MustParseBoard("1 1 1 10 1 1 | 12 | 1 1 0 0 0 0 | 19 ; P2")
		for _, depth := range []int{1, 2, 4} {
			s := NewAlphaBeta(WithMaxDepth(depth))
			pit, score, _ := s.Score(b)
			require.Equal(t, 8, pit, "depth %d", depth)
			require.Less(t, score, -game.DefaultWeights.Bound(), "Capture should decide the game for player 2")
		}
	})

	t.Run("time budget", func(t *testing.T) {
		s := NewAlphaBeta(WithDuration(60*time.Millisecond), WithMinDepth(2))
		b := game.NewBoard()

		start := time.Now()
		pit, metric := s.FindMove(b)
		require.Contains(t, b.LegalMoves(), pit)
		require.Less(t, time.Since(start), 2*time.Second, "Search should stop soon after the budget")
		require.Equal(t, 60*time.Millisecond, metric.Budget)
		require.GreaterOrEqual(t, metric.Depth, 2, "Search should reach the min depth")
	})

	t.Run("phase", func(t *testing.T) {
		s := NewAlphaBeta(WithMaxDepth(2))
		require.Equal(t, Idle, s.Phase())
		s.FindMove(game.NewBoard())
		require.Equal(t, Decided, s.Phase())
	})
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	for i, b := range randomPositions(11, 25) {
		for _, depth := range []int{1, 3, 4} {
			wantPit, wantScore := rootMinimax(b, depth, game.DefaultWeights)

			pruned := NewAlphaBeta(WithMaxDepth(depth), WithMoveOrdering(false))
			pit, score, _ := pruned.Score(b)
			require.Equal(t, wantScore, score, "position %d (%s) depth %d: pruned value", i, b, depth)
			require.Equal(t, wantPit, pit, "position %d (%s) depth %d: pruned move", i, b, depth)

			exhaustive := NewAlphaBeta(WithMaxDepth(depth), WithMoveOrdering(false), WithPruning(false))
			pit, score, _ = exhaustive.Score(b)
			require.Equal(t, wantScore, score, "position %d depth %d: minimax value", i, depth)
			require.Equal(t, wantPit, pit, "position %d depth %d: minimax move", i, depth)

			ordered := NewAlphaBeta(WithMaxDepth(depth))
			_, score, _ = ordered.Score(b)
			require.Equal(t, wantScore, score, "position %d depth %d: ordering should not change the value", i, depth)
		}
	}
}

func TestPruningStatistics(t *testing.T) {
	b := game.NewBoard()

	_, prunedScore, pruned := NewAlphaBeta(WithMaxDepth(5)).Score(b)
	_, fullScore, full := NewAlphaBeta(WithMaxDepth(5), WithPruning(false)).Score(b)

	require.Equal(t, fullScore, prunedScore)
	require.Positive(t, pruned.Pruned, "Alpha-beta should skip moves")
	require.Zero(t, full.Pruned, "Minimax should skip nothing")
	require.Less(t, pruned.Nodes, full.Nodes, "Pruning should visit fewer positions")
	require.Positive(t, full.ExtraTurns, "Start position has an extra turn")
	require.Equal(t, 5, full.Depth)
}

func TestClockCutoff(t *testing.T) {
	for i, b := range randomPositions(5, 10) {
		clocked := NewAlphaBeta(WithDuration(time.Second), WithMinDepth(2), WithClock(expiredClock()))
		fixed := NewAlphaBeta(WithMaxDepth(2))

		pit, score, metric := clocked.Score(b)
		wantPit, wantScore, _ := fixed.Score(b)

		require.Equal(t, wantScore, score, "position %d: expired clock should cut at the min depth", i)
		require.Equal(t, wantPit, pit, "position %d", i)
		require.Positive(t, metric.Cutoffs, "position %d: clock cutoffs should be counted", i)
	}
}

func TestExtraTurnKeepsDepth(t *testing.T) {
	n := node{board: game.NewBoard(), depth: 3}

	again := n.child(2)
	require.True(t, again.extraTurn)
	require.Equal(t, 3, again.depth, "Extra turn should not count as a ply")
	require.Equal(t, game.Player1, again.board.Turn)

	next := n.child(0)
	require.False(t, next.extraTurn)
	require.Equal(t, 4, next.depth)
	require.Equal(t, game.Player2, next.board.Turn)
}

func TestShuffleIsReproducible(t *testing.T) {
	b := game.NewBoard()
	pit1, score1, _ := NewAlphaBeta(WithMaxDepth(3), WithShuffle(9)).Score(b)
	pit2, score2, _ := NewAlphaBeta(WithMaxDepth(3), WithShuffle(9)).Score(b)

	require.Equal(t, pit1, pit2)
	require.Equal(t, score1, score2)
}

func TestPanics(t *testing.T) {
	t.Run("no limits", func(t *testing.T) {
		require.Panics(t, func() { NewAlphaBeta() })
	})

	t.Run("game over", func(t *testing.T) {
		s := NewAlphaBeta(WithMaxDepth(2))
		b := game.MustParseBoard("0 0 0 0 0 0 | 20 | 4 4 4 4 4 8 | 0")
		require.Panics(t, func() { s.FindMove(b) })
	})

	t.Run("malformed board", func(t *testing.T) {
		s := NewAlphaBeta(WithMaxDepth(2))
		b := game.NewBoard()
		b.Pits[0] = 40
		require.Panics(t, func() { s.FindMove(b) })
	})

	t.Run("clockless decision without max depth", func(t *testing.T) {
		s := NewAlphaBeta(WithDuration(time.Second))
		require.Panics(t, func() { s.ChooseMove(game.NewBoard(), game.Player1, 0) })
	})
}

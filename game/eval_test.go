package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestComputeFeatures(t *testing.T) {
	t.Run("start position is balanced", func(t *testing.T) {
		f := ComputeFeatures(NewBoard(), Player1)
		require.Equal(t, Features{}, f, "Both sides have one extra-turn pit and no captures")
		require.Equal(t, 0.0, DefaultWeights.Evaluate(NewBoard(), Player1))
	})

	t.Run("capture and extra turn opportunities", func(t *testing.T) {
		b := MustParseBoard("1 0 0 0 0 0 | 0 | 4 4 4 4 4 4 | 0")

		f := ComputeFeatures(b, Player1)
		require.Equal(t, Features{Store: 0, Side: -23, ExtraTurn: -1, Capture: 5}, f)

		f2 := ComputeFeatures(b, Player2)
		require.Equal(t, Features{Store: 0, Side: 23, ExtraTurn: 1, Capture: -5}, f2,
			"Features should flip sign with the perspective")
	})

	t.Run("opportunities ignore whose turn it is", func(t *testing.T) {
		b := MustParseBoard("1 0 0 0 0 0 | 0 | 4 4 4 4 4 4 | 0 ; P2")
		require.Equal(t, 5, ComputeFeatures(b, Player1).Capture)
	})
}

func TestWeightsScore(t *testing.T) {
	w := Weights{Store: 2, Side: 0.5, ExtraTurn: 3, Capture: 1}
	f := Features{Store: 4, Side: -2, ExtraTurn: 1, Capture: 3}

	require.InDelta(t, 2*4+0.5*-2+3*1+1*3, w.Score(f), 1e-9)
}

func TestTerminalScore(t *testing.T) {
	t.Run("game over scales the final margin", func(t *testing.T) {
		b := MustParseBoard("0 0 0 0 0 0 | 20 | 4 4 4 4 4 8 | 0")

		score, ok := TerminalScore(b, Player1)
		require.True(t, ok)
		require.Equal(t, -8*TerminalScale, score)

		score, ok = TerminalScore(b, Player2)
		require.True(t, ok)
		require.Equal(t, 8*TerminalScale, score)
	})

	t.Run("tie scores zero", func(t *testing.T) {
		b := MustParseBoard("0 0 0 0 0 0 | 24 | 4 4 4 4 4 4 | 0")
		score, ok := TerminalScore(b, Player1)
		require.True(t, ok)
		require.Equal(t, 0.0, score)
	})

	t.Run("store majority is effectively over", func(t *testing.T) {
		b := MustParseBoard("1 1 1 1 1 1 | 25 | 1 1 1 1 1 11 | 0")
		score, ok := TerminalScore(b, Player1)
		require.True(t, ok)
		require.Equal(t, 2*TerminalScale, score)

		b = MustParseBoard("1 1 1 1 1 11 | 0 | 1 1 1 1 1 1 | 25")
		score, ok = TerminalScore(b, Player1)
		require.True(t, ok)
		require.Equal(t, -2*TerminalScale, score)
	})

	t.Run("larger margins rank higher", func(t *testing.T) {
		small := MustParseBoard("0 0 0 0 0 0 | 26 | 0 0 0 0 0 22 | 0")
		large := MustParseBoard("0 0 0 0 0 0 | 30 | 0 0 0 0 0 18 | 0")
		require.Greater(t, DefaultWeights.Evaluate(large, Player1), DefaultWeights.Evaluate(small, Player1))
	})

	t.Run("open position", func(t *testing.T) {
		_, ok := TerminalScore(NewBoard(), Player1)
		require.False(t, ok)
	})
}

// Plays random games and checks evaluation properties on every position seen.
func TestEvaluateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		b := NewBoard()
		for {
			for _, name := range PresetNames() {
				w := Presets[name]
				before := b
				first := w.Evaluate(b, Player1)
				second := w.Evaluate(b, Player1)

				require.Equal(t, first, second, "Evaluate should be deterministic")
				require.Equal(t, before, b, "Evaluate should not modify the board")
				require.InDelta(t, first, -w.Evaluate(b, Player2), 1e-6, "Evaluate should be zero-sum")

				if _, terminal := TerminalScore(b, Player1); !terminal {
					require.LessOrEqual(t, math.Abs(first), w.Bound(), "%s heuristic should stay within its bound", name)
				} else if first != 0 {
					require.Greater(t, math.Abs(first), w.Bound(), "%s terminal score should dominate heuristics", name)
				}
			}

			if b.IsGameOver() {
				break
			}
			moves := b.LegalMoves()
			b, _ = b.Play(moves[rng.Intn(len(moves))])
		}
	}
}

func TestWeights(t *testing.T) {
	t.Run("presets are valid", func(t *testing.T) {
		for _, name := range PresetNames() {
			w, err := LookupWeights(name)
			require.NoError(t, err)
			require.NoError(t, w.Validate(), "preset %s", name)
		}
	})

	t.Run("unknown preset", func(t *testing.T) {
		_, err := LookupWeights("nope")
		require.Error(t, err)
	})

	t.Run("invalid weights", func(t *testing.T) {
		require.Error(t, Weights{Store: math.NaN()}.Validate())
		require.Error(t, Weights{Side: math.Inf(1)}.Validate())
		require.Error(t, Weights{Capture: TerminalScale}.Validate(), "Heuristics must not reach the terminal tier")
	})

	t.Run("evaluator matches Evaluate", func(t *testing.T) {
		b := MustParseBoard("1 0 0 0 0 0 | 0 | 4 4 4 4 4 4 | 0")
		w := Presets["aggressive"]
		require.Equal(t, w.Evaluate(b, Player2), w.Evaluator()(b, Player2))
	})
}

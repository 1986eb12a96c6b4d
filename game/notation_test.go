package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardString(t *testing.T) {
	require.Equal(t, "4 4 4 4 4 4 | 0 | 4 4 4 4 4 4 | 0 ; P1", NewBoard().String())

	b, err := ParseBoard(NewBoard().String())
	require.NoError(t, err)
	require.Equal(t, NewBoard(), b, "String output should parse back")
}

func TestParseBoard(t *testing.T) {
	t.Run("turn suffix", func(t *testing.T) {
		b, err := ParseBoard("0 0 0 0 0 1 | 20 | 4 4 4 4 4 7 | 4 ; p2")
		require.NoError(t, err)
		require.Equal(t, Player2, b.Turn)
		require.Equal(t, 20, b.Pits[Store1])
		require.Equal(t, 7, b.Pits[12])
	})

	t.Run("turn defaults to player 1", func(t *testing.T) {
		b, err := ParseBoard("1 0 0 0 0 0 | 0 | 4 4 4 4 4 4 | 0")
		require.NoError(t, err)
		require.Equal(t, Player1, b.Turn)
	})

	malformed := map[string]string{
		"missing group":  "4 4 4 4 4 4 | 0 | 4 4 4 4 4 4",
		"short side":     "4 4 4 4 4 | 0 | 4 4 4 4 4 4 | 0",
		"two stores":     "4 4 4 4 4 4 | 0 0 | 4 4 4 4 4 4 | 0",
		"not a number":   "4 4 x 4 4 4 | 0 | 4 4 4 4 4 4 | 0",
		"negative count": "4 4 -4 4 4 4 | 0 | 4 4 4 4 4 4 | 0",
		"bad player":     "4 4 4 4 4 4 | 0 | 4 4 4 4 4 4 | 0 ; P3",
	}
	for name, input := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := ParseBoard(input)
			require.ErrorIs(t, err, ErrMalformedBoard)
		})
	}

	require.Panics(t, func() { MustParseBoard("") })
}

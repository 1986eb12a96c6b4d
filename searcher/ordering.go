package searcher

import (
	"mancala/game"

	"golang.org/x/exp/slices"
)

// Move classes in the order they are searched.
const (
	classExtraTurn = iota
	classCapture
	classQuiet
)

type candidate struct {
	pit   int
	class int
	rank  int // Lower is searched first within a class
}

// order sorts moves so that likely strong moves come first and cut off more
// of the tree: extra turns (closest to the store first), then captures
// (largest first), then the remaining moves by ascending stone count.
// Ordering changes only how much is pruned, never the search value.
func (s *AlphaBeta) order(board game.Board, moves []int) []int {
	if s.rng != nil {
		s.rng.Shuffle(len(moves), func(i, j int) {
			moves[i], moves[j] = moves[j], moves[i]
		})
	}
	if !s.ordering || len(moves) < 2 {
		return moves
	}

	candidates := make([]candidate, len(moves))
	for i, pit := range moves {
		candidates[i] = classify(board, pit)
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		if a.class != b.class {
			return a.class - b.class
		}
		return a.rank - b.rank
	})

	for i, c := range candidates {
		moves[i] = c.pit
	}
	return moves
}

func classify(board game.Board, pit int) candidate {
	extraTurn, captured := board.Preview(board.Turn, pit)
	switch {
	case extraTurn:
		return candidate{pit: pit, class: classExtraTurn, rank: game.DistanceToStore(board.Turn, pit)}
	case captured > 0:
		return candidate{pit: pit, class: classCapture, rank: -captured}
	default:
		return candidate{pit: pit, class: classQuiet, rank: board.Pits[pit]}
	}
}

package game

import "errors"

const (
	PitsPerSide  = 6
	StonesPerPit = 4
	NumPits      = 2*PitsPerSide + 2 // 12 pits and 2 stores

	Store1 = PitsPerSide // Player 1's store
	Store2 = NumPits - 1 // Player 2's store
	Stones = 2 * PitsPerSide * StonesPerPit

	// A store holding more than half the stones decides the game
	Majority = Stones / 2
)

var ErrMalformedBoard = errors.New("malformed board")

// Player identifies a side of the board. Player IDs start at 1 like the
// seats in a match.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// Store returns the index of the player's store.
func (p Player) Store() int {
	if p == Player1 {
		return Store1
	}
	return Store2
}

// Pits returns the first and last pit index on the player's side.
func (p Player) Pits() (first, last int) {
	if p == Player1 {
		return 0, Store1 - 1
	}
	return Store1 + 1, Store2 - 1
}

// Owns reports whether pit is one of the player's six pits (stores excluded).
func (p Player) Owns(pit int) bool {
	first, last := p.Pits()
	return pit >= first && pit <= last
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Opposite returns the pit facing pit across the board.
func Opposite(pit int) int {
	return 2*PitsPerSide - pit
}

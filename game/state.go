package game

import "fmt"

// Board is the full game state: stone counts for the 12 pits and 2 stores,
// plus the player to move. Indices 0-5 are player 1's pits, 6 is player 1's
// store, 7-12 are player 2's pits and 13 is player 2's store.
//
// Board is a value type; copying it is a full clone, which is what the
// searcher relies on to explore branches without touching the caller's board.
type Board struct {
	Pits [NumPits]int
	Turn Player
}

// NewBoard returns the starting position with player 1 to move.
func NewBoard() Board {
	var b Board
	for pit := range b.Pits {
		if pit != Store1 && pit != Store2 {
			b.Pits[pit] = StonesPerPit
		}
	}
	b.Turn = Player1
	return b
}

// LegalMoves returns the non-empty pits of the player to move, in index order.
func (b Board) LegalMoves() []int {
	return b.LegalMovesFor(b.Turn)
}

func (b Board) LegalMovesFor(p Player) []int {
	first, last := p.Pits()
	moves := make([]int, 0, PitsPerSide)
	for pit := first; pit <= last; pit++ {
		if b.Pits[pit] > 0 {
			moves = append(moves, pit)
		}
	}
	return moves
}

// IsLegal reports whether pit is a legal move for the player to move.
func (b Board) IsLegal(pit int) bool {
	return b.Turn.Owns(pit) && b.Pits[pit] > 0
}

// Apply sows the stones of pit for the player to move, in place, and returns
// true if the last stone landed in the mover's store. Turn is left untouched:
// on false the caller passes the turn to the opponent.
//
// Apply panics if pit is not a legal move.
func (b *Board) Apply(pit int) (extraTurn bool) {
	if !b.Turn.Valid() {
		panic(fmt.Sprintf("invalid player to move: %d", b.Turn))
	}
	if pit < 0 || pit >= NumPits || pit == Store1 || pit == Store2 {
		panic(fmt.Sprintf("illegal move: %d is not a pit", pit))
	}
	if !b.Turn.Owns(pit) {
		panic(fmt.Sprintf("illegal move: pit %d does not belong to %s", pit, b.Turn))
	}
	if b.Pits[pit] == 0 {
		panic(fmt.Sprintf("illegal move: pit %d is empty", pit))
	}

	last := sow(&b.Pits, pit, b.Turn)
	capture(&b.Pits, last, b.Turn)
	return last == b.Turn.Store()
}

// Play returns a copy of the board with pit played and the turn passed on
// unless an extra turn was granted.
func (b Board) Play(pit int) (Board, bool) {
	next := b
	extraTurn := next.Apply(pit)
	if !extraTurn {
		next.Turn = next.Turn.Opponent()
	}
	return next, extraTurn
}

// IsGameOver reports whether either side has run out of stones.
func (b Board) IsGameOver() bool {
	return b.SideTotal(Player1) == 0 || b.SideTotal(Player2) == 0
}

// IsEffectivelyOver reports whether either store already holds a majority of
// the stones, which no remaining play can overturn.
func (b Board) IsEffectivelyOver() bool {
	return b.Pits[Store1] > Majority || b.Pits[Store2] > Majority
}

// SideTotal returns the stones in the player's six pits.
func (b Board) SideTotal(p Player) int {
	first, last := p.Pits()
	total := 0
	for pit := first; pit <= last; pit++ {
		total += b.Pits[pit]
	}
	return total
}

// StoreCount returns the stones in the player's store.
func (b Board) StoreCount(p Player) int {
	return b.Pits[p.Store()]
}

// FinalScore counts each player's store plus the stones left on their side.
func (b Board) FinalScore() (p1, p2 int) {
	return b.Pits[Store1] + b.SideTotal(Player1), b.Pits[Store2] + b.SideTotal(Player2)
}

// Sweep moves the stones remaining in each side's pits into that side's store.
func (b *Board) Sweep() {
	for _, p := range []Player{Player1, Player2} {
		first, last := p.Pits()
		for pit := first; pit <= last; pit++ {
			b.Pits[p.Store()] += b.Pits[pit]
			b.Pits[pit] = 0
		}
	}
}

// Total returns the number of stones on the board.
func (b Board) Total() int {
	total := 0
	for _, stones := range b.Pits {
		total += stones
	}
	return total
}

// Validate checks the board invariants: a valid player to move, no negative
// counts and exactly Stones stones in play.
func (b Board) Validate() error {
	if !b.Turn.Valid() {
		return fmt.Errorf("%w: invalid player to move %d", ErrMalformedBoard, b.Turn)
	}
	for pit, stones := range b.Pits {
		if stones < 0 {
			return fmt.Errorf("%w: pit %d holds %d stones", ErrMalformedBoard, pit, stones)
		}
	}
	if total := b.Total(); total != Stones {
		return fmt.Errorf("%w: %d stones in play, want %d", ErrMalformedBoard, total, Stones)
	}
	return nil
}

// Result returns the match result for the board's final score.
func (b Board) Result() MatchResult {
	p1, p2 := b.FinalScore()
	return NewMatchResult(p1, p2)
}

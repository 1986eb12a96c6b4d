package game

import "fmt"

type Verdict int

const (
	Tie Verdict = iota
	Player1Wins
	Player2Wins
)

func (v Verdict) String() string {
	switch v {
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	default:
		return "tie"
	}
}

// MatchResult is the final score of a finished match.
type MatchResult struct {
	P1      int
	P2      int
	Verdict Verdict
}

func NewMatchResult(p1, p2 int) MatchResult {
	verdict := Tie
	if p1 > p2 {
		verdict = Player1Wins
	} else if p2 > p1 {
		verdict = Player2Wins
	}
	return MatchResult{P1: p1, P2: p2, Verdict: verdict}
}

// Winner returns the winning player, or false on a tie.
func (r MatchResult) Winner() (Player, bool) {
	switch r.Verdict {
	case Player1Wins:
		return Player1, true
	case Player2Wins:
		return Player2, true
	default:
		return 0, false
	}
}

// Score returns the given player's final total.
func (r MatchResult) Score(p Player) int {
	if p == Player1 {
		return r.P1
	}
	return r.P2
}

func (r MatchResult) String() string {
	return fmt.Sprintf("%d-%d (%s)", r.P1, r.P2, r.Verdict)
}

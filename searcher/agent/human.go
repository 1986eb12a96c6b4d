package agent

import (
	"bufio"
	"fmt"
	"io"
	"mancala/experiments/metrics"
	"mancala/game"
	"strconv"
	"strings"
)

// Resign is returned by agents that abandon the match.
const Resign = -1

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent returns an agent that asks for moves on out and reads them
// from in. Pits are numbered from 1 as printed on the board: 1-6 for player 1
// and 8-13 for player 2. "q" or end of input resigns.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (a *humanAgent) FindMove(board game.Board) (int, metrics.SearchMetric) {
	first, last := board.Turn.Pits()
	fmt.Fprintf(a.out, "Your move (%d to %d): ", first+1, last+1)

	for a.in.Scan() {
		text := strings.TrimSpace(a.in.Text())
		if strings.EqualFold(text, "q") {
			return Resign, metrics.SearchMetric{}
		}
		n, err := strconv.Atoi(text)
		if err == nil && board.IsLegal(n-1) {
			return n - 1, metrics.SearchMetric{}
		}
		fmt.Fprint(a.out, "Invalid move. Try again: ")
	}
	return Resign, metrics.SearchMetric{}
}

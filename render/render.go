package render

import (
	"fmt"
	"io"
	"mancala/experiments/metrics"
	"mancala/game"
	"strings"

	"github.com/muesli/termenv"
)

// Renderer draws boards and match events for a terminal. Pits are labelled
// 1 to 6 for player 1 and 8 to 13 for player 2, the numbers a human enters.
type Renderer struct {
	out *termenv.Output
}

func New(w io.Writer, options ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, options...)}
}

func (r *Renderer) Board(b game.Board) {
	var sb strings.Builder

	side := func(p game.Player, text string) string {
		s := r.out.String(text)
		if p == b.Turn {
			s = s.Bold().Foreground(termenv.ANSIBrightYellow)
		}
		return s.String()
	}
	store := func(count int) string {
		return r.out.String(fmt.Sprintf("%3d", count)).Foreground(termenv.ANSIGreen).String()
	}
	row := func(label string, pits []int, value func(pit int) int) string {
		cells := make([]string, 0, len(pits))
		for _, pit := range pits {
			cells = append(cells, fmt.Sprintf("%3d", value(pit)))
		}
		return fmt.Sprintf("%-7s%s", label, strings.Join(cells, " "))
	}

	top := []int{12, 11, 10, 9, 8, 7}
	bottom := []int{0, 1, 2, 3, 4, 5}
	label := func(pit int) int { return pit + 1 }
	stones := func(pit int) int { return b.Pits[pit] }

	fmt.Fprintf(&sb, "%14s\n", side(game.Player2, "P2"))
	fmt.Fprintln(&sb, row("Pit:", top, label))
	fmt.Fprintln(&sb, side(game.Player2, row("Stones:", top, stones)))
	fmt.Fprintf(&sb, "%s%s%s\n", store(b.Pits[game.Store2]), strings.Repeat(" ", 24), store(b.Pits[game.Store1]))
	fmt.Fprintln(&sb, side(game.Player1, row("Stones:", bottom, stones)))
	fmt.Fprintln(&sb, row("Pit:", bottom, label))
	fmt.Fprintf(&sb, "%14s\n", side(game.Player1, "P1"))

	r.out.WriteString(sb.String())
}

// Move reports a played move, the search behind it and the new board.
func (r *Renderer) Move(move metrics.MoveMetric, b game.Board) {
	fmt.Fprintf(r.out, "Move for player %d: %d\n", move.Player, move.Pit+1)
	if move.Nodes > 0 {
		fmt.Fprintf(r.out, "Explored %d nodes, pruned %d, depth %d in %s\n",
			move.Nodes, move.Pruned, move.Depth, move.Duration)
	}
	fmt.Fprintln(r.out)
	r.Board(b)
	fmt.Fprintln(r.out)
	if move.ExtraTurn && !b.IsGameOver() {
		fmt.Fprintln(r.out, r.out.String(fmt.Sprintf("Another turn for player %d", move.Player)).Italic())
	}
}

// Result announces the final score. names holds the display names of
// player 1 and player 2; "You" reads as "You win!".
func (r *Renderer) Result(result game.MatchResult, names [2]string) {
	fmt.Fprintln(r.out, r.out.String("Game over!").Bold())
	fmt.Fprintf(r.out, "%s\t: %d\n", names[0], result.P1)
	fmt.Fprintf(r.out, "%s\t: %d\n", names[1], result.P2)

	winner, ok := result.Winner()
	if !ok {
		fmt.Fprintln(r.out, "It's a tie!")
		return
	}
	name := names[winner-1]
	verb := "wins"
	if name == "You" {
		verb = "win"
	}
	fmt.Fprintln(r.out, r.out.String(fmt.Sprintf("%s %s!", name, verb)).Bold().Foreground(termenv.ANSIGreen))
}

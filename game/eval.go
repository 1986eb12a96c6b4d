package game

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// TerminalScale multiplies the final margin of decided positions so that any
// decided win outranks every heuristic score.
const TerminalScale = 1e9

// Evaluate scores a board from the perspective player's point of view: higher
// is better for that player.
type Evaluate func(board Board, perspective Player) float64

// Weights are the coefficients of the heuristic tier. Each feature is a
// difference between the perspective player and the opponent.
type Weights struct {
	Store     float64 `json:"store"`      // Stones in store
	Side      float64 `json:"side"`       // Stones on own side of the board
	ExtraTurn float64 `json:"extra_turn"` // Pits whose sowing ends in own store
	Capture   float64 `json:"capture"`    // Largest capture available
}

// Presets are the heuristic variants the engine ships with, weakest first.
var Presets = map[string]Weights{
	"store":      {Store: 1},
	"store-side": {Store: 0.75, Side: 0.25},
	"tempo":      {Store: 0.7, Side: 0.2, ExtraTurn: 0.5},
	"aggressive": {Store: 1, Side: 0.55, ExtraTurn: 4, Capture: 2},
	"default":    {Store: 1.2, Side: 1, ExtraTurn: 3, Capture: 1.75},
}

// DefaultWeights is the strongest preset.
var DefaultWeights = Presets["default"]

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func LookupWeights(name string) (Weights, error) {
	w, ok := Presets[name]
	if !ok {
		return Weights{}, fmt.Errorf("unknown heuristic %q (want one of %v)", name, PresetNames())
	}
	return w, nil
}

// Bound returns an upper bound on the absolute heuristic score of any board.
func (w Weights) Bound() float64 {
	return math.Abs(w.Store)*Stones +
		math.Abs(w.Side)*Stones +
		math.Abs(w.ExtraTurn)*PitsPerSide +
		math.Abs(w.Capture)*Stones
}

func (w Weights) Validate() error {
	for _, v := range []float64{w.Store, w.Side, w.ExtraTurn, w.Capture} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weight %v is not a finite number", v)
		}
	}
	if w.Bound() >= TerminalScale {
		return fmt.Errorf("weights too large: heuristic bound %v reaches terminal scale %v", w.Bound(), float64(TerminalScale))
	}
	return nil
}

// Evaluator binds the weights into an Evaluate function.
func (w Weights) Evaluator() Evaluate {
	return func(board Board, perspective Player) float64 {
		return w.Evaluate(board, perspective)
	}
}

// Evaluate scores board for perspective. Finished and effectively finished
// positions score in the terminal tier, scaled by TerminalScale; everything
// else is the weighted sum of Features.
func (w Weights) Evaluate(board Board, perspective Player) float64 {
	if score, ok := TerminalScore(board, perspective); ok {
		return score
	}
	return w.Score(ComputeFeatures(board, perspective))
}

// TerminalScore returns the terminal-tier score of a decided board, or false
// if the board is still open. A finished game that ends level scores 0, the
// same as a balanced open position.
func TerminalScore(board Board, perspective Player) (float64, bool) {
	sign := 1.0
	if perspective == Player2 {
		sign = -1
	}

	if board.IsGameOver() {
		p1, p2 := board.FinalScore()
		return sign * TerminalScale * float64(p1-p2), true
	}

	if board.Pits[Store1] > Majority {
		return sign * TerminalScale * float64(2*board.Pits[Store1]-Stones), true
	}
	if board.Pits[Store2] > Majority {
		return -sign * TerminalScale * float64(2*board.Pits[Store2]-Stones), true
	}
	return 0, false
}

// Features are the heuristic inputs, each as perspective minus opponent.
type Features struct {
	Store     int
	Side      int
	ExtraTurn int
	Capture   int
}

func ComputeFeatures(board Board, perspective Player) Features {
	opponent := perspective.Opponent()
	myTurns, myCapture := opportunities(board, perspective)
	oppTurns, oppCapture := opportunities(board, opponent)

	return Features{
		Store:     board.StoreCount(perspective) - board.StoreCount(opponent),
		Side:      board.SideTotal(perspective) - board.SideTotal(opponent),
		ExtraTurn: myTurns - oppTurns,
		Capture:   myCapture - oppCapture,
	}
}

func (w Weights) Score(f Features) float64 {
	return w.Store*float64(f.Store) +
		w.Side*float64(f.Side) +
		w.ExtraTurn*float64(f.ExtraTurn) +
		w.Capture*float64(f.Capture)
}

// opportunities counts p's pits that would end in p's store and finds the
// largest capture p could make, as if it were p's move.
func opportunities(board Board, p Player) (extraTurns, bestCapture int) {
	first, last := p.Pits()
	for pit := first; pit <= last; pit++ {
		if board.Pits[pit] == 0 {
			continue
		}
		extraTurn, captured := board.Preview(p, pit)
		if extraTurn {
			extraTurns++
		}
		bestCapture = max(bestCapture, captured)
	}
	return extraTurns, bestCapture
}

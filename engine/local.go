package engine

import (
	"mancala/experiments/metrics"
	"mancala/game"
	"mancala/meta"
	"mancala/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

// LocalEngine holds the authoritative board of a match between two agents
// in the same process.
type LocalEngine struct {
	Board    game.Board
	Agents   [2]agent.Agent // Indexed by player ID - 1
	maxTurns int
	observer Observer
}

// WithBoard starts the match from board instead of the standard position.
func WithBoard(board game.Board) Option {
	return func(e *LocalEngine) {
		e.Board = board
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(e *LocalEngine) {
		e.observer = observer
	}
}

func NewLocalEngine(agents [2]agent.Agent, options ...Option) *LocalEngine {
	for _, a := range agents {
		if a == nil {
			panic("need an agent for each player")
		}
	}

	e := &LocalEngine{
		Board:    game.NewBoard(),
		Agents:   agents,
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	if err := e.Board.Validate(); err != nil {
		panic(err)
	}
	return e
}

// Run executes the game loop. When the game is over the remaining stones are
// swept into the stores and the result is computed from the final score.
func (e *LocalEngine) Run() (game.MatchResult, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Board.Turn),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("player %d is starting", e.Board.Turn)

	step := 1
	for !e.Board.IsGameOver() {
		if step > e.maxTurns {
			log.Warn().Msgf("stopped after %d turns (no result yet)", e.maxTurns)
			gameMetric.Aborted = true
			break
		}

		player := e.Board.Turn
		pit, searchMetric := e.Agents[player-1].FindMove(e.Board)
		if pit == agent.Resign {
			log.Info().Msgf("player %d resigned", player)
			gameMetric.Aborted = true
			break
		}
		if !e.Board.IsLegal(pit) {
			// Agents must only return legal moves; recover with the first one
			moves := e.Board.LegalMoves()
			log.Warn().Int("pit", pit).Int("player", int(player)).Msgf("agent returned an illegal move => playing %d", moves[0])
			pit = moves[0]
		}

		extraTurn := e.Board.Apply(pit)
		if !extraTurn {
			e.Board.Turn = player.Opponent()
		}

		move := metrics.MoveMetric{
			Step:         step,
			Player:       int(player),
			Pit:          pit,
			ExtraTurn:    extraTurn,
			SearchMetric: searchMetric,
		}
		moveMetrics = append(moveMetrics, move)
		log.Debug().Int("step", step).Int("player", int(player)).Int("pit", pit).Bool("extra_turn", extraTurn).Str("board", e.Board.String()).Msg("move played")

		if e.observer != nil {
			e.observer(move, e.Board)
		}
		step++
	}

	if e.Board.IsGameOver() {
		e.Board.Sweep()
	}
	result := e.Board.Result()

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.P1Score, gameMetric.P2Score = result.P1, result.P2
	if winner, ok := result.Winner(); ok {
		gameMetric.Winner = int(winner)
	}

	log.Info().Msgf("match over after %d moves: %s", gameMetric.TotalMoves, result)
	return result, gameMetric, moveMetrics
}

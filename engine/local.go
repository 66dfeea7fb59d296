package engine

import (
	"fmt"
	"time"

	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

// Agent decides one move for side on board. The engine only calls an agent
// when side has at least one legal move.
type Agent interface {
	FindMove(board game.Board, side game.Cell) (game.Move, metrics.SearchMetric)
}

// Engine drives a local game between two agents, one per side. Dark always
// moves first.
type Engine struct {
	Board game.Board
	Turn  game.Cell

	agents map[game.Cell]Agent
}

func Local(dark, light Agent) *Engine {
	if dark == nil || light == nil {
		panic("engine needs an agent for each side")
	}
	return &Engine{
		Board: game.NewBoard(),
		Turn:  game.Dark,
		agents: map[game.Cell]Agent{
			game.Dark:  dark,
			game.Light: light,
		},
	}
}

// Run executes the game loop until neither side can move. It returns the
// winning side (game.Empty for a tie) along with game and per-move metrics.
func (e *Engine) Run() (game.Cell, metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.Turn)

	step := 1
	for !e.Board.IsTerminal() {
		moves := e.Board.LegalMoves(e.Turn)
		if len(moves) == 0 {
			log.Info().Msgf("%s is out of moves, turn passes to %s", e.Turn, e.Turn.Opponent())
			e.Turn = e.Turn.Opponent()
			continue
		}

		move, searchMetric := e.agents[e.Turn].FindMove(e.Board, e.Turn)
		if !contains(moves, move) {
			panic(fmt.Sprintf("agent for %s returned illegal move %s", e.Turn, move))
		}

		e.Board = e.Board.Apply(move, e.Turn)
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         e.Turn.String(),
			SearchMetric: searchMetric,
		})
		log.Info().Msgf("step %d: %s played %s (dark %d, light %d)",
			step, e.Turn, move, e.Board.Score(game.Dark), e.Board.Score(game.Light))

		step++
		e.Turn = e.Turn.Opponent()
	}

	winner := e.winner()
	end := time.Now()
	gameMetric := metrics.GameMetric{
		Winner:     winnerLabel(winner),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: step - 1,
	}
	log.Info().Msgf("game over after %d moves, winner: %s", gameMetric.TotalMoves, gameMetric.Winner)

	return winner, gameMetric, moveMetrics
}

// winner compares final disc counts; equal counts tie, reported as Empty.
func (e *Engine) winner() game.Cell {
	dark := e.Board.Score(game.Dark)
	light := e.Board.Score(game.Light)
	switch {
	case dark > light:
		return game.Dark
	case light > dark:
		return game.Light
	default:
		return game.Empty
	}
}

func winnerLabel(winner game.Cell) string {
	if winner == game.Empty {
		return "tie"
	}
	return winner.String()
}

func contains(moves []game.Move, move game.Move) bool {
	for _, m := range moves {
		if m == move {
			return true
		}
	}
	return false
}

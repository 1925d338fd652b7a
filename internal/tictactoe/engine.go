package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tui/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

var ErrInvalidCell = errors.New("invalid cell index")

// Engine - holds a single game: the board, the active player and the outcome.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Engine struct {
	board   entity.Board
	turn    entity.Mark
	outcome entity.Outcome
	moves   int
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.Reset()

	return engine
}

// AttemptMove - puts the active player's mark on the cell and evaluates the result.
// Every rejection matches apperror.ErrIllegalMove and leaves the game untouched.
func (that *Engine) AttemptMove(cell int) error {
	if err := that.CanMove(cell); err != nil {
		return err
	}

	that.board[cell] = that.turn
	that.moves++
	that.updateOutcome()

	return nil
}

// CanMove - reports whether AttemptMove would accept the cell.
func (that *Engine) CanMove(cell int) error {
	if that.outcome.IsTerminal() {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	}

	if cell < 0 || cell >= len(that.board) {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, ErrInvalidCell, cell)
	}

	if that.board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, apperror.ErrCellOccupied, cell)
	}

	return nil
}

// updateOutcome - a completed line wins even when it also fills the board.
func (that *Engine) updateOutcome() {
	switch {
	case that.board.HasLine(that.turn):
		that.outcome = entity.Won(that.turn)
	case that.board.IsFull():
		that.outcome = entity.Tie()
	default:
		that.turn = that.turn.Opponent()
	}
}

func (that *Engine) Reset() {
	that.board = entity.Board{}
	that.turn = entity.PlayerX
	that.outcome = entity.Ongoing()
	that.moves = 0
}

func (that *Engine) State() entity.State {
	return entity.State{
		Board:   that.board,
		Turn:    that.turn,
		Outcome: that.outcome,
	}
}

// Moves - number of accepted moves since the last reset.
func (that *Engine) Moves() int {
	return that.moves
}

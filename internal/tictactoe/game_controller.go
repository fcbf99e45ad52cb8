package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Engine owns the board and turn state of a single game. It performs no
// synchronization; concurrent callers must serialize access themselves.
type Engine struct {
	board    entity.Board
	turn     entity.Player
	status   entity.Status
	lastMove *entity.Move
	moves    int
}

// NewGame - returns an engine with an empty board and X to move.
func NewGame() *Engine {
	return &Engine{
		turn:   entity.PlayerX,
		status: entity.InProgress(),
	}
}

// ApplyMove - places the current player's mark at (row, col).
// On error the engine is left untouched.
func (that *Engine) ApplyMove(row, col int) error {
	if that.status.IsTerminal() {
		return fmt.Errorf("%w: %s", apperror.ErrGameAlreadyOver, that.status)
	}

	if err := that.validateMove(row, col); err != nil {
		return err
	}

	that.board[row][col] = that.turn.Mark()
	that.lastMove = &entity.Move{Player: that.turn, Row: row, Col: col}
	that.moves++

	that.updateGameStatus()

	return nil
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(row, col int) error {
	if !entity.InRange(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCoordinateOutOfRange, row, col)
	}

	if !that.board[row][col].IsEmpty() {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *Engine) updateGameStatus() {
	that.status = that.board.Result()

	if !that.status.IsTerminal() {
		that.turn = that.turn.Opponent()
	}
}

func (that *Engine) Status() entity.Status {
	return that.status
}

// Snapshot returns a copy of the board.
func (that *Engine) Snapshot() entity.Board {
	return that.board
}

// CurrentPlayer is the player to move. Once the game is over it keeps
// pointing at whoever made the final move.
func (that *Engine) CurrentPlayer() entity.Player {
	return that.turn
}

func (that *Engine) LastMove() (entity.Move, bool) {
	if that.lastMove == nil {
		return entity.Move{}, false
	}
	return *that.lastMove, true
}

func (that *Engine) MoveCount() int {
	return that.moves
}

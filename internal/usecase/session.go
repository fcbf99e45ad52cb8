package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type gameEngine interface {
	ApplyMove(row, col int) error
	Status() entity.Status
	Snapshot() entity.Board
	CurrentPlayer() entity.Player
	LastMove() (entity.Move, bool)
	MoveCount() int
}

type inputProvider interface {
	ReadMove(prompt string) (int, int, error)
}

type outputPresenter interface {
	Welcome() error
	Turn(player entity.Player) error
	Prompt(player entity.Player) string
	Board(board entity.Board) error
	Retry(reason error) error
	Result(status entity.Status) error
}

// Session drives one game from the empty board to a win or a draw.
type Session struct {
	logger *slog.Logger

	engine    gameEngine
	input     inputProvider
	presenter outputPresenter
}

func NewSession(logger *slog.Logger, engine gameEngine, input inputProvider, output outputPresenter) *Session {
	return &Session{
		logger: logger.With("component", "session"),

		engine:    engine,
		input:     input,
		presenter: output,
	}
}

// Run - plays until the game reaches a terminal status and returns it.
func (that *Session) Run(ctx context.Context) (entity.Status, error) {
	log := that.logger.With("method", "Run")

	if err := that.presenter.Welcome(); err != nil {
		return entity.Status{}, fmt.Errorf("failed to greet players: %w", err)
	}

	if err := that.presenter.Board(that.engine.Snapshot()); err != nil {
		return entity.Status{}, fmt.Errorf("failed to render board: %w", err)
	}

	for !that.engine.Status().IsTerminal() {
		if err := ctx.Err(); err != nil {
			return that.engine.Status(), fmt.Errorf("session stopped: %w", err)
		}

		if err := that.MakeTurn(ctx); err != nil {
			return that.engine.Status(), err
		}
	}

	status := that.engine.Status()
	lastMove, _ := that.engine.LastMove()
	log.Info("game finished", "status", status.String(), "moves", that.engine.MoveCount(), "last_move", lastMove)

	if err := that.presenter.Result(status); err != nil {
		return status, fmt.Errorf("failed to render result: %w", err)
	}

	return status, nil
}

// MakeTurn - asks the current player for a move until one is accepted, then renders the board.
func (that *Session) MakeTurn(ctx context.Context) error {
	player := that.engine.CurrentPlayer()
	log := that.logger.With("method", "MakeTurn", "player", player)

	if err := that.presenter.Turn(player); err != nil {
		return fmt.Errorf("failed to announce turn: %w", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("session stopped: %w", err)
		}

		row, col, err := that.input.ReadMove(that.presenter.Prompt(player))
		if err == nil {
			err = that.engine.ApplyMove(row, col)
		}

		if err == nil {
			log.Debug("move accepted", "row", row, "col", col)
			break
		}

		if errors.Is(err, apperror.ErrGameAlreadyOver) {
			return fmt.Errorf("move after the end of the game: %w", err)
		}

		if !apperror.IsRetryable(err) {
			return fmt.Errorf("failed to get move: %w", err)
		}

		log.Debug("move rejected", "row", row, "col", col, "error", err)

		if err = that.presenter.Retry(err); err != nil {
			return fmt.Errorf("failed to report rejected move: %w", err)
		}
	}

	if err := that.presenter.Board(that.engine.Snapshot()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

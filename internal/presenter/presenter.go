package presenter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	msgWelcome        = "Welcome to TicTacToe!"
	msgMalformedInput = "Please enter two integers, e.g. 1 2"
	msgOutOfRange     = "Please use a valid value, e.g. 0, 1 or 2"
	msgCellOccupied   = "You must choose a position that doesn't have a symbol already placed on it!"
	msgDraw           = "It's a draw."
)

// Presenter renders the game as plain text.
type Presenter struct {
	out         io.Writer
	emptySymbol string
	delimiter   string
}

func New(out io.Writer, conf config.Presenter) *Presenter {
	return &Presenter{
		out:         out,
		emptySymbol: conf.GetEmptySymbol(),
		delimiter:   conf.GetDelimiter(),
	}
}

func (that *Presenter) Welcome() error {
	return that.printf("%s\n\n", msgWelcome)
}

func (that *Presenter) Turn(player entity.Player) error {
	return that.printf("%s turn!\n", player)
}

func (that *Presenter) Prompt(player entity.Player) string {
	return fmt.Sprintf("Player %s, enter row and column (0-2): ", player)
}

// Board - prints one row per line followed by a blank line.
func (that *Presenter) Board(board entity.Board) error {
	var builder strings.Builder

	for _, row := range board {
		symbols := make([]string, 0, len(row))
		for _, cell := range row {
			symbols = append(symbols, that.symbol(cell))
		}

		builder.WriteString(strings.Join(symbols, that.delimiter))
		builder.WriteString("\n")
	}
	builder.WriteString("\n")

	return that.printf("%s", builder.String())
}

// Retry - explains why the last input was rejected.
func (that *Presenter) Retry(reason error) error {
	return that.printf("%s\n", RetryMessage(reason))
}

func (that *Presenter) Result(status entity.Status) error {
	return that.printf("%s\n", ResultMessage(status))
}

func (that *Presenter) symbol(cell entity.Cell) string {
	if cell.IsEmpty() {
		return that.emptySymbol
	}
	return string(cell)
}

func (that *Presenter) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func RetryMessage(reason error) string {
	switch {
	case errors.Is(reason, apperror.ErrMalformedInput):
		return msgMalformedInput
	case errors.Is(reason, apperror.ErrCoordinateOutOfRange):
		return msgOutOfRange
	case errors.Is(reason, apperror.ErrCellOccupied):
		return msgCellOccupied
	default:
		return fmt.Sprintf("Invalid move: %v", reason)
	}
}

func ResultMessage(status entity.Status) string {
	switch status.State {
	case entity.StateWon:
		return fmt.Sprintf("%s wins!", status.Winner)
	case entity.StateDraw:
		return msgDraw
	default:
		return "Game in progress."
	}
}

package presenter

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenter_Board(t *testing.T) {
	t.Run("Renders rows with the default symbols", func(t *testing.T) {
		// Given: a presenter with default settings
		var out bytes.Buffer
		presenter := New(&out, config.Presenter{})

		board := entity.Board{
			{entity.CellX, entity.EmptyCell, entity.CellO},
			{entity.EmptyCell, entity.CellX, entity.EmptyCell},
			{entity.CellO, entity.EmptyCell, entity.CellX},
		}

		// When: rendering the board
		err := presenter.Board(board)

		// Then: one row per line is printed with " | " between symbols
		require.NoError(t, err)
		assert.Equal(t, "X | * | O\n* | X | *\nO | * | X\n\n", out.String())
	})

	t.Run("Uses configured placeholder and delimiter", func(t *testing.T) {
		// Given: a presenter with custom settings
		var out bytes.Buffer
		presenter := New(&out, config.Presenter{EmptySymbol: ".", Delimiter: " "})

		// When: rendering an empty board
		err := presenter.Board(entity.Board{})

		// Then: the custom symbols are used
		require.NoError(t, err)
		assert.Equal(t, ". . .\n. . .\n. . .\n\n", out.String())
	})
}

func TestPresenter_Messages(t *testing.T) {
	t.Run("Welcome, turn and prompt", func(t *testing.T) {
		var out bytes.Buffer
		presenter := New(&out, config.Presenter{})

		require.NoError(t, presenter.Welcome())
		require.NoError(t, presenter.Turn(entity.PlayerO))

		assert.Equal(t, "Welcome to TicTacToe!\n\nO turn!\n", out.String())
		assert.Equal(t, "Player X, enter row and column (0-2): ", presenter.Prompt(entity.PlayerX))
	})

	t.Run("Result", func(t *testing.T) {
		var out bytes.Buffer
		presenter := New(&out, config.Presenter{})

		require.NoError(t, presenter.Result(entity.Won(entity.PlayerX)))
		require.NoError(t, presenter.Result(entity.Draw()))

		assert.Equal(t, "X wins!\nIt's a draw.\n", out.String())
	})

	t.Run("Retry message per failure kind", func(t *testing.T) {
		for reason, want := range map[error]string{
			fmt.Errorf("%w: %q", apperror.ErrMalformedInput, "a b"): msgMalformedInput,
			fmt.Errorf("%w: row 3", apperror.ErrCoordinateOutOfRange): msgOutOfRange,
			apperror.ErrCellOccupied:                                  msgCellOccupied,
		} {
			// Given: a presenter
			var out bytes.Buffer
			presenter := New(&out, config.Presenter{})

			// When: reporting a rejected move
			err := presenter.Retry(reason)

			// Then: the matching message is printed
			require.NoError(t, err)
			assert.Equal(t, want+"\n", out.String())
		}
	})
}

func TestResultMessage_InProgress(t *testing.T) {
	assert.Equal(t, "Game in progress.", ResultMessage(entity.InProgress()))
}

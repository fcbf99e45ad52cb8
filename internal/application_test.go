package application

import (
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSession(t *testing.T) {
	t.Run("Anti-diagonal win", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: moves for an anti-diagonal win by X
		in := st.Input("0 2", "0 0", "1 1", "0 1", "2 0")

		// When: running a session
		status, err := RunSession(ctx, st.Logger, &config.Config{}, in, st.Output)

		// Then: X wins after the fifth move
		require.NoError(t, err)
		assert.Equal(t, entity.Won(entity.PlayerX), status)
		assert.Contains(t, st.Output.String(), "O | O | X\n* | X | *\nX | * | *\n\nX wins!\n")
	})

	t.Run("Uses the configured presentation", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a custom placeholder and delimiter
		conf := &config.Config{Presenter: config.Presenter{EmptySymbol: "_", Delimiter: ","}}
		in := st.Input("0 0", "1 1", "0 1", "2 2", "0 2")

		// When: running a session
		status, err := RunSession(ctx, st.Logger, conf, in, st.Output)

		// Then: the board uses the custom symbols
		require.NoError(t, err)
		assert.Equal(t, entity.Won(entity.PlayerX), status)
		assert.Contains(t, st.Output.String(), "X,X,X\n_,O,_\n_,_,O\n")
	})

	t.Run("Closed input is an error", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: no input at all
		in := st.Input()

		// When: running a session
		_, err := RunSession(ctx, st.Logger, &config.Config{}, in, st.Output)

		// Then: the closed stream is reported
		require.ErrorIs(t, err, console.ErrInputClosed)
		assert.True(t, strings.HasPrefix(st.Output.String(), "Welcome to TicTacToe!"))
	})
}

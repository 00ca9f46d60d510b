package application

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Run("Full session transcript", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: X wins the main diagonal after one rejected line
		input := st.Input("1 1", "1 2", "5 5", "2 2", "1 3", "3 3")

		// When: a session is played
		outcome, err := Play(ctx, st.Logger, st.Config, input, st.Out)

		// Then: the transcript holds every board, the rejection and the result
		require.NoError(t, err)
		assert.Equal(t, entity.XWins, outcome)

		lines := st.OutputLines()
		assert.Equal(t, "X wins", lines[len(lines)-1])
		assert.Contains(t, lines, "Coordinates should be from 1 to 3!")
		assert.Equal(t, []string{"---------", "| _ _ _ |", "| _ _ _ |", "| _ _ _ |", "---------"}, lines[:5])
		assert.Equal(t, []string{"---------", "| X O O |", "| _ X _ |", "| _ _ X |", "---------"}, lines[len(lines)-6:len(lines)-1])

		// Then: the finished game is logged with the winning mark and board
		assert.Contains(t, st.Logs.String(), `"msg":"game finished"`)
		assert.Contains(t, st.Logs.String(), `"last_mark":"X"`)
		assert.Contains(t, st.Logs.String(), `"board":"XOO_X___X"`)
	})

	t.Run("Relaxed input accepts padded coordinates", func(t *testing.T) {
		ctx, st := suite.New(t)
		st.Config.RelaxedInput = true

		// Given: padded lines completing the top row for X
		input := st.Input(" 1 1 ", "2  1", "1 2", "2 2", "1   3")

		// When: a session is played
		outcome, err := Play(ctx, st.Logger, st.Config, input, st.Out)

		// Then: X wins
		require.NoError(t, err)
		assert.Equal(t, entity.XWins, outcome)
	})

	t.Run("Starts from the initial board", func(t *testing.T) {
		ctx, st := suite.New(t)
		st.Config.InitialBoard = "XX_OO____"

		// When: X completes the top row
		outcome, err := Play(ctx, st.Logger, st.Config, st.Input("1 3"), st.Out)

		// Then: X wins on its first move
		require.NoError(t, err)
		assert.Equal(t, entity.XWins, outcome)
	})

	t.Run("Rejects a full initial board", func(t *testing.T) {
		ctx, st := suite.New(t)
		st.Config.InitialBoard = "XOXXOOOXX"

		// When: a session is started
		_, err := Play(ctx, st.Logger, st.Config, st.Input("1 1"), st.Out)

		// Then: it fails before rendering anything
		require.ErrorIs(t, err, apperror.ErrBoardFull)
		assert.Empty(t, st.Out.String())
	})

	t.Run("Exhausted input is fatal", func(t *testing.T) {
		ctx, st := suite.New(t)

		// When: the input ends mid-game
		_, err := Play(ctx, st.Logger, st.Config, st.Input("1 1"), st.Out)

		// Then: the closed input is returned
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Contains(t, st.Logs.String(), `"msg":"game stopped"`)
		assert.Contains(t, st.Logs.String(), `"turn":"O"`)
	})
}

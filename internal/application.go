package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

// RunApp - runs one game session on the process console.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	if _, err := Play(context.Background(), logger, conf, os.Stdin, os.Stdout); err != nil {
		return err
	}

	return nil
}

// Play - runs one game session reading moves from in and writing the board to out.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (entity.Outcome, error) {
	sessionLogger := logger.With("session_id", uuid.NewString())
	log := sessionLogger.With("component", "app")

	board, err := entity.ParseBoard(conf.InitialBoard)
	if err != nil {
		return entity.InProgress, fmt.Errorf("could not build initial board: %w", err)
	}

	if !board.HasEmptyCell() {
		return entity.InProgress, fmt.Errorf("could not start game: %w", apperror.ErrBoardFull)
	}

	reader := tictactoe.NewInputReader(sessionLogger, in, out, !conf.RelaxedInput)
	controller := tictactoe.NewGameController(sessionLogger, board, entity.Cell(conf.FirstMover), reader, out)

	log.Info("Starting game", "first_mover", conf.FirstMover, "relaxed_input", conf.RelaxedInput)

	outcome, err := controller.Run(ctx)
	if err != nil {
		log.Warn("game stopped", "turn", controller.Turn(), "board", controller.Board().String(), "error", err)

		return outcome, fmt.Errorf("game stopped: %w", err)
	}

	log.Info("game finished", "outcome", outcome.String(), "last_mark", controller.Turn(), "board", controller.Board().String())

	return outcome, nil
}

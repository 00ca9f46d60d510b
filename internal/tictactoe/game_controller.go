package tictactoe

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type moveReader interface {
	ReadMove(ctx context.Context, board *entity.Board) (entity.Move, error)
}

// GameController - owns the board and the active mark for one session.
type GameController struct {
	logger *slog.Logger
	reader moveReader
	out    io.Writer

	board *entity.Board
	turn  entity.Cell
}

// NewGameController - firstMover makes the first move; the active mark flips before every move.
func NewGameController(logger *slog.Logger, board *entity.Board, firstMover entity.Cell, reader moveReader, out io.Writer) *GameController {
	return &GameController{
		logger: logger.With("component", "game"),
		reader: reader,
		out:    out,
		board:  board,
		turn:   firstMover.Opponent(),
	}
}

// Run - plays until the board is finished. Returns the final outcome.
func (that *GameController) Run(ctx context.Context) (entity.Outcome, error) {
	if err := that.render(); err != nil {
		return entity.InProgress, err
	}

	for {
		that.turn = that.turn.Opponent()

		move, err := that.reader.ReadMove(ctx, that.board)
		if err != nil {
			return entity.InProgress, fmt.Errorf("failed to read move: %w", err)
		}

		if err = MakeTurn(that.board, that.turn, move); err != nil {
			return entity.InProgress, fmt.Errorf("failed make turn: %w", err)
		}

		that.logger.Debug("move applied", "mark", that.turn, "row", move.Row+1, "col", move.Col+1)

		if err = that.render(); err != nil {
			return entity.InProgress, err
		}

		outcome := Analyze(that.board.Flat())
		if !outcome.IsFinished() {
			continue
		}

		if _, err = fmt.Fprintln(that.out, outcome); err != nil {
			return outcome, fmt.Errorf("failed to write outcome: %w", err)
		}

		return outcome, nil
	}
}

func (that *GameController) Board() *entity.Board {
	return that.board
}

// Turn - the active mark: the last mover once finished, the mark awaiting input if Run failed.
func (that *GameController) Turn() entity.Cell {
	return that.turn
}

func (that *GameController) render() error {
	if _, err := io.WriteString(that.out, that.board.Render()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

// MakeTurn - places mark on the board.
func MakeTurn(board *entity.Board, mark entity.Cell, move entity.Move) error {
	if !board.IsEmpty(move) {
		return apperror.ErrCellOccupied
	}

	board.Set(move.Row, move.Col, mark)

	return nil
}

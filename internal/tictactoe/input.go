package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	coordinateMin = 1
	coordinateMax = entity.BoardSize

	strictLineLength = 3
)

var numericToken = regexp.MustCompile(`^\d+$`)

// ParseMove - validates one input line as "<row> <col>" (1-based) targeting an empty cell.
// In strict mode the line must be exactly 3 characters long.
func ParseMove(line string, board *entity.Board, strict bool) (entity.Move, error) {
	tokens, err := splitCoordinates(line, strict)
	if err != nil {
		return entity.Move{}, err
	}

	if !numericToken.MatchString(tokens[0]) || !numericToken.MatchString(tokens[1]) {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrNotNumeric, line)
	}

	row, err := parseCoordinate(tokens[0])
	if err != nil {
		return entity.Move{}, err
	}

	col, err := parseCoordinate(tokens[1])
	if err != nil {
		return entity.Move{}, err
	}

	move := entity.Move{Row: row - 1, Col: col - 1}
	if !board.IsEmpty(move) {
		return entity.Move{}, fmt.Errorf("%w: %d %d", apperror.ErrCellOccupied, row, col)
	}

	return move, nil
}

func splitCoordinates(line string, strict bool) ([]string, error) {
	if !strict {
		tokens := strings.Fields(line)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("%w: %q", apperror.ErrMalformedCoordinates, line)
		}

		return tokens, nil
	}

	if len(line) != strictLineLength || !strings.Contains(line, " ") {
		return nil, fmt.Errorf("%w: %q", apperror.ErrMalformedCoordinates, line)
	}

	// "1 " carries no second coordinate, so trailing empty tokens are dropped
	tokens := strings.Split(line, " ")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}

	if len(tokens) != 2 {
		return nil, fmt.Errorf("%w: %q", apperror.ErrMalformedCoordinates, line)
	}

	return tokens, nil
}

func parseCoordinate(token string) (int, error) {
	value, err := strconv.Atoi(token)
	if err != nil || value < coordinateMin || value > coordinateMax {
		return 0, fmt.Errorf("%w: %s", apperror.ErrOutOfRange, token)
	}

	return value, nil
}

// InputReader - reads coordinate lines until one is a legal move.
type InputReader struct {
	logger  *slog.Logger
	in      *bufio.Reader
	out     io.Writer
	strict  bool
}

func NewInputReader(logger *slog.Logger, in io.Reader, out io.Writer, strict bool) *InputReader {
	return &InputReader{
		logger:  logger.With("component", "input"),
		in:      bufio.NewReader(in),
		out:     out,
		strict:  strict,
	}
}

// ReadMove - blocks until a valid move for the board is entered.
// Every rejected line prints its message and a fresh line is read.
func (that *InputReader) ReadMove(ctx context.Context, board *entity.Board) (entity.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return entity.Move{}, fmt.Errorf("read move: %w", err)
		}

		line, err := that.readLine()
		if err != nil {
			return entity.Move{}, err
		}

		move, err := ParseMove(line, board, that.strict)
		if err == nil {
			return move, nil
		}

		that.logger.Debug("input rejected", "line", line, "error", err)

		if _, err = fmt.Fprintln(that.out, apperror.UserMessage(err)); err != nil {
			return entity.Move{}, fmt.Errorf("failed to write message: %w", err)
		}
	}
}

// readLine - next line without its terminator, of any length.
// A final line without a newline is still returned.
func (that *InputReader) readLine() (string, error) {
	line, err := that.in.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		if line == "" {
			return "", apperror.ErrInputClosed
		}
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r"), nil
}

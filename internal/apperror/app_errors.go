package apperror

import "errors"

var (
	ErrMalformedCoordinates = errors.New("malformed coordinates")
	ErrNotNumeric           = errors.New("coordinates are not numbers")
	ErrOutOfRange           = errors.New("coordinates out of range")
	ErrCellOccupied         = errors.New("cell is already occupied")
	ErrInputClosed          = errors.New("input stream closed")
	ErrBoardFull            = errors.New("board has no empty cells")
)

// UserMessage - returns the console line printed for a rejected input.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotNumeric):
		return "You should enter numbers!"
	case errors.Is(err, ErrCellOccupied):
		return "This cell is occupied! Choose another one!"
	case errors.Is(err, ErrMalformedCoordinates), errors.Is(err, ErrOutOfRange):
		return "Coordinates should be from 1 to 3!"
	default:
		return err.Error()
	}
}

package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Cell - content of one board square.
type Cell string

const (
	EmptyCell Cell = "_"
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
)

const (
	BoardSize = 3
	CellCount = BoardSize * BoardSize

	borderRule = "---------"
)

var ErrInvalidSnapshot = errors.New("invalid board snapshot")

// Board - fixed 3x3 grid, addressed by zero-based row and column.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// Move - zero-based coordinates of a cell to mark.
type Move struct {
	Row int
	Col int
}

func NewBoard() *Board {
	board := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			board.cells[row][col] = EmptyCell
		}
	}

	return board
}

// ParseBoard - builds a board from a row-major snapshot like "XXXOO____".
func ParseBoard(snapshot string) (*Board, error) {
	if len(snapshot) != CellCount {
		return nil, fmt.Errorf("%w: want %d cells, got %d", ErrInvalidSnapshot, CellCount, len(snapshot))
	}

	board := &Board{}
	for i, symbol := range snapshot {
		cell := Cell(symbol)
		if !cell.IsValid() {
			return nil, fmt.Errorf("%w: unknown cell %q at %d", ErrInvalidSnapshot, symbol, i)
		}

		board.cells[i/BoardSize][i%BoardSize] = cell
	}

	return board, nil
}

// Get - row and col must be within [0, 2].
func (that *Board) Get(row, col int) Cell {
	return that.cells[row][col]
}

// Set - row and col must be within [0, 2].
func (that *Board) Set(row, col int, mark Cell) {
	that.cells[row][col] = mark
}

func (that *Board) IsEmpty(move Move) bool {
	return that.Get(move.Row, move.Col) == EmptyCell
}

func (that *Board) HasEmptyCell() bool {
	for _, cell := range that.Flat() {
		if cell == EmptyCell {
			return true
		}
	}

	return false
}

// Flat - row-major copy of the cells.
func (that *Board) Flat() [CellCount]Cell {
	var flat [CellCount]Cell
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			flat[row*BoardSize+col] = that.cells[row][col]
		}
	}

	return flat
}

func (that *Board) String() string {
	var sb strings.Builder
	for _, cell := range that.Flat() {
		sb.WriteString(string(cell))
	}

	return sb.String()
}

// Render - bordered text grid, one line per row.
func (that *Board) Render() string {
	var sb strings.Builder

	sb.WriteString(borderRule + "\n")
	for row := 0; row < BoardSize; row++ {
		sb.WriteString("| ")
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(string(that.cells[row][col]) + " ")
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(borderRule + "\n")

	return sb.String()
}

func (c Cell) IsValid() bool {
	return c == EmptyCell || c == PlayerX || c == PlayerO
}

// Opponent - the other mark; EmptyCell has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

package tictactoe

import "github.com/rocketscienceinc/tictactoe-console/internal/entity"

// WinCombos - row-major indexes of the 8 triples: rows, columns, diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Analyze - classifies a flattened board. Sanity checks win over wins, wins over draw.
func Analyze(board [entity.CellCount]entity.Cell) entity.Outcome {
	impossible := isImpossible(board)
	winsX := hasTriple(board, entity.PlayerX)
	winsO := hasTriple(board, entity.PlayerO)

	switch {
	case impossible || (winsX && winsO):
		return entity.Impossible
	case winsX:
		return entity.XWins
	case winsO:
		return entity.OWins
	case isDraw(board):
		return entity.Draw
	default:
		return entity.InProgress
	}
}

func hasTriple(board [entity.CellCount]entity.Cell, mark entity.Cell) bool {
	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

// isImpossible - mark counts can differ by at most one in alternating play.
func isImpossible(board [entity.CellCount]entity.Cell) bool {
	var countX, countO int
	for _, cell := range board {
		switch cell {
		case entity.PlayerX:
			countX++
		case entity.PlayerO:
			countO++
		}
	}

	diff := countX - countO
	return diff > 1 || diff < -1
}

func isDraw(board [entity.CellCount]entity.Cell) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

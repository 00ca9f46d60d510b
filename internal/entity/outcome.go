package entity

// Outcome - classification of a board after a move.
type Outcome int

const (
	InProgress Outcome = iota
	XWins
	OWins
	Draw
	Impossible
)

func (o Outcome) IsFinished() bool {
	return o != InProgress
}

// String - the line printed when the game stops.
func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X wins"
	case OWins:
		return "O wins"
	case Draw:
		return "Draw"
	case Impossible:
		return "Impossible"
	default:
		return "Game not finished"
	}
}

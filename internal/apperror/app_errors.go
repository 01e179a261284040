package apperror

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is the parent of every rejected move.
var ErrIllegalMove = errors.New("illegal move")

var (
	ErrGameFinished = fmt.Errorf("%w: game is already finished", ErrIllegalMove)
	ErrOutOfBounds  = fmt.Errorf("%w: cell is out of bounds", ErrIllegalMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrIllegalMove)
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrIllegalMove)
)

var (
	ErrInvalidRules  = errors.New("invalid game rules")
	ErrUnknownPlayer = errors.New("unknown player")
	ErrScoreNotFound = errors.New("score not found")
)

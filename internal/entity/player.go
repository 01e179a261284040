package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

// Opponent - returns the player who moves after p.
func (that Player) Opponent() Player {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (that Player) IsValid() bool {
	return that == Player1 || that == Player2
}

func (that Player) String() string {
	switch that {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

// Marks holds the display mark of each player.
type Marks struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

func DefaultMarks() Marks {
	return Marks{Player1: "X", Player2: "O"}
}

func (that Marks) Of(player Player) string {
	switch player {
	case Player1:
		return that.Player1
	case Player2:
		return that.Player2
	default:
		return ""
	}
}

// PlayerByMark - resolves a display mark back to its player.
func (that Marks) PlayerByMark(mark string) (Player, error) {
	switch mark {
	case that.Player1:
		return Player1, nil
	case that.Player2:
		return Player2, nil
	default:
		return NoPlayer, fmt.Errorf("%w: mark %q", apperror.ErrUnknownPlayer, mark)
	}
}

package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
)

type StatusKind string

const (
	StatusInProgress StatusKind = "in_progress"
	StatusWon        StatusKind = "won"
	StatusDraw       StatusKind = "draw"
)

// Status is InProgress, Won(player) or Draw. Winner is set only for Won.
type Status struct {
	Kind   StatusKind `json:"kind"`
	Winner Player     `json:"winner,omitempty"`
}

func InProgress() Status {
	return Status{Kind: StatusInProgress}
}

func Won(player Player) Status {
	return Status{Kind: StatusWon, Winner: player}
}

func Draw() Status {
	return Status{Kind: StatusDraw}
}

func (that Status) IsInProgress() bool {
	return that.Kind == StatusInProgress
}

func (that Status) IsWon() bool {
	return that.Kind == StatusWon
}

func (that Status) IsDraw() bool {
	return that.Kind == StatusDraw
}

func (that Status) IsFinished() bool {
	return that.IsWon() || that.IsDraw()
}

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type Cell struct {
	Mark              Player `json:"mark"`
	PartOfWinningLine bool   `json:"part_of_winning_line"`
}

func (that Cell) IsEmpty() bool {
	return that.Mark == NoPlayer
}

// Board is a row-major grid of cells.
type Board [][]Cell

func NewBoard(rows, columns int) Board {
	board := make(Board, rows)
	for i := range board {
		board[i] = make([]Cell, columns)
	}

	return board
}

func (that Board) Rows() int {
	return len(that)
}

func (that Board) Columns() int {
	if len(that) == 0 {
		return 0
	}
	return len(that[0])
}

func (that Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.Rows() && col >= 0 && col < that.Columns()
}

func (that Board) At(c Coord) Cell {
	return that[c.Row][c.Col]
}

// Filled - counts the non-empty cells.
func (that Board) Filled() int {
	filled := 0
	for _, row := range that {
		for _, cell := range row {
			if !cell.IsEmpty() {
				filled++
			}
		}
	}

	return filled
}

// Clone returns a deep copy, so a published board is never shared with its successor.
func (that Board) Clone() Board {
	if that == nil {
		return nil
	}

	dest := make(Board, len(that))
	for i, row := range that {
		dest[i] = make([]Cell, len(row))
		copy(dest[i], row)
	}

	return dest
}

// GameState is the immutable snapshot of one game.
type GameState struct {
	Board         Board   `json:"board"`
	CurrentPlayer Player  `json:"current_player"`
	MoveCount     int     `json:"move_count"`
	Status        Status  `json:"status"`
	WinningLine   []Coord `json:"winning_line,omitempty"`
}

func (that GameState) Clone() GameState {
	clone := that
	clone.Board = that.Board.Clone()
	if that.WinningLine != nil {
		clone.WinningLine = append([]Coord(nil), that.WinningLine...)
	}

	return clone
}

// Rules are the board dimensions and the winning sequence length.
type Rules struct {
	Rows     int `json:"rows"`
	Columns  int `json:"columns"`
	Sequence int `json:"sequence"`
}

func (that Rules) Cells() int {
	return that.Rows * that.Columns
}

func (that Rules) Validate() error {
	if that.Rows < 1 || that.Columns < 1 {
		return fmt.Errorf("%w: board %dx%d", apperror.ErrInvalidRules, that.Rows, that.Columns)
	}

	if that.Sequence < 1 || that.Sequence > max(that.Rows, that.Columns) {
		return fmt.Errorf("%w: sequence %d on board %dx%d", apperror.ErrInvalidRules, that.Sequence, that.Rows, that.Columns)
	}

	return nil
}

// ScoreTally counts wins over a whole session.
type ScoreTally struct {
	Player1Wins int `json:"player1_wins"`
	Player2Wins int `json:"player2_wins"`
}

func (that ScoreTally) Wins(player Player) int {
	switch player {
	case Player1:
		return that.Player1Wins
	case Player2:
		return that.Player2Wins
	default:
		return 0
	}
}

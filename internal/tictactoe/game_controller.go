package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// GameController owns the transitions of a game. It never mutates a state it was given.
type GameController struct {
	rules entity.Rules
}

func NewGameController(rules entity.Rules) (*GameController, error) {
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game controller: %w", err)
	}

	return &GameController{rules: rules}, nil
}

func (that *GameController) Rules() entity.Rules {
	return that.rules
}

// Reset - returns a fresh game with Player1 to move.
func (that *GameController) Reset() entity.GameState {
	return entity.GameState{
		Board:         entity.NewBoard(that.rules.Rows, that.rules.Columns),
		CurrentPlayer: entity.Player1,
		MoveCount:     0,
		Status:        entity.InProgress(),
	}
}

// ApplyMove - places player's mark at (row, col) and returns the resulting state.
func (that *GameController) ApplyMove(state entity.GameState, row, col int, player entity.Player) (entity.GameState, error) {
	if err := validateMove(state, row, col, player); err != nil {
		return state, fmt.Errorf("invalid turn: %w", err)
	}

	next := state.Clone()
	next.Board[row][col].Mark = player
	next.MoveCount++

	that.updateGameStatus(&next, player)

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(state entity.GameState, row, col int, player entity.Player) error {
	if !state.Status.IsInProgress() {
		return apperror.ErrGameFinished
	}

	if !state.Board.InBounds(row, col) {
		return fmt.Errorf("%w: row %d col %d", apperror.ErrOutOfBounds, row, col)
	}

	if !state.Board[row][col].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	if state.CurrentPlayer != player {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func (that *GameController) updateGameStatus(state *entity.GameState, player entity.Player) {
	if line := CheckWin(state.Board, that.rules.Sequence); line != nil {
		for _, c := range line {
			state.Board[c.Row][c.Col].PartOfWinningLine = true
		}
		state.WinningLine = line
		state.Status = entity.Won(player)

		return
	}

	if state.MoveCount == that.rules.Cells() {
		state.Status = entity.Draw()
		return
	}

	state.CurrentPlayer = player.Opponent()
}

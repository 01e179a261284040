package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMethods(t *testing.T) {
	t.Run("InProgress is neither won nor drawn", func(t *testing.T) {
		status := InProgress()

		assert.True(t, status.IsInProgress())
		assert.False(t, status.IsFinished())
		assert.Equal(t, NoPlayer, status.Winner)
	})

	t.Run("Won carries the winner", func(t *testing.T) {
		status := Won(Player2)

		assert.True(t, status.IsWon())
		assert.True(t, status.IsFinished())
		assert.Equal(t, Player2, status.Winner)
	})

	t.Run("Draw is finished without a winner", func(t *testing.T) {
		status := Draw()

		assert.True(t, status.IsDraw())
		assert.True(t, status.IsFinished())
		assert.Equal(t, NoPlayer, status.Winner)
	})
}

func TestPlayer(t *testing.T) {
	assert.Equal(t, Player2, Player1.Opponent())
	assert.Equal(t, Player1, Player2.Opponent())
	assert.Equal(t, NoPlayer, NoPlayer.Opponent())

	assert.True(t, Player1.IsValid())
	assert.False(t, NoPlayer.IsValid())
	assert.False(t, Player(7).IsValid())
}

func TestMarks_PlayerByMark(t *testing.T) {
	marks := Marks{Player1: "A", Player2: "B"}

	t.Run("Resolves both marks", func(t *testing.T) {
		p1, err := marks.PlayerByMark("A")
		require.NoError(t, err)
		assert.Equal(t, Player1, p1)

		p2, err := marks.PlayerByMark("B")
		require.NoError(t, err)
		assert.Equal(t, Player2, p2)
	})

	t.Run("Unknown mark", func(t *testing.T) {
		// When: a mark nobody plays with is resolved
		player, err := marks.PlayerByMark("X")

		// Then: it should return ErrUnknownPlayer
		require.ErrorIs(t, err, apperror.ErrUnknownPlayer)
		assert.Equal(t, NoPlayer, player)
	})

	t.Run("Of returns empty for no player", func(t *testing.T) {
		assert.Equal(t, "", marks.Of(NoPlayer))
		assert.Equal(t, "B", marks.Of(Player2))
	})
}

func TestBoard(t *testing.T) {
	t.Run("New board is empty and rectangular", func(t *testing.T) {
		board := NewBoard(2, 4)

		assert.Equal(t, 2, board.Rows())
		assert.Equal(t, 4, board.Columns())
		assert.Equal(t, 0, board.Filled())
		assert.True(t, board.InBounds(1, 3))
		assert.False(t, board.InBounds(2, 0))
		assert.False(t, board.InBounds(0, -1))
	})

	t.Run("Clone does not share cells", func(t *testing.T) {
		// Given: a board with one mark
		board := NewBoard(3, 3)
		board[1][1].Mark = Player1

		// When: the clone is modified
		clone := board.Clone()
		clone[0][0].Mark = Player2

		// Then: the original is untouched
		assert.True(t, board[0][0].IsEmpty())
		assert.Equal(t, Player1, clone.At(Coord{Row: 1, Col: 1}).Mark)
		assert.Equal(t, 1, board.Filled())
	})

	t.Run("Columns of an empty board", func(t *testing.T) {
		assert.Equal(t, 0, Board(nil).Columns())
		assert.Nil(t, Board(nil).Clone())
	})
}

func TestGameState_Clone(t *testing.T) {
	// Given: a won state
	state := GameState{
		Board:         NewBoard(3, 3),
		CurrentPlayer: Player1,
		MoveCount:     5,
		Status:        Won(Player1),
		WinningLine:   []Coord{{0, 0}, {0, 1}, {0, 2}},
	}

	// When: the clone's line and board are modified
	clone := state.Clone()
	clone.WinningLine[0] = Coord{Row: 2, Col: 2}
	clone.Board[0][0].PartOfWinningLine = true

	// Then: the original keeps its own copies
	assert.Equal(t, Coord{Row: 0, Col: 0}, state.WinningLine[0])
	assert.False(t, state.Board[0][0].PartOfWinningLine)
	assert.Equal(t, state.Status, clone.Status)
}

func TestRules_Validate(t *testing.T) {
	valid := []Rules{
		{Rows: 3, Columns: 3, Sequence: 3},
		{Rows: 1, Columns: 1, Sequence: 1},
		{Rows: 3, Columns: 5, Sequence: 5},
		{Rows: 6, Columns: 7, Sequence: 4},
	}
	for _, rules := range valid {
		assert.NoError(t, rules.Validate(), "%+v", rules)
	}

	invalid := []Rules{
		{Rows: 0, Columns: 3, Sequence: 3},
		{Rows: 3, Columns: -1, Sequence: 3},
		{Rows: 3, Columns: 3, Sequence: 0},
		{Rows: 3, Columns: 3, Sequence: 4},
	}
	for _, rules := range invalid {
		assert.ErrorIs(t, rules.Validate(), apperror.ErrInvalidRules, "%+v", rules)
	}

	assert.Equal(t, 15, Rules{Rows: 3, Columns: 5, Sequence: 3}.Cells())
}

func TestScoreTally_Wins(t *testing.T) {
	tally := ScoreTally{Player1Wins: 2, Player2Wins: 5}

	assert.Equal(t, 2, tally.Wins(Player1))
	assert.Equal(t, 5, tally.Wins(Player2))
	assert.Equal(t, 0, tally.Wins(NoPlayer))
}

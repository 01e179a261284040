package usecase

import (
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-board/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *Session {
	t.Helper()

	session, err := NewSession(slog.New(slog.NewJSONHandler(io.Discard, nil)), Options{
		SessionID: "session-1",
		Rules:     entity.Rules{Rows: 3, Columns: 3, Sequence: 3},
		Layout:    geometry.DefaultLayout(),
		Marks:     entity.DefaultMarks(),
		Width:     1000,
		Height:    800,
	})
	require.NoError(t, err)

	return session
}

func dropAt(t *testing.T, session *Session, player entity.Player, row, col int) bool {
	t.Helper()

	p := geometry.CellToPixel(row, col, session.Snapshot().Board)
	session.DragMove(player, p.X, p.Y)

	return session.BankDropped(player, p.X, p.Y)
}

func TestNewSession(t *testing.T) {
	t.Run("Rejects invalid rules", func(t *testing.T) {
		_, err := NewSession(slog.New(slog.NewJSONHandler(io.Discard, nil)), Options{
			Rules: entity.Rules{Rows: 0, Columns: 3, Sequence: 3},
		})

		require.ErrorIs(t, err, apperror.ErrInvalidRules)
	})

	t.Run("Starts with an empty board and banks at home", func(t *testing.T) {
		session := newSession(t)

		snapshot := session.Snapshot()

		assert.Equal(t, "session-1", snapshot.SessionID)
		assert.Equal(t, 0, snapshot.State.MoveCount)
		assert.Equal(t, entity.Player1, snapshot.Draggable)
		assert.InDelta(t, 350, snapshot.Board.XStart, 1e-9)
		assert.Equal(t, geometry.Point{X: 250, Y: 320}, snapshot.Banks[entity.Player1].Current)
		assert.Equal(t, geometry.Point{X: 750, Y: 320}, snapshot.Banks[entity.Player2].Current)
	})
}

func TestSession_Play(t *testing.T) {
	t.Run("Clicks and drops converge on one game", func(t *testing.T) {
		// Given: a new session
		session := newSession(t)

		// When: X clicks, O drags, X clicks, O drags, X completes the top row by drag
		require.True(t, session.CellActivated(0, 0))
		require.True(t, dropAt(t, session, entity.Player2, 1, 1))
		require.True(t, session.CellActivated(0, 1))
		require.True(t, dropAt(t, session, entity.Player2, 2, 2))
		require.True(t, dropAt(t, session, entity.Player1, 0, 2))

		// Then: X has won, the score counted it once, and the line is animated
		snapshot := session.Snapshot()
		assert.Equal(t, entity.Won(entity.Player1), snapshot.State.Status)
		assert.Equal(t, []entity.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, snapshot.State.WinningLine)
		assert.Equal(t, entity.ScoreTally{Player1Wins: 1}, snapshot.Score)
		assert.Equal(t, entity.NoPlayer, snapshot.Draggable)

		assert.True(t, session.Frame(time.Now()))
		assert.Len(t, session.Snapshot().Rotations, 3)

		// Then: further input is ignored
		assert.False(t, session.CellActivated(2, 0))
		assert.False(t, dropAt(t, session, entity.Player2, 2, 0))
		assert.Equal(t, entity.ScoreTally{Player1Wins: 1}, session.Score())
	})

	t.Run("Drop on an occupied cell is not committed", func(t *testing.T) {
		session := newSession(t)
		require.True(t, session.CellActivated(1, 1))

		assert.False(t, dropAt(t, session, entity.Player2, 1, 1))
		assert.Equal(t, 1, session.State().MoveCount)
	})

	t.Run("Drop at NaN is not committed", func(t *testing.T) {
		session := newSession(t)

		assert.False(t, session.BankDropped(entity.Player1, math.NaN(), math.NaN()))
		assert.Equal(t, 0, session.State().MoveCount)
		assert.True(t, session.State().Board[0][0].IsEmpty())
	})

	t.Run("Snapshots are independent of later moves", func(t *testing.T) {
		session := newSession(t)
		before := session.Snapshot()

		require.True(t, session.CellActivated(0, 0))

		assert.True(t, before.State.Board[0][0].IsEmpty())
		before.State.Board[2][2].Mark = entity.Player2
		assert.True(t, session.State().Board[2][2].IsEmpty())
	})
}

func TestSession_Restart(t *testing.T) {
	// Given: a session where O wins three games in a row
	session := newSession(t)
	for range 3 {
		require.True(t, session.CellActivated(2, 2))
		require.True(t, session.CellActivated(0, 0))
		require.True(t, session.CellActivated(1, 0))
		require.True(t, session.CellActivated(0, 1))
		require.True(t, session.CellActivated(1, 1))
		require.True(t, session.CellActivated(0, 2))
		require.Equal(t, entity.Won(entity.Player2), session.State().Status)

		// When: the board is restarted mid-drag
		session.DragMove(entity.Player1, 1, 1)
		session.Restart()

		// Then: the board is fresh, banks are home and the animation stopped
		snapshot := session.Snapshot()
		assert.Equal(t, 0, snapshot.State.MoveCount)
		assert.Equal(t, entity.Player1, snapshot.State.CurrentPlayer)
		assert.Equal(t, snapshot.Banks[entity.Player1].Home, snapshot.Banks[entity.Player1].Current)
		assert.False(t, session.Frame(time.Now()))
	}

	// Then: the score survived every restart
	assert.Equal(t, entity.ScoreTally{Player2Wins: 3}, session.Score())
}

func TestSession_Resize(t *testing.T) {
	t.Run("Geometry follows the container", func(t *testing.T) {
		session := newSession(t)

		session.Resize(2000, 1000)

		snapshot := session.Snapshot()
		assert.InDelta(t, 700, snapshot.Board.XStart, 1e-9)
		assert.InDelta(t, 200, snapshot.Board.CellWidth, 1e-9)
		assert.Equal(t, geometry.Point{X: 500, Y: 400}, snapshot.Banks[entity.Player1].Home)
	})

	t.Run("Zero-sized container rejects every drop", func(t *testing.T) {
		session := newSession(t)
		session.Resize(0, 0)

		assert.False(t, session.BankDropped(entity.Player1, 0, 0))
		assert.False(t, session.CellActivated(1, 1))
		assert.Equal(t, 0, session.State().MoveCount)
	})
}

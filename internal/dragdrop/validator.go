package dragdrop

import (
	"errors"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/geometry"
)

var (
	errOutsideBoard = errors.New("drop outside the board")
	errNotDraggable = errors.New("bank is not draggable")
)

type mover interface {
	ApplyMove(state entity.GameState, row, col int, player entity.Player) (entity.GameState, error)
}

// Bank is a player's draggable token.
type Bank struct {
	Home    geometry.Point `json:"home"`
	Current geometry.Point `json:"current"`
}

// Validator turns drag releases and clicks into moves. Rejected input only sends
// the bank home; it never reaches the caller as an error.
type Validator struct {
	logger *slog.Logger
	mover  mover
	banks  map[entity.Player]*Bank
}

func NewValidator(logger *slog.Logger, mover mover) *Validator {
	return &Validator{
		logger: logger.With("component", "dragdrop"),
		mover:  mover,
		banks: map[entity.Player]*Bank{
			entity.Player1: {},
			entity.Player2: {},
		},
	}
}

// SetHomes - replaces the home positions; every bank snaps to its new home.
func (that *Validator) SetHomes(homes map[entity.Player]geometry.Point) {
	for player, home := range homes {
		bank, ok := that.banks[player]
		if !ok {
			continue
		}
		bank.Home = home
		bank.Current = home
	}
}

// ResetBanks - sends every bank home, dropping any drag in flight.
func (that *Validator) ResetBanks() {
	for _, bank := range that.banks {
		bank.Current = bank.Home
	}
}

func (that *Validator) Bank(player entity.Player) (Bank, bool) {
	bank, ok := that.banks[player]
	if !ok {
		return Bank{}, false
	}
	return *bank, true
}

func (that *Validator) Banks() map[entity.Player]Bank {
	banks := make(map[entity.Player]Bank, len(that.banks))
	for player, bank := range that.banks {
		banks[player] = *bank
	}

	return banks
}

// Draggable - only the player to move may drag, and only while the game is running.
func (that *Validator) Draggable(state entity.GameState, player entity.Player) bool {
	return state.Status.IsInProgress() && state.CurrentPlayer == player
}

// DragMove - tracks a bank being dragged. Input for a bank that is not draggable is ignored.
func (that *Validator) DragMove(state entity.GameState, player entity.Player, x, y float64) bool {
	bank, ok := that.banks[player]
	if !ok || !that.Draggable(state, player) {
		return false
	}

	bank.Current = geometry.Point{X: x, Y: y}

	return true
}

// Drop - resolves a drag release at (x, y) to a move. It returns the resulting
// state and whether a move was committed; on rejection the given state is returned.
func (that *Validator) Drop(state entity.GameState, info geometry.BoardInfo, player entity.Player, x, y float64) (entity.GameState, bool) {
	log := that.logger.With("method", "Drop", "player", player.String(), "x", x, "y", y)

	bank, ok := that.banks[player]
	if !ok {
		log.Debug("drop rejected", "error", errNotDraggable)
		return state, false
	}
	defer func() { bank.Current = bank.Home }()

	cell, ok := geometry.PixelToCell(x, y, info)
	if !ok {
		log.Debug("drop rejected", "error", errOutsideBoard)
		return state, false
	}

	if !state.Board.InBounds(cell.Row, cell.Col) || !state.Board.At(cell).IsEmpty() || !that.Draggable(state, player) {
		log.Debug("drop rejected", "row", cell.Row, "col", cell.Col)
		return state, false
	}

	next, err := that.mover.ApplyMove(state, cell.Row, cell.Col, player)
	if err != nil {
		log.Debug("move rejected", "row", cell.Row, "col", cell.Col, "error", err)
		return state, false
	}

	log.Debug("move committed", "row", cell.Row, "col", cell.Col)

	return next, true
}

// Activate - a click on a cell is a drop by the player to move at the cell's centre.
func (that *Validator) Activate(state entity.GameState, info geometry.BoardInfo, row, col int) (entity.GameState, bool) {
	if row < 0 || row >= info.Rows || col < 0 || col >= info.Columns {
		that.logger.Debug("click rejected", "method", "Activate", "row", row, "col", col)
		return state, false
	}

	center := geometry.CellToPixel(row, col, info)

	return that.Drop(state, info, state.CurrentPlayer, center.X, center.Y)
}

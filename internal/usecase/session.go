package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-board/internal/dragdrop"
	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/geometry"
	"github.com/rocketscienceinc/tictactoe-board/internal/highlight"
	"github.com/rocketscienceinc/tictactoe-board/internal/score"
	"github.com/rocketscienceinc/tictactoe-board/internal/tictactoe"
)

// Snapshot is everything the render layer reads. It shares no memory with the session.
type Snapshot struct {
	SessionID string                          `json:"session_id"`
	State     entity.GameState                `json:"state"`
	Board     geometry.BoardInfo              `json:"board"`
	Banks     map[entity.Player]dragdrop.Bank `json:"banks"`
	Draggable entity.Player                   `json:"draggable"`
	Score     entity.ScoreTally               `json:"score"`
	Marks     entity.Marks                    `json:"marks"`
	Rotations map[entity.Coord]float64        `json:"-"`
}

type Options struct {
	SessionID string
	Rules     entity.Rules
	Layout    geometry.Layout
	Marks     entity.Marks
	Width     float64
	Height    float64
}

// Session wires the state machine, the validator, the score and the winning-cell
// effect for one application session. It is not safe for concurrent use: events
// must be delivered one at a time, each running to completion.
type Session struct {
	logger *slog.Logger
	id     string
	layout geometry.Layout
	marks  entity.Marks
	clock  func() time.Time

	controller *tictactoe.GameController
	validator  *dragdrop.Validator
	tracker    *score.Tracker
	animator   *highlight.Animator

	state     entity.GameState
	info      geometry.BoardInfo
	rotations map[entity.Coord]float64
}

func NewSession(logger *slog.Logger, opts Options) (*Session, error) {
	controller, err := tictactoe.NewGameController(opts.Rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	session := &Session{
		logger: logger.With("component", "session", "session_id", opts.SessionID),
		id:     opts.SessionID,
		layout: opts.Layout,
		marks:  opts.Marks,
		clock:  time.Now,

		controller: controller,
		validator:  dragdrop.NewValidator(logger, controller),
		tracker:    score.NewTracker(),
		animator:   highlight.NewAnimator(),
	}

	session.state = controller.Reset()
	session.Resize(opts.Width, opts.Height)

	return session, nil
}

func (that *Session) ID() string {
	return that.id
}

// Resize - recomputes the geometry from scratch and sends the banks to their new homes.
func (that *Session) Resize(width, height float64) {
	rules := that.controller.Rules()
	that.info = geometry.ComputeGeometry(width, height, rules.Rows, rules.Columns, that.layout)
	that.validator.SetHomes(map[entity.Player]geometry.Point{
		entity.Player1: geometry.BankHome(entity.Player1, width, height, that.layout),
		entity.Player2: geometry.BankHome(entity.Player2, width, height, that.layout),
	})

	that.logger.Debug("container resized", "width", width, "height", height)
}

// CellActivated - a direct click on a cell.
func (that *Session) CellActivated(row, col int) bool {
	next, committed := that.validator.Activate(that.state, that.info, row, col)

	return that.commit(next, committed)
}

func (that *Session) DragMove(player entity.Player, x, y float64) bool {
	return that.validator.DragMove(that.state, player, x, y)
}

// BankDropped - a drag release at screen point (x, y).
func (that *Session) BankDropped(player entity.Player, x, y float64) bool {
	next, committed := that.validator.Drop(that.state, that.info, player, x, y)

	return that.commit(next, committed)
}

// Restart - discards the game; score counters survive.
func (that *Session) Restart() {
	that.state = that.controller.Reset()
	that.validator.ResetBanks()
	that.animator.Stop()
	that.rotations = nil

	that.logger.Info("game restarted", "score", that.tracker.Tally())
}

// Frame - advances the winning-cell effect. It reports whether anything is animating.
func (that *Session) Frame(now time.Time) bool {
	that.rotations = that.animator.Frame(now)

	return len(that.rotations) > 0
}

func (that *Session) State() entity.GameState {
	return that.state.Clone()
}

func (that *Session) Score() entity.ScoreTally {
	return that.tracker.Tally()
}

func (that *Session) Snapshot() Snapshot {
	draggable := entity.NoPlayer
	if that.state.Status.IsInProgress() {
		draggable = that.state.CurrentPlayer
	}

	var rotations map[entity.Coord]float64
	if len(that.rotations) > 0 {
		rotations = make(map[entity.Coord]float64, len(that.rotations))
		for coord, angle := range that.rotations {
			rotations[coord] = angle
		}
	}

	return Snapshot{
		SessionID: that.id,
		State:     that.state.Clone(),
		Board:     that.info,
		Banks:     that.validator.Banks(),
		Draggable: draggable,
		Score:     that.tracker.Tally(),
		Marks:     that.marks,
		Rotations: rotations,
	}
}

func (that *Session) commit(next entity.GameState, committed bool) bool {
	if !committed {
		return false
	}

	prev := that.state
	that.state = next
	that.animator.Sync(next, that.clock())

	if that.tracker.Observe(prev, next) {
		that.logger.Info("game won", "winner", that.marks.Of(next.Status.Winner), "score", that.tracker.Tally())
	} else if next.Status.IsDraw() {
		that.logger.Info("game drawn")
	}

	return true
}

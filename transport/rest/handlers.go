package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
	"github.com/rocketscienceinc/tictactoe-board/internal/geometry"
	"github.com/rocketscienceinc/tictactoe-board/internal/usecase"
)

type Handlers interface {
	PingHandler(w http.ResponseWriter, _ *http.Request)
	StateHandler(w http.ResponseWriter, _ *http.Request)
}

// snapshotSource hands out the latest published snapshot, or nil before the first one.
type snapshotSource interface {
	Current() *usecase.Snapshot
}

type handlers struct {
	logger    *slog.Logger
	snapshots snapshotSource
}

func NewHandlers(logger *slog.Logger, snapshots snapshotSource) Handlers {
	return &handlers{
		logger:    logger.With("component", "rest"),
		snapshots: snapshots,
	}
}

type cellView struct {
	Mark              string `json:"mark"`
	PartOfWinningLine bool   `json:"part_of_winning_line"`
}

type bankView struct {
	Mark      string         `json:"mark"`
	Home      geometry.Point `json:"home"`
	Current   geometry.Point `json:"current"`
	Draggable bool           `json:"draggable"`
}

// rotationView is the current oscillation step of one winning cell.
type rotationView struct {
	Row   int     `json:"row"`
	Col   int     `json:"col"`
	Angle float64 `json:"angle"`
}

type stateView struct {
	SessionID     string             `json:"session_id"`
	Board         [][]cellView       `json:"board"`
	CurrentPlayer string             `json:"current_player"`
	MoveCount     int                `json:"move_count"`
	Status        entity.StatusKind  `json:"status"`
	Winner        string             `json:"winner,omitempty"`
	WinningLine   []entity.Coord     `json:"winning_line,omitempty"`
	Geometry      geometry.BoardInfo `json:"geometry"`
	Banks         []bankView         `json:"banks"`
	Score         map[string]int     `json:"score"`
	Rotations     []rotationView     `json:"rotations,omitempty"`
}

// StateHandler - renders the latest snapshot with players replaced by their marks.
func (that *handlers) StateHandler(w http.ResponseWriter, _ *http.Request) {
	log := that.logger.With("method", "StateHandler")

	snapshot := that.snapshots.Current()
	if snapshot == nil {
		http.Error(w, "session is not started", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(newStateView(snapshot)); err != nil {
		log.Error("failed to encode state", "error", err)
	}
}

func newStateView(snapshot *usecase.Snapshot) stateView {
	marks := snapshot.Marks
	state := snapshot.State

	board := make([][]cellView, len(state.Board))
	for r, row := range state.Board {
		board[r] = make([]cellView, len(row))
		for c, cell := range row {
			board[r][c] = cellView{Mark: marks.Of(cell.Mark), PartOfWinningLine: cell.PartOfWinningLine}
		}
	}

	banks := make([]bankView, 0, 2)
	for _, player := range []entity.Player{entity.Player1, entity.Player2} {
		bank := snapshot.Banks[player]
		banks = append(banks, bankView{
			Mark:      marks.Of(player),
			Home:      bank.Home,
			Current:   bank.Current,
			Draggable: snapshot.Draggable == player,
		})
	}

	var rotations []rotationView
	for coord, angle := range snapshot.Rotations {
		rotations = append(rotations, rotationView{Row: coord.Row, Col: coord.Col, Angle: angle})
	}
	sort.Slice(rotations, func(i, j int) bool {
		if rotations[i].Row != rotations[j].Row {
			return rotations[i].Row < rotations[j].Row
		}
		return rotations[i].Col < rotations[j].Col
	})

	return stateView{
		SessionID:     snapshot.SessionID,
		Board:         board,
		CurrentPlayer: marks.Of(state.CurrentPlayer),
		MoveCount:     state.MoveCount,
		Status:        state.Status.Kind,
		Winner:        marks.Of(state.Status.Winner),
		WinningLine:   state.WinningLine,
		Geometry:      snapshot.Board,
		Banks:         banks,
		Score: map[string]int{
			marks.Player1: snapshot.Score.Player1Wins,
			marks.Player2: snapshot.Score.Player2Wins,
		},
		Rotations: rotations,
	}
}

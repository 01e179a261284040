package highlight

import (
	"math"
	"sort"
	"time"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

// HalfPeriod is the time the oscillation takes to swing from one extreme to the other.
const HalfPeriod = 500 * time.Millisecond

type task struct {
	startedAt time.Time
}

// Animator runs one oscillation task per winning cell. A task lives exactly as long
// as its cell's PartOfWinningLine flag; it is driven by frames, not by a goroutine.
type Animator struct {
	tasks map[entity.Coord]*task
}

func NewAnimator() *Animator {
	return &Animator{tasks: make(map[entity.Coord]*task)}
}

// Sync - starts tasks for newly flagged cells and cancels tasks whose flag is gone.
func (that *Animator) Sync(state entity.GameState, now time.Time) {
	flagged := make(map[entity.Coord]struct{})
	for r, row := range state.Board {
		for c, cell := range row {
			if cell.PartOfWinningLine {
				flagged[entity.Coord{Row: r, Col: c}] = struct{}{}
			}
		}
	}

	for coord := range that.tasks {
		if _, ok := flagged[coord]; !ok {
			delete(that.tasks, coord)
		}
	}

	for coord := range flagged {
		if _, ok := that.tasks[coord]; !ok {
			that.tasks[coord] = &task{startedAt: now}
		}
	}
}

// Frame - returns the rotation step of every running task at now.
func (that *Animator) Frame(now time.Time) map[entity.Coord]float64 {
	if len(that.tasks) == 0 {
		return nil
	}

	frame := make(map[entity.Coord]float64, len(that.tasks))
	for coord, t := range that.tasks {
		elapsed := now.Sub(t.startedAt)
		frame[coord] = math.Cos(float64(elapsed) * math.Pi / float64(HalfPeriod))
	}

	return frame
}

// Active - returns the animated cells in row-major order.
func (that *Animator) Active() []entity.Coord {
	active := make([]entity.Coord, 0, len(that.tasks))
	for coord := range that.tasks {
		active = append(active, coord)
	}

	sort.Slice(active, func(i, j int) bool {
		if active[i].Row != active[j].Row {
			return active[i].Row < active[j].Row
		}
		return active[i].Col < active[j].Col
	})

	return active
}

func (that *Animator) Stop() {
	clear(that.tasks)
}

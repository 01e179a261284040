package score

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// Tracker counts wins for the lifetime of a session. Board restarts do not touch it.
type Tracker struct {
	tally entity.ScoreTally
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// Observe - counts a win on the InProgress -> Won transition between prev and next.
// It reports whether the tally changed.
func (that *Tracker) Observe(prev, next entity.GameState) bool {
	if prev.Status.IsWon() || !next.Status.IsWon() {
		return false
	}

	switch next.Status.Winner {
	case entity.Player1:
		that.tally.Player1Wins++
	case entity.Player2:
		that.tally.Player2Wins++
	default:
		return false
	}

	return true
}

func (that *Tracker) Tally() entity.ScoreTally {
	return that.tally
}

package tictactoe

import "github.com/rocketscienceinc/tictactoe-board/internal/entity"

// directions in scan order: rows, columns, main diagonal, anti-diagonal.
var directions = [4]entity.Coord{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 1, Col: 1},
	{Row: 1, Col: -1},
}

// CheckWin - returns the first line of `sequence` identical non-empty marks, or nil.
// Rows are scanned top-to-bottom, then columns left-to-right, then the main-diagonal
// direction, then the anti-diagonal direction. On a 3x3 board with sequence 3 this is
// rows 0..2, columns 0..2, main diagonal, anti-diagonal.
func CheckWin(board entity.Board, sequence int) []entity.Coord {
	if sequence < 1 {
		return nil
	}

	rows, columns := board.Rows(), board.Columns()

	for _, dir := range directions {
		// columns are walked column-major so that column 0 is exhausted before column 1
		outer, inner := rows, columns
		if dir.Row == 1 && dir.Col == 0 {
			outer, inner = columns, rows
		}

		for i := range outer {
			for j := range inner {
				start := entity.Coord{Row: i, Col: j}
				if dir.Row == 1 && dir.Col == 0 {
					start = entity.Coord{Row: j, Col: i}
				}

				if line := lineFrom(board, start, dir, sequence); line != nil {
					return line
				}
			}
		}
	}

	return nil
}

// lineFrom - returns the window starting at start if it fits and holds one mark.
func lineFrom(board entity.Board, start, dir entity.Coord, sequence int) []entity.Coord {
	end := entity.Coord{Row: start.Row + dir.Row*(sequence-1), Col: start.Col + dir.Col*(sequence-1)}
	if !board.InBounds(start.Row, start.Col) || !board.InBounds(end.Row, end.Col) {
		return nil
	}

	mark := board.At(start).Mark
	if mark == entity.NoPlayer {
		return nil
	}

	line := make([]entity.Coord, 0, sequence)
	for k := range sequence {
		c := entity.Coord{Row: start.Row + dir.Row*k, Col: start.Col + dir.Col*k}
		if board.At(c).Mark != mark {
			return nil
		}
		line = append(line, c)
	}

	return line
}

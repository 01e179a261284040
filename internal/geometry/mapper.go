// Package geometry maps container pixels to board cells and back.
package geometry

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-board/internal/entity"
)

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout holds the board extents and bank homes as fractions of the container.
type Layout struct {
	WidthPart       float64
	HeightPart      float64
	WidthStartPart  float64
	HeightStartPart float64
	Player1Bank     Point
	Player2Bank     Point
}

func DefaultLayout() Layout {
	return Layout{
		WidthPart:       0.3,
		HeightPart:      0.3,
		WidthStartPart:  0.35,
		HeightStartPart: 0.3,
		Player1Bank:     Point{X: 0.25, Y: 0.4},
		Player2Bank:     Point{X: 0.75, Y: 0.4},
	}
}

// BoardInfo is the on-screen placement of the board. A zero-area BoardInfo
// resolves every pixel to outside the board.
type BoardInfo struct {
	CellWidth  float64 `json:"cell_width"`
	CellHeight float64 `json:"cell_height"`
	XStart     float64 `json:"x_start"`
	XEnd       float64 `json:"x_end"`
	YStart     float64 `json:"y_start"`
	YEnd       float64 `json:"y_end"`
	Rows       int     `json:"rows"`
	Columns    int     `json:"columns"`
}

func (that BoardInfo) IsDegenerate() bool {
	return !(that.CellWidth > 0) || !(that.CellHeight > 0) || that.Rows < 1 || that.Columns < 1
}

// ComputeGeometry - derives the board placement from the container size.
func ComputeGeometry(width, height float64, rows, columns int, layout Layout) BoardInfo {
	if !finitePositive(width) || !finitePositive(height) || rows < 1 || columns < 1 {
		return BoardInfo{Rows: rows, Columns: columns}
	}

	xStart := width * layout.WidthStartPart
	yStart := height * layout.HeightStartPart

	return BoardInfo{
		CellWidth:  width * layout.WidthPart / float64(columns),
		CellHeight: height * layout.HeightPart / float64(rows),
		XStart:     xStart,
		XEnd:       xStart + width*layout.WidthPart,
		YStart:     yStart,
		YEnd:       yStart + height*layout.HeightPart,
		Rows:       rows,
		Columns:    columns,
	}
}

// PixelToCell - resolves a point to a cell; false means the point is outside the board.
// The closing edges XEnd and YEnd belong to the last column and row.
func PixelToCell(x, y float64, info BoardInfo) (entity.Coord, bool) {
	if info.IsDegenerate() {
		return entity.Coord{}, false
	}

	// written positively so that NaN lands outside
	if !(x >= info.XStart && x <= info.XEnd && y >= info.YStart && y <= info.YEnd) {
		return entity.Coord{}, false
	}

	row := int(math.Floor((y - info.YStart) / info.CellHeight))
	col := int(math.Floor((x - info.XStart) / info.CellWidth))

	return entity.Coord{Row: clamp(row, info.Rows), Col: clamp(col, info.Columns)}, true
}

// CellToPixel - returns the centre of the cell.
func CellToPixel(row, col int, info BoardInfo) Point {
	return Point{
		X: info.XStart + (float64(col)+0.5)*info.CellWidth,
		Y: info.YStart + (float64(row)+0.5)*info.CellHeight,
	}
}

// CellOrigin - returns the top-left corner of the cell, where the render layer draws it.
func CellOrigin(row, col int, info BoardInfo) Point {
	return Point{
		X: info.XStart + float64(col)*info.CellWidth,
		Y: info.YStart + float64(row)*info.CellHeight,
	}
}

// BankHome - returns the home position of a player's bank in container pixels.
func BankHome(player entity.Player, width, height float64, layout Layout) Point {
	var fraction Point
	switch player {
	case entity.Player1:
		fraction = layout.Player1Bank
	case entity.Player2:
		fraction = layout.Player2Bank
	default:
		return Point{}
	}

	return Point{X: width * fraction.X, Y: height * fraction.Y}
}

func clamp(index, size int) int {
	if index >= size {
		return size - 1
	}
	if index < 0 {
		return 0
	}
	return index
}

func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

package tui

import (
	"github.com/rocketscienceinc/gobblet-jr/internal/entity"
	"github.com/rocketscienceinc/gobblet-jr/internal/gobblet"
)

const (
	cellW = 9
	cellH = 3

	slotW = 12
	slotH = 3

	columnGap = 4

	// BoardW and BoardH include the grid lines around and between cells.
	BoardW = gobblet.BoardSize*(cellW+1) + 1
	BoardH = gobblet.BoardSize*(cellH+1) + 1

	// SceneW is the width of both reserves and the board side by side.
	SceneW = slotW + columnGap + BoardW + columnGap + slotW
	SceneH = BoardH
)

type Rect struct {
	X, Y, W, H int
}

func (that Rect) Contains(x, y int) bool {
	return x >= that.X && x < that.X+that.W && y >= that.Y && y < that.Y+that.H
}

// Layout places the board between the RED reserve on the left and the BLUE
// reserve on the right, centred in the drawing area.
type Layout struct {
	Board    Rect
	Reserves [2]Rect
}

// NewLayout - centres the scene in the area (x, y, w, h). Areas smaller than the
// scene keep it anchored at the top left corner.
func NewLayout(x, y, w, h int) Layout {
	originX := x + max(0, (w-SceneW)/2)
	originY := y + max(0, (h-SceneH)/2)

	boardX := originX + slotW + columnGap

	return Layout{
		Board: Rect{X: boardX, Y: originY, W: BoardW, H: BoardH},
		Reserves: [2]Rect{
			entity.Red:  {X: originX, Y: originY, W: slotW, H: SceneH},
			entity.Blue: {X: boardX + BoardW + columnGap, Y: originY, W: slotW, H: SceneH},
		},
	}
}

// Cell returns the interior of a board cell, grid lines excluded.
func (that Layout) Cell(coord entity.Coord) Rect {
	return Rect{
		X: that.Board.X + 1 + coord.Col*(cellW+1),
		Y: that.Board.Y + 1 + coord.Row*(cellH+1),
		W: cellW,
		H: cellH,
	}
}

// Slot returns the reserve slot of a size. Slots line up with the board rows,
// largest on top.
func (that Layout) Slot(color entity.Color, size entity.Size) Rect {
	column := that.Reserves[color]

	index := 0
	for i, s := range entity.Sizes {
		if s == size {
			index = i
		}
	}

	return Rect{
		X: column.X,
		Y: column.Y + 1 + index*(slotH+1),
		W: slotW,
		H: slotH,
	}
}

// CellAt maps a screen position to the board cell under it.
func (that Layout) CellAt(x, y int) (entity.Coord, bool) {
	for row := range gobblet.BoardSize {
		for col := range gobblet.BoardSize {
			coord := entity.Coord{Row: row, Col: col}
			if that.Cell(coord).Contains(x, y) {
				return coord, true
			}
		}
	}
	return entity.Coord{}, false
}

// SlotAt maps a screen position to the reserve slot under it.
func (that Layout) SlotAt(x, y int) (entity.Color, entity.Size, bool) {
	for _, color := range entity.Colors {
		for _, size := range entity.Sizes {
			if that.Slot(color, size).Contains(x, y) {
				return color, size, true
			}
		}
	}
	return entity.Red, entity.Small, false
}

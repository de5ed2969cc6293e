package gobblet

import "github.com/rocketscienceinc/gobblet-jr/internal/entity"

// WinLines holds every row, column and diagonal of the grid.
var WinLines = [][BoardSize]entity.Coord{
	{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}},
	{{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}},
	{{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}},
	{{Row: 0, Col: 1}, {Row: 1, Col: 1}, {Row: 2, Col: 1}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 2}},
	{{Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}},
}

// hasLine - checks if any line shows color on top of all three of its cells.
// Pieces buried under the top do not count.
func hasLine(board *Board, color entity.Color) bool {
	for _, line := range WinLines {
		owned := 0
		for _, coord := range line {
			if !entity.BelongsTo(board.Top(coord.Row, coord.Col), color) {
				break
			}
			owned++
		}

		if owned == BoardSize {
			return true
		}
	}
	return false
}

package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/gobblet-jr/internal/config"
	"github.com/rocketscienceinc/gobblet-jr/internal/entity"
	"github.com/rocketscienceinc/gobblet-jr/internal/gobblet"
)

const pieceRune = '█'

type palette struct {
	players   [2]tcell.Color
	highlight tcell.Color
	selected  tcell.Color
	grid      tcell.Color
}

func newPalette(theme config.Theme) palette {
	return palette{
		players: [2]tcell.Color{
			entity.Red:  tcell.GetColor(theme.Red),
			entity.Blue: tcell.GetColor(theme.Blue),
		},
		highlight: tcell.GetColor(theme.Highlight),
		selected:  tcell.GetColor(theme.Selected),
		grid:      tcell.GetColor(theme.Grid),
	}
}

// pieceWidth - the bar drawn for a piece grows with its size.
func pieceWidth(size entity.Size) int {
	return 3 + 2*int(size)
}

// scene draws the board and both reserves from the use case read side.
type scene struct {
	game   gameUseCase
	colors palette
}

func (that *scene) draw(screen tcell.Screen, layout Layout) {
	selected := that.game.Selected()
	lastMove, hasLastMove := that.game.LastMove()

	that.drawGrid(screen, layout.Board)

	for row := range gobblet.BoardSize {
		for col := range gobblet.BoardSize {
			coord := entity.Coord{Row: row, Col: col}
			cell := layout.Cell(coord)

			background := tcell.ColorDefault
			switch {
			case selected != nil && isAt(selected, coord):
				background = that.colors.selected
			case selected != nil && that.game.IsLegal(coord):
				background = that.colors.highlight
			}
			fill(screen, cell, tcell.StyleDefault.Background(background))

			if top := that.game.Top(coord); top != nil {
				that.drawPiece(screen, cell, top, background)
			}

			if depth := that.game.Depth(coord); depth > 1 {
				label := fmt.Sprintf("%d", depth)
				drawText(screen, cell.X+cell.W-len(label), cell.Y, label, tcell.StyleDefault.Background(background).Dim(true))
			}

			if hasLastMove && lastMove == coord {
				screen.SetContent(cell.X, cell.Y, '•', nil, tcell.StyleDefault.Background(background).Foreground(that.colors.selected))
			}
		}
	}

	for _, color := range entity.Colors {
		that.drawReserve(screen, layout, color, selected)
	}
}

func (that *scene) drawReserve(screen tcell.Screen, layout Layout, color entity.Color, selected *entity.Piece) {
	column := layout.Reserves[color]
	finished := that.game.State().IsFinished()

	name := strings.ToUpper(color.String())
	title := "  " + name
	if !finished && that.game.CurrentColor() == color {
		title = "▶ " + name
	}
	drawText(screen, column.X, column.Y, title, tcell.StyleDefault.Foreground(that.colors.players[color]).Bold(true))

	for _, size := range entity.Sizes {
		slot := layout.Slot(color, size)

		background := tcell.ColorDefault
		if selected != nil && selected.InReserve() && selected.Color() == color && selected.Size() == size {
			background = that.colors.selected
		}
		fill(screen, slot, tcell.StyleDefault.Background(background))

		count := that.game.ReserveCount(color, size)
		if count > 0 {
			bar := Rect{X: slot.X, Y: slot.Y, W: pieceWidth(entity.Large), H: slot.H}
			that.drawPiece(screen, bar, entity.NewPiece(color, size), background)
		}

		label := fmt.Sprintf("x%d", count)
		drawText(screen, slot.X+slot.W-len(label), slot.Y+slot.H/2, label, tcell.StyleDefault.Background(background).Dim(count == 0))
	}
}

// drawPiece centres a bar of the piece's width on the middle row of area.
func (that *scene) drawPiece(screen tcell.Screen, area Rect, piece *entity.Piece, background tcell.Color) {
	width := pieceWidth(piece.Size())
	x := area.X + (area.W-width)/2
	y := area.Y + area.H/2

	style := tcell.StyleDefault.Foreground(that.colors.players[piece.Color()]).Background(background)
	for i := range width {
		screen.SetContent(x+i, y, pieceRune, nil, style)
	}
}

func (that *scene) drawGrid(screen tcell.Screen, board Rect) {
	style := tcell.StyleDefault.Foreground(that.colors.grid)

	for dy := range board.H {
		for dx := range board.W {
			onRow := dy%(cellH+1) == 0
			onCol := dx%(cellW+1) == 0
			if !onRow && !onCol {
				continue
			}

			screen.SetContent(board.X+dx, board.Y+dy, gridRune(dx, dy, board.W, board.H, onRow, onCol), nil, style)
		}
	}
}

// gridRune returns the box-drawing character for a grid position.
func gridRune(dx, dy, w, h int, onRow, onCol bool) rune {
	if !onCol {
		return '─'
	}
	if !onRow {
		return '│'
	}

	isTop := dy == 0
	isBottom := dy == h-1
	isLeft := dx == 0
	isRight := dx == w-1

	switch {
	case isTop && isLeft:
		return '┌'
	case isTop && isRight:
		return '┐'
	case isBottom && isLeft:
		return '└'
	case isBottom && isRight:
		return '┘'
	case isTop:
		return '┬'
	case isBottom:
		return '┴'
	case isLeft:
		return '├'
	case isRight:
		return '┤'
	default:
		return '┼'
	}
}

func isAt(piece *entity.Piece, coord entity.Coord) bool {
	loc, onBoard := piece.Location()
	return onBoard && loc == coord
}

func fill(screen tcell.Screen, area Rect, style tcell.Style) {
	for dy := range area.H {
		for dx := range area.W {
			screen.SetContent(area.X+dx, area.Y+dy, ' ', nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

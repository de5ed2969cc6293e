package gobblet

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gobblet-jr/internal/entity"
)

// BoardSize is the width and height of the grid.
const BoardSize = 3

var (
	ErrInvalidCell = errors.New("invalid cell")
	ErrCannotCover = errors.New("piece cannot cover the top piece")
)

// Board is a 3x3 grid of stacks. The last element of a stack is its top piece.
type Board struct {
	grid     [BoardSize][BoardSize][]*entity.Piece
	lastMove *entity.Coord
}

func NewBoard() *Board {
	return &Board{}
}

// Reset - clears every cell and the last-move marker.
func (that *Board) Reset() {
	that.grid = [BoardSize][BoardSize][]*entity.Piece{}
	that.lastMove = nil
}

func inRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Top returns the visible piece of a cell. Empty and out-of-range cells give nil.
func (that *Board) Top(row, col int) *entity.Piece {
	if !inRange(row, col) {
		return nil
	}

	stack := that.grid[row][col]
	if len(stack) == 0 {
		return nil
	}

	return stack[len(stack)-1]
}

// Depth returns how many pieces are stacked on a cell.
func (that *Board) Depth(row, col int) int {
	if !inRange(row, col) {
		return 0
	}
	return len(that.grid[row][col])
}

// CanPlace - a piece fits on an empty cell or on a strictly smaller top piece.
func (that *Board) CanPlace(piece *entity.Piece, row, col int) bool {
	if piece == nil || !inRange(row, col) {
		return false
	}
	return piece.IsLargerThan(that.Top(row, col))
}

// Place pushes the piece onto the cell and records it as the last move.
// The board is left untouched when CanPlace does not hold.
func (that *Board) Place(piece *entity.Piece, row, col int) error {
	if !inRange(row, col) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCell, row, col)
	}

	if !that.CanPlace(piece, row, col) {
		return fmt.Errorf("%w at (%d,%d)", ErrCannotCover, row, col)
	}

	coord := entity.Coord{Row: row, Col: col}
	that.grid[row][col] = append(that.grid[row][col], piece)
	piece.SetLocation(coord)
	that.lastMove = &coord

	return nil
}

// Remove pops the top piece of a cell, nil if the cell is empty or out of range.
func (that *Board) Remove(row, col int) *entity.Piece {
	if !inRange(row, col) {
		return nil
	}

	stack := that.grid[row][col]
	if len(stack) == 0 {
		return nil
	}

	piece := stack[len(stack)-1]
	stack[len(stack)-1] = nil
	that.grid[row][col] = stack[:len(stack)-1]

	return piece
}

// IsFull reports whether every cell holds at least one piece.
func (that *Board) IsFull() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if that.Top(row, col) == nil {
				return false
			}
		}
	}
	return true
}

// LastMove returns the most recently filled cell.
func (that *Board) LastMove() (entity.Coord, bool) {
	if that.lastMove == nil {
		return entity.Coord{}, false
	}
	return *that.lastMove, true
}

// PieceCount returns the number of pieces on the board.
func (that *Board) PieceCount() int {
	count := 0
	for row := range BoardSize {
		for col := range BoardSize {
			count += len(that.grid[row][col])
		}
	}
	return count
}

// clone copies the stacks so the copy can be popped without touching the board.
// Pieces are shared, so the copy must never call Place.
func (that *Board) clone() *Board {
	scratch := &Board{}
	for row := range BoardSize {
		for col := range BoardSize {
			stack := that.grid[row][col]
			scratch.grid[row][col] = append([]*entity.Piece(nil), stack...)
		}
	}
	if that.lastMove != nil {
		lastMove := *that.lastMove
		scratch.lastMove = &lastMove
	}
	return scratch
}

package entity

import "fmt"

type Color int

const (
	Red Color = iota
	Blue
)

// Colors lists both colors in evaluation order.
var Colors = [2]Color{Red, Blue}

func (that Color) String() string {
	switch that {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%d)", int(that))
	}
}

// Opponent - returns the other color.
func (that Color) Opponent() Color {
	if that == Red {
		return Blue
	}
	return Red
}

type Size int

const (
	Small Size = iota
	Medium
	Large
)

// Sizes lists sizes from largest to smallest, the order reserves are shown in.
var Sizes = [3]Size{Large, Medium, Small}

func (that Size) String() string {
	switch that {
	case Small:
		return "small"
	case Medium:
		return "medium"
	case Large:
		return "large"
	default:
		return fmt.Sprintf("size(%d)", int(that))
	}
}

type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Coord) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Piece is a single gobblet. Color and size never change; the location is
// either nil (in reserve) or the cell whose stack holds the piece.
type Piece struct {
	color    Color
	size     Size
	location *Coord
}

func NewPiece(color Color, size Size) *Piece {
	return &Piece{
		color: color,
		size:  size,
	}
}

func (that *Piece) Color() Color {
	return that.color
}

func (that *Piece) Size() Size {
	return that.size
}

// Location - returns the board cell of the piece, ok is false while it sits in reserve.
func (that *Piece) Location() (Coord, bool) {
	if that.location == nil {
		return Coord{}, false
	}
	return *that.location, true
}

func (that *Piece) InReserve() bool {
	return that.location == nil
}

// SetLocation records the cell the piece was pushed onto.
func (that *Piece) SetLocation(coord Coord) {
	that.location = &coord
}

// ReturnToReserve clears the board location.
func (that *Piece) ReturnToReserve() {
	that.location = nil
}

// Snapshot - returns a detached copy of the piece.
func (that *Piece) Snapshot() *Piece {
	if that == nil {
		return nil
	}

	snapshot := *that
	if that.location != nil {
		loc := *that.location
		snapshot.location = &loc
	}

	return &snapshot
}

// IsLargerThan - reports whether the piece can cover other. Nothing is smaller than any piece.
func (that *Piece) IsLargerThan(other *Piece) bool {
	return other == nil || that.size > other.size
}

func (that *Piece) String() string {
	if loc, ok := that.Location(); ok {
		return fmt.Sprintf("%s %s at %s", that.color, that.size, loc)
	}
	return fmt.Sprintf("%s %s in reserve", that.color, that.size)
}

// BelongsTo - the single ownership rule: a piece belongs to the player of its color.
func BelongsTo(piece *Piece, color Color) bool {
	return piece != nil && piece.color == color
}

package entity

// PiecesPerSize is how many pieces of each size a player starts with.
const PiecesPerSize = 2

type Player struct {
	Color   Color
	reserve []*Piece
}

func NewPlayer(color Color) *Player {
	player := &Player{Color: color}
	player.ResetReserve()

	return player
}

// ResetReserve - refills the reserve with two pieces of each size, largest first.
func (that *Player) ResetReserve() {
	that.reserve = make([]*Piece, 0, len(Sizes)*PiecesPerSize)
	for _, size := range Sizes {
		for range PiecesPerSize {
			that.reserve = append(that.reserve, NewPiece(that.Color, size))
		}
	}
}

// Reserve returns a copy of the pieces still in reserve.
func (that *Player) Reserve() []*Piece {
	reserve := make([]*Piece, len(that.reserve))
	copy(reserve, that.reserve)

	return reserve
}

// PieceOfSize - returns the first reserve piece of the given size or nil.
func (that *Player) PieceOfSize(size Size) *Piece {
	for _, piece := range that.reserve {
		if piece.Size() == size {
			return piece
		}
	}
	return nil
}

func (that *Player) RemoveFromReserve(piece *Piece) bool {
	for i, p := range that.reserve {
		if p == piece {
			that.reserve = append(that.reserve[:i], that.reserve[i+1:]...)
			return true
		}
	}
	return false
}

func (that *Player) CountOfSize(size Size) int {
	count := 0
	for _, piece := range that.reserve {
		if piece.Size() == size {
			count++
		}
	}
	return count
}

func (that *Player) Owns(piece *Piece) bool {
	return BelongsTo(piece, that.Color)
}

package gobblet

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/gobblet-jr/internal/apperror"
	"github.com/rocketscienceinc/gobblet-jr/internal/entity"
)

var (
	ErrPieceCovered = errors.New("selected piece is covered")
	ErrNotInReserve = errors.New("selected piece is not in its owner's reserve")
)

// Engine owns the board, both reserves, the turn and the current selection.
// It is not safe for concurrent use.
type Engine struct {
	board   *Board
	players map[entity.Color]*entity.Player
	state   entity.GameState
	turn    entity.Color

	selected *entity.Piece
	legal    []entity.Coord
	moves    int
}

func NewEngine() *Engine {
	engine := &Engine{
		board: NewBoard(),
		players: map[entity.Color]*entity.Player{
			entity.Red:  entity.NewPlayer(entity.Red),
			entity.Blue: entity.NewPlayer(entity.Blue),
		},
	}
	engine.Reset()

	return engine
}

// Reset - empties the board, refills both reserves and gives RED the first move.
func (that *Engine) Reset() {
	that.board.Reset()
	for _, player := range that.players {
		player.ResetReserve()
	}

	that.state = entity.StateRedTurn
	that.turn = entity.Red
	that.selected = nil
	that.legal = nil
	that.moves = 0
}

func (that *Engine) Board() *Board {
	return that.board
}

func (that *Engine) State() entity.GameState {
	return that.state
}

func (that *Engine) Player(color entity.Color) *entity.Player {
	return that.players[color]
}

// CurrentPlayer returns the player to move. Once the game is over it keeps
// returning whoever made the final move.
func (that *Engine) CurrentPlayer() *entity.Player {
	return that.players[that.turn]
}

// Moves returns how many moves were made since the last reset.
func (that *Engine) Moves() int {
	return that.moves
}

func (that *Engine) Selected() *entity.Piece {
	return that.selected
}

// LegalDestinations returns the cached destinations of the selected piece in row-major order.
func (that *Engine) LegalDestinations() []entity.Coord {
	return slices.Clone(that.legal)
}

// IsLegal reports whether coord is among the cached destinations.
func (that *Engine) IsLegal(coord entity.Coord) bool {
	return slices.Contains(that.legal, coord)
}

// SelectPiece replaces the current selection and caches its destinations.
// Ownership is not checked here, see entity.BelongsTo.
func (that *Engine) SelectPiece(piece *entity.Piece) {
	if piece == nil {
		that.Deselect()
		return
	}

	that.selected = piece
	that.legal = that.LegalDestinationsFor(piece)
}

// Deselect drops the current selection.
func (that *Engine) Deselect() {
	that.selected = nil
	that.legal = nil
}

// LegalDestinationsFor - computes where piece may go, row 0..2 then col 0..2.
func (that *Engine) LegalDestinationsFor(piece *entity.Piece) []entity.Coord {
	from, onBoard := piece.Location()

	destinations := make([]entity.Coord, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if onBoard && from.Row == row && from.Col == col {
				continue
			}

			if !that.board.CanPlace(piece, row, col) {
				continue
			}

			// On-board moves may uncover an opponent line; only placements are screened.
			if !onBoard && that.WouldRevealOpponentWin(piece, nil, row, col) {
				continue
			}

			destinations = append(destinations, entity.Coord{Row: row, Col: col})
		}
	}

	return destinations
}

// WouldRevealOpponentWin lifts piece off from (when it is the top piece there)
// on a scratch copy of the board and reports whether the opponent then shows a
// full line. The destination is not simulated. The board itself is never modified.
func (that *Engine) WouldRevealOpponentWin(piece *entity.Piece, from *entity.Coord, toRow, toCol int) bool {
	scratch := that.board.clone()
	if from != nil && scratch.Top(from.Row, from.Col) == piece {
		scratch.Remove(from.Row, from.Col)
	}

	return hasLine(scratch, piece.Color().Opponent())
}

// CheckWin reports whether color owns the top piece of every cell of some line.
func (that *Engine) CheckWin(color entity.Color) bool {
	return hasLine(that.board, color)
}

// MakeMove moves the selected piece to (row, col), reporting false when the
// move is rejected. A rejected move changes nothing.
func (that *Engine) MakeMove(row, col int) bool {
	return that.Move(entity.Coord{Row: row, Col: col}) == nil
}

// Move is MakeMove with the reason for a rejection.
func (that *Engine) Move(to entity.Coord) error {
	if that.state.IsFinished() {
		return apperror.ErrGameFinished
	}

	piece := that.selected
	if piece == nil {
		return apperror.ErrNoPieceSelected
	}

	if !that.IsLegal(to) || !that.board.CanPlace(piece, to.Row, to.Col) {
		return fmt.Errorf("%w: %s to %s", apperror.ErrIllegalMove, piece, to)
	}

	if err := that.lift(piece); err != nil {
		return err
	}

	if err := that.board.Place(piece, to.Row, to.Col); err != nil {
		// Unreachable while the cache is in sync with the board.
		return fmt.Errorf("failed to place piece: %w", err)
	}

	that.Deselect()
	that.moves++
	that.updateState()

	return nil
}

// lift takes piece out of its single owning container.
func (that *Engine) lift(piece *entity.Piece) error {
	if from, onBoard := piece.Location(); onBoard {
		if that.board.Top(from.Row, from.Col) != piece {
			return fmt.Errorf("%w at %s", ErrPieceCovered, from)
		}

		that.board.Remove(from.Row, from.Col)
		piece.ReturnToReserve()

		return nil
	}

	player, ok := that.players[piece.Color()]
	if !ok || !player.RemoveFromReserve(piece) {
		return fmt.Errorf("%w: %s", ErrNotInReserve, piece)
	}

	return nil
}

// updateState - checks red, then blue, then a full board, otherwise passes the turn.
func (that *Engine) updateState() {
	for _, color := range entity.Colors {
		if that.CheckWin(color) {
			that.state = entity.WinState(color)
			return
		}
	}

	if that.board.IsFull() {
		that.state = entity.StateDraw
		return
	}

	that.turn = that.turn.Opponent()
	that.state = entity.TurnState(that.turn)
}

package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gobblet-jr/internal/apperror"
	"github.com/rocketscienceinc/gobblet-jr/internal/entity"
	"github.com/rocketscienceinc/gobblet-jr/internal/gobblet"
)

type gameUseCase interface {
	Reset(ctx context.Context)
	SelectFromReserve(ctx context.Context, color entity.Color, size entity.Size) error
	SelectOnBoard(ctx context.Context, coord entity.Coord) error
	Deselect(ctx context.Context)
	Move(ctx context.Context, coord entity.Coord) (entity.GameState, error)

	State() entity.GameState
	CurrentColor() entity.Color
	Top(coord entity.Coord) *entity.Piece
	Depth(coord entity.Coord) int
	ReserveCount(color entity.Color, size entity.Size) int
	Selected() *entity.Piece
	IsLegal(coord entity.Coord) bool
	LastMove() (entity.Coord, bool)
	Tally(ctx context.Context) (entity.Tally, error)
}

type Action int

const (
	ActionNone Action = iota
	ActionRedraw
	ActionQuit
)

// Keys are the runes bound to the global commands.
type Keys struct {
	Reset rune
	Quit  rune
}

// sizeKeys pick a reserve piece of the player to move.
var sizeKeys = map[rune]entity.Size{
	'l': entity.Large,
	'm': entity.Medium,
	's': entity.Small,
}

// Controller turns clicks and key presses into use case calls and keeps the
// feedback line shown under the board.
type Controller struct {
	logger *slog.Logger
	game   gameUseCase
	keys   Keys

	layout  Layout
	message string
}

func NewController(logger *slog.Logger, game gameUseCase, keys Keys) *Controller {
	return &Controller{
		logger: logger.With("component", "tui"),
		game:   game,
		keys:   keys,
	}
}

// SetLayout - stores the geometry of the last draw for hit-testing.
func (that *Controller) SetLayout(layout Layout) {
	that.layout = layout
}

func (that *Controller) Layout() Layout {
	return that.layout
}

// Message returns the feedback for the last input, empty when it succeeded.
func (that *Controller) Message() string {
	return that.message
}

// Click - handles a left click at a screen position.
func (that *Controller) Click(ctx context.Context, x, y int) Action {
	if coord, ok := that.layout.CellAt(x, y); ok {
		return that.ClickCell(ctx, coord)
	}

	if color, size, ok := that.layout.SlotAt(x, y); ok {
		return that.ClickReserve(ctx, color, size)
	}

	return ActionNone
}

// ClickCell - moves the selected piece to a legal cell, otherwise (re)selects
// the top piece of the cell.
func (that *Controller) ClickCell(ctx context.Context, coord entity.Coord) Action {
	if that.game.State().IsFinished() {
		return ActionNone
	}

	if that.game.Selected() != nil && that.game.IsLegal(coord) {
		_, err := that.game.Move(ctx, coord)
		that.report(err)

		return ActionRedraw
	}

	err := that.game.SelectOnBoard(ctx, coord)
	if err != nil && that.game.Selected() != nil {
		that.game.Deselect(ctx)
		err = fmt.Errorf("%w: %s", apperror.ErrIllegalMove, coord)
	}
	that.report(err)

	return ActionRedraw
}

// ClickReserve - selects a reserve piece of color and size.
func (that *Controller) ClickReserve(ctx context.Context, color entity.Color, size entity.Size) Action {
	if that.game.State().IsFinished() {
		return ActionNone
	}

	that.report(that.game.SelectFromReserve(ctx, color, size))

	return ActionRedraw
}

// Reset - starts a new match.
func (that *Controller) Reset(ctx context.Context) Action {
	that.game.Reset(ctx)
	that.message = ""

	return ActionRedraw
}

// Key - handles a rune typed on the keyboard. Digits 1-9 pick board cells in
// reading order.
func (that *Controller) Key(ctx context.Context, r rune) Action {
	switch {
	case r == that.keys.Quit:
		return ActionQuit
	case r == that.keys.Reset:
		return that.Reset(ctx)
	case r >= '1' && r <= '9':
		index := int(r - '1')
		return that.ClickCell(ctx, entity.Coord{Row: index / gobblet.BoardSize, Col: index % gobblet.BoardSize})
	}

	if size, ok := sizeKeys[r]; ok {
		return that.ClickReserve(ctx, that.game.CurrentColor(), size)
	}

	return ActionNone
}

// Cancel drops the current selection.
func (that *Controller) Cancel(ctx context.Context) Action {
	if that.game.Selected() == nil {
		return ActionNone
	}

	that.game.Deselect(ctx)
	that.message = ""

	return ActionRedraw
}

func (that *Controller) report(err error) {
	if err == nil {
		that.message = ""
		return
	}

	that.logger.Debug("input rejected", "error", err)
	that.message = describeError(err)
}

func describeError(err error) string {
	switch {
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "That reserve belongs to the other player."
	case errors.Is(err, apperror.ErrNotYourPiece):
		return "That piece belongs to the other player."
	case errors.Is(err, apperror.ErrNoPieceInReserve):
		return "No piece of that size left."
	case errors.Is(err, apperror.ErrEmptyCell):
		return "Nothing to pick up there."
	case errors.Is(err, apperror.ErrIllegalMove):
		return "The selected piece cannot go there."
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over."
	default:
		return err.Error()
	}
}

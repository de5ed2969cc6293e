package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNotYourPiece     = errors.New("piece belongs to the opponent")
	ErrNoPieceSelected  = errors.New("no piece selected")
	ErrIllegalMove      = errors.New("destination is not a legal move")
	ErrEmptyCell        = errors.New("cell is empty")
	ErrNoPieceInReserve = errors.New("no piece of that size in reserve")
)

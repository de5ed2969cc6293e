package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gobblet-jr/internal/apperror"
	"github.com/rocketscienceinc/gobblet-jr/internal/entity"
	"github.com/rocketscienceinc/gobblet-jr/internal/gobblet"
)

type resultRepo interface {
	Save(ctx context.Context, result entity.MatchResult) error
	Tally(ctx context.Context) (entity.Tally, error)
}

// GameUseCase drives one engine on behalf of the player to move.
// All methods are safe for concurrent use; pieces handed out are snapshots.
type GameUseCase struct {
	logger *slog.Logger

	mu      sync.Mutex
	engine  *gobblet.Engine
	results resultRepo
	matchID string
	now     func() time.Time
}

func NewGameUseCase(logger *slog.Logger, engine *gobblet.Engine, results resultRepo) *GameUseCase {
	return &GameUseCase{
		logger:  logger.With("component", "usecase"),
		engine:  engine,
		results: results,
		matchID: uuid.NewString(),
		now:     time.Now,
	}
}

// Reset - starts a new match with a fresh match ID.
func (that *GameUseCase) Reset(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	previous := that.matchID
	that.engine.Reset()
	that.matchID = uuid.NewString()

	that.logger.InfoContext(ctx, "new match", "match_id", that.matchID, "previous_match_id", previous)
}

// SelectFromReserve - selects a reserve piece of size for color, which must be the player to move.
func (that *GameUseCase) SelectFromReserve(ctx context.Context, color entity.Color, size entity.Size) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "SelectFromReserve", "match_id", that.matchID)

	if that.engine.State().IsFinished() {
		return apperror.ErrGameFinished
	}

	if color != that.engine.CurrentPlayer().Color {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.engine.CurrentPlayer().Color)
	}

	piece := that.engine.Player(color).PieceOfSize(size)
	if piece == nil {
		return fmt.Errorf("%w: %s %s", apperror.ErrNoPieceInReserve, color, size)
	}

	that.engine.SelectPiece(piece)
	log.DebugContext(ctx, "piece selected", "piece", piece.String(), "destinations", len(that.engine.LegalDestinations()))

	return nil
}

// SelectOnBoard - selects the top piece of a cell owned by the player to move.
func (that *GameUseCase) SelectOnBoard(ctx context.Context, coord entity.Coord) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "SelectOnBoard", "match_id", that.matchID)

	if that.engine.State().IsFinished() {
		return apperror.ErrGameFinished
	}

	piece := that.engine.Board().Top(coord.Row, coord.Col)
	if piece == nil {
		return fmt.Errorf("%w: %s", apperror.ErrEmptyCell, coord)
	}

	if !that.engine.CurrentPlayer().Owns(piece) {
		return fmt.Errorf("%w: %s", apperror.ErrNotYourPiece, piece)
	}

	that.engine.SelectPiece(piece)
	log.DebugContext(ctx, "piece selected", "piece", piece.String(), "destinations", len(that.engine.LegalDestinations()))

	return nil
}

// Deselect drops the current selection.
func (that *GameUseCase) Deselect(ctx context.Context) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.engine.Deselect()
	that.logger.DebugContext(ctx, "selection cleared", "match_id", that.matchID)
}

// Move - moves the selected piece to coord and records the result once the match is over.
func (that *GameUseCase) Move(ctx context.Context, coord entity.Coord) (entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "Move", "match_id", that.matchID)

	piece := that.engine.Selected()
	if err := that.engine.Move(coord); err != nil {
		log.DebugContext(ctx, "move rejected", "to", coord.String(), "error", err)
		return that.engine.State(), fmt.Errorf("failed to make move: %w", err)
	}

	state := that.engine.State()
	log.InfoContext(ctx, "move made", "piece", piece.String(), "state", state)

	if state.IsFinished() {
		that.saveResult(ctx, log, state)
	}

	return state, nil
}

func (that *GameUseCase) saveResult(ctx context.Context, log *slog.Logger, state entity.GameState) {
	result := entity.MatchResult{
		MatchID:    that.matchID,
		State:      state,
		Moves:      that.engine.Moves(),
		FinishedAt: that.now(),
	}

	if err := that.results.Save(ctx, result); err != nil {
		log.ErrorContext(ctx, "failed to save result", "error", err)
		return
	}

	log.InfoContext(ctx, "match finished", "state", state, "moves", result.Moves)
}

func (that *GameUseCase) MatchID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.matchID
}

func (that *GameUseCase) State() entity.GameState {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.State()
}

// CurrentColor returns the color to move, or the color that made the final move.
func (that *GameUseCase) CurrentColor() entity.Color {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.CurrentPlayer().Color
}

func (that *GameUseCase) Top(coord entity.Coord) *entity.Piece {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.Board().Top(coord.Row, coord.Col).Snapshot()
}

func (that *GameUseCase) Depth(coord entity.Coord) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.Board().Depth(coord.Row, coord.Col)
}

func (that *GameUseCase) ReserveCount(color entity.Color, size entity.Size) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.Player(color).CountOfSize(size)
}

func (that *GameUseCase) Selected() *entity.Piece {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.Selected().Snapshot()
}

func (that *GameUseCase) LegalDestinations() []entity.Coord {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.LegalDestinations()
}

func (that *GameUseCase) IsLegal(coord entity.Coord) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.IsLegal(coord)
}

func (that *GameUseCase) LastMove() (entity.Coord, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.engine.Board().LastMove()
}

// Tally - returns the session tally of finished matches.
func (that *GameUseCase) Tally(ctx context.Context) (entity.Tally, error) {
	tally, err := that.results.Tally(ctx)
	if err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get tally: %w", err)
	}

	return tally, nil
}

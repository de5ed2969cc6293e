package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rocketscienceinc/gobblet-jr/internal/entity"
)

var (
	ErrResultNotFinished = errors.New("match is not finished")
	ErrResultExists      = errors.New("result already saved")
	ErrResultNotFound    = errors.New("result not found")
)

type ResultRepository interface {
	Save(ctx context.Context, result entity.MatchResult) error
	GetByMatchID(ctx context.Context, matchID string) (entity.MatchResult, error)
	Tally(ctx context.Context) (entity.Tally, error)
}

type memResults struct {
	mu      sync.RWMutex
	results map[string]entity.MatchResult
	tally   entity.Tally
}

// NewResultRepository - keeps match results for the lifetime of the process.
func NewResultRepository() ResultRepository {
	return &memResults{
		results: make(map[string]entity.MatchResult),
	}
}

func (that *memResults) Save(ctx context.Context, result entity.MatchResult) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	if !result.State.IsFinished() {
		return fmt.Errorf("%w: %s is %s", ErrResultNotFinished, result.MatchID, result.State)
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.results[result.MatchID]; ok {
		return fmt.Errorf("%w: %s", ErrResultExists, result.MatchID)
	}

	that.results[result.MatchID] = result
	that.tally.Add(result.State)

	return nil
}

func (that *memResults) GetByMatchID(ctx context.Context, matchID string) (entity.MatchResult, error) {
	if err := ctx.Err(); err != nil {
		return entity.MatchResult{}, fmt.Errorf("failed to get result: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	result, ok := that.results[matchID]
	if !ok {
		return entity.MatchResult{}, ErrResultNotFound
	}

	return result, nil
}

func (that *memResults) Tally(ctx context.Context) (entity.Tally, error) {
	if err := ctx.Err(); err != nil {
		return entity.Tally{}, fmt.Errorf("failed to get tally: %w", err)
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.tally, nil
}

// Package stats derives player statistics from stored state.
package stats

import (
	"context"
	"fmt"

	"github.com/osse101/CaseOpener_Go/internal/logger"
	"github.com/osse101/CaseOpener_Go/internal/repository"
)

// Repository is the read surface the statistics need.
type Repository interface {
	repository.GameStates
	repository.Inventory
}

// Service defines the interface for stats operations
type Service interface {
	GetUserStats(ctx context.Context, userID string) (*Summary, error)
}

type service struct {
	repo Repository
}

// NewService creates a new stats service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetUserStats loads the user's state and inventory and summarizes them.
func (s *service) GetUserStats(ctx context.Context, userID string) (*Summary, error) {
	state, err := s.repo.GetGameState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetStateFailed, err)
	}
	items, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetInventoryFailed, err)
	}

	summary := Summarize(*state, items)
	logger.FromContext(ctx).Debug(LogMsgStatsComputed, LogFieldUserID, userID, LogFieldItems, len(items))
	return &summary, nil
}

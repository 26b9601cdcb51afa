package game

import (
	"context"

	"github.com/osse101/CaseOpener_Go/internal/stats"
)

func (s *service) Statistics(ctx context.Context, userID string) (*stats.Summary, error) {
	return s.stats.GetUserStats(ctx, userID)
}

package app

import (
	"context"

	"github.com/example/mnemona/internal/ports/primary"
	"github.com/example/mnemona/internal/ports/secondary"
)

// WeekServiceImpl implements the WeekService interface.
type WeekServiceImpl struct {
	weekRepo secondary.WeekRepository
}

// NewWeekService creates a new WeekService with injected dependencies.
func NewWeekService(weekRepo secondary.WeekRepository) *WeekServiceImpl {
	return &WeekServiceImpl{
		weekRepo: weekRepo,
	}
}

// SetComplete toggles a week's completion flag.
func (s *WeekServiceImpl) SetComplete(ctx context.Context, weekID string, complete bool) error {
	return s.weekRepo.SetComplete(ctx, weekID, complete)
}

// Ensure WeekServiceImpl implements the interface
var _ primary.WeekService = (*WeekServiceImpl)(nil)

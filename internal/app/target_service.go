package app

import (
	"context"

	"github.com/example/mnemona/internal/ports/primary"
	"github.com/example/mnemona/internal/ports/secondary"
)

// TargetServiceImpl implements the TargetService interface.
type TargetServiceImpl struct {
	targetRepo secondary.TargetRepository
}

// NewTargetService creates a new TargetService with injected dependencies.
func NewTargetService(targetRepo secondary.TargetRepository) *TargetServiceImpl {
	return &TargetServiceImpl{
		targetRepo: targetRepo,
	}
}

// SetComplete toggles a target's completion flag.
func (s *TargetServiceImpl) SetComplete(ctx context.Context, targetID string, complete bool) error {
	return s.targetRepo.SetComplete(ctx, targetID, complete)
}

// Ensure TargetServiceImpl implements the interface
var _ primary.TargetService = (*TargetServiceImpl)(nil)

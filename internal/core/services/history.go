package services

import (
	"context"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
	"github.com/custodia-labs/samplelist/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads recorded dump runs.
type HistoryService struct {
	runStore driven.RunStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(runStore driven.RunStore) *HistoryService {
	return &HistoryService{runStore: runStore}
}

// List returns recent runs, most recent first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.runStore.List(ctx, limit)
}

// Get returns a run with its per-sample results.
func (s *HistoryService) Get(ctx context.Context, runID string) (*domain.Run, error) {
	if s.runStore == nil {
		return nil, domain.ErrNotImplemented
	}
	if runID == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.runStore.Get(ctx, runID)
}

package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
)

// Ensure RunStore implements the interface.
var _ driven.RunStore = (*RunStore)(nil)

// RunStore is an in-memory implementation of driven.RunStore.
// Used when history persistence is disabled.
type RunStore struct {
	mu   sync.RWMutex
	runs map[string]*domain.Run
}

// NewRunStore creates a new in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{
		runs: make(map[string]*domain.Run),
	}
}

// Create stores a new run.
func (s *RunStore) Create(_ context.Context, run domain.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.runs[run.ID]; exists {
		return domain.ErrInvalidInput
	}
	run.Samples = nil
	s.runs[run.ID] = &run
	return nil
}

// AddResult appends a sample result to a run.
func (s *RunStore) AddResult(_ context.Context, runID string, result domain.SampleResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return domain.ErrNotFound
	}
	run.Samples = append(run.Samples, result)
	return nil
}

// Finish marks a run as completed.
func (s *RunStore) Finish(
	_ context.Context, runID string, status domain.RunStatus, errMsg string, finishedAt time.Time,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return domain.ErrNotFound
	}
	run.Status = status
	run.Error = errMsg
	run.FinishedAt = finishedAt
	return nil
}

// Get retrieves a run with its sample results.
func (s *RunStore) Get(_ context.Context, runID string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[runID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *run
	cp.Samples = append([]domain.SampleResult(nil), run.Samples...)
	return &cp, nil
}

// List returns runs, most recent first, without sample results.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]domain.Run, 0, len(s.runs))
	for _, run := range s.runs {
		cp := *run
		cp.Samples = nil
		runs = append(runs, cp)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

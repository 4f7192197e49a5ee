package driving

import (
	"context"

	"github.com/custodia-labs/samplelist/internal/core/domain"
)

// HistoryService exposes recorded dump runs.
type HistoryService interface {
	// List returns recent runs, most recent first.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get returns a run with its per-sample results.
	Get(ctx context.Context, runID string) (*domain.Run, error)
}

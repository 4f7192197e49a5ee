package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/samplelist/internal/core/domain"
)

// RunStore persists dump run history.
type RunStore interface {
	// Create stores a new run. Samples on the run are ignored.
	Create(ctx context.Context, run domain.Run) error

	// AddResult appends a sample result to a run.
	AddResult(ctx context.Context, runID string, result domain.SampleResult) error

	// Finish marks a run as completed with the given status.
	Finish(ctx context.Context, runID string, status domain.RunStatus, errMsg string, finishedAt time.Time) error

	// Get retrieves a run with its sample results.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, runID string) (*domain.Run, error)

	// List returns runs, most recent first, without sample results.
	// A limit of zero or less returns all runs.
	List(ctx context.Context, limit int) ([]domain.Run, error)
}

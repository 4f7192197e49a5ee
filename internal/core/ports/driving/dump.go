package driving

import (
	"context"

	"github.com/custodia-labs/samplelist/internal/core/domain"
)

// ProgressFunc is called once per sample, before its catalog query.
type ProgressFunc func(sample domain.Sample)

// DumpOptions tunes a single dump.
type DumpOptions struct {
	// Progress reports the sample about to be processed. May be nil.
	Progress ProgressFunc
}

// DumpService fetches file lists for every sample in a registry and
// writes them to disk.
type DumpService interface {
	// Dump processes samples sequentially in registry order and stops at
	// the first failure. The returned run is non-nil whenever a run was
	// started, including on failure.
	Dump(ctx context.Context, registry *domain.Registry, opts DumpOptions) (*domain.Run, error)
}

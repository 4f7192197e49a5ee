package driven

import (
	"context"

	"github.com/custodia-labs/samplelist/internal/core/domain"
)

// Catalog lists the files belonging to a dataset.
// The DBS reader client implements it; tests substitute in-memory fakes.
type Catalog interface {
	// ListFiles returns the non-detailed file listing for a dataset,
	// in the order the catalog returns it. An empty slice is a valid
	// result for a dataset with no files. Unknown datasets and
	// transport failures are returned as errors.
	ListFiles(ctx context.Context, dataset string) ([]domain.FileRecord, error)

	// Endpoint returns the catalog location, for logs and run history.
	Endpoint() string
}

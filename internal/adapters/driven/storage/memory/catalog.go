package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog is an in-memory implementation of driven.Catalog.
// Datasets that were never added are unknown and fail like a catalog
// rejecting the identifier.
type Catalog struct {
	mu       sync.Mutex
	files    map[string][]string
	failures map[string]error
	queries  []string
}

// NewCatalog creates an empty in-memory catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		files:    make(map[string][]string),
		failures: make(map[string]error),
	}
}

// AddDataset registers a dataset with its logical file names, in order.
// Passing no names registers an empty dataset.
func (c *Catalog) AddDataset(dataset string, lfns ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[dataset] = append([]string{}, lfns...)
}

// FailDataset makes every query for dataset return err.
func (c *Catalog) FailDataset(dataset string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[dataset] = err
}

// ListFiles returns the registered files for dataset.
func (c *Catalog) ListFiles(_ context.Context, dataset string) ([]domain.FileRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queries = append(c.queries, dataset)

	if err, ok := c.failures[dataset]; ok {
		return nil, err
	}
	lfns, ok := c.files[dataset]
	if !ok {
		return nil, fmt.Errorf("dataset %s: %w", dataset, domain.ErrNotFound)
	}

	records := make([]domain.FileRecord, 0, len(lfns))
	for _, lfn := range lfns {
		records = append(records, domain.FileRecord{LogicalFileName: lfn})
	}
	return records, nil
}

// Endpoint returns a fixed in-memory marker.
func (c *Catalog) Endpoint() string {
	return ":memory:"
}

// Queries returns the datasets queried so far, in call order.
func (c *Catalog) Queries() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.queries...)
}

package driven

import "github.com/custodia-labs/samplelist/internal/core/domain"

// RegistrySource supplies the data and Monte-Carlo sample groups
// that are merged into a registry.
type RegistrySource interface {
	// Load reads both groups, each in declaration order.
	Load() (domain.SampleSets, error)

	// Path returns where the groups are read from.
	Path() string
}

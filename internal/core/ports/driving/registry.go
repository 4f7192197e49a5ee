package driving

import "github.com/custodia-labs/samplelist/internal/core/domain"

// RegistryService builds the sample registry from a registry file.
type RegistryService interface {
	// Load reads the registry at path and merges data then MC samples.
	// When only is non-empty the result is restricted to those short names,
	// keeping registry order.
	Load(path string, only []string) (*domain.Registry, error)
}

package services

import (
	"fmt"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
	"github.com/custodia-labs/samplelist/internal/core/ports/driving"
	"github.com/custodia-labs/samplelist/internal/logger"
)

// Ensure RegistryService implements the interface.
var _ driving.RegistryService = (*RegistryService)(nil)

// RegistrySourceFunc opens the registry source stored at path.
type RegistrySourceFunc func(path string) driven.RegistrySource

// RegistryService loads and merges sample registries.
type RegistryService struct {
	open RegistrySourceFunc
}

// NewRegistryService creates a new registry service.
func NewRegistryService(open RegistrySourceFunc) *RegistryService {
	return &RegistryService{open: open}
}

// Load reads the registry source and builds the merged registry.
func (s *RegistryService) Load(path string, only []string) (*domain.Registry, error) {
	if s.open == nil {
		return nil, domain.ErrNotImplemented
	}
	if path == "" {
		return nil, fmt.Errorf("%w: registry path is empty", domain.ErrInvalidInput)
	}

	source := s.open(path)
	sets, err := source.Load()
	if err != nil {
		return nil, err
	}

	registry := domain.MergeRegistry(sets.Data, sets.MC)
	logger.Debug("Loaded %d data and %d MC samples from %s (%d after merge)",
		len(sets.Data), len(sets.MC), source.Path(), registry.Len())

	if len(only) == 0 {
		return registry, nil
	}
	return registry.Select(only)
}

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/custodia-labs/samplelist/internal/adapters/driven/catalog/dbs"
	"github.com/custodia-labs/samplelist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/samplelist/internal/adapters/driven/filelist/textfile"
	"github.com/custodia-labs/samplelist/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/samplelist/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/samplelist/internal/adapters/driving/cli"
	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
	"github.com/custodia-labs/samplelist/internal/core/ports/driving"
	"github.com/custodia-labs/samplelist/internal/core/services"
	"github.com/custodia-labs/samplelist/internal/logger"
)

// dataDirName holds the history database inside the config directory.
const dataDirName = "data"

// bootstrap wires adapters and services from the configuration in configDir.
func bootstrap(configDir string) (*cli.Services, error) {
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, fmt.Errorf("getting config directory: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	logger.Debug("Config: %s", configStore.Path())

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("loading settings: %w", err)
	}

	runStore, closeStore := openRunStore(configDir, settings.History)

	catalog := dbs.NewClient(dbs.Config{
		URL:           settings.Catalog.URL,
		RatePerSecond: settings.Catalog.RatePerSecond,
		Timeout:       time.Duration(settings.Catalog.TimeoutSeconds) * time.Second,
	})
	logger.Debug("Catalog: %s", catalog.Endpoint())

	return &cli.Services{
		Settings: settingsService,
		History:  services.NewHistoryService(runStore),
		Registry: services.NewRegistryService(func(path string) driven.RegistrySource {
			return file.NewRegistryFile(path)
		}),
		NewDump: func(output domain.OutputSettings) (driving.DumpService, error) {
			writer := textfile.NewWriter(output.Dir, output.CreateDir)
			return services.NewDumpService(catalog, writer, runStore), nil
		},
		Close: closeStore,
	}, nil
}

// openRunStore returns the SQLite history store, or an in-memory store when
// history is disabled or the database cannot be opened.
func openRunStore(configDir string, history domain.HistorySettings) (driven.RunStore, func() error) {
	if !history.Enabled {
		return memory.NewRunStore(), nil
	}

	store, err := sqlite.NewStore(filepath.Join(configDir, dataDirName))
	if err != nil {
		logger.Warn("run history disabled: %v", err)
		return memory.NewRunStore(), nil
	}
	logger.Debug("History: %s", store.Path())
	return store.RunStore(), store.Close
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driving"
)

// mockSettingsService is a test double for driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	getErr   error
	setErr   error
	saved    *domain.AppSettings
	set      map[string]string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultAppSettings(),
		set:      make(map[string]string),
	}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.saved = settings
	return nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"catalog.url", "output.dir"}
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// mockHistoryService is a test double for driving.HistoryService.
type mockHistoryService struct {
	runs      []domain.Run
	err       error
	lastLimit int
}

func (m *mockHistoryService) List(_ context.Context, limit int) ([]domain.Run, error) {
	m.lastLimit = limit
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, runID string) (*domain.Run, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.runs {
		if m.runs[i].ID == runID {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// mockRegistryService is a test double for driving.RegistryService.
type mockRegistryService struct {
	samples  []domain.Sample
	err      error
	lastPath string
	lastOnly []string
}

func (m *mockRegistryService) Load(path string, only []string) (*domain.Registry, error) {
	m.lastPath = path
	m.lastOnly = only
	if m.err != nil {
		return nil, m.err
	}
	registry := domain.NewRegistry(m.samples)
	if len(only) > 0 {
		return registry.Select(only)
	}
	return registry, nil
}

// mockDumpService reports progress for every sample and fails on failAt.
type mockDumpService struct {
	output    domain.OutputSettings
	failAt    string
	processed []string
}

func (m *mockDumpService) Dump(
	_ context.Context, registry *domain.Registry, opts driving.DumpOptions,
) (*domain.Run, error) {
	run := &domain.Run{ID: "run-1", OutputDir: m.output.Dir, Status: domain.RunStatusRunning}
	for _, sample := range registry.Entries() {
		if opts.Progress != nil {
			opts.Progress(sample)
		}
		if sample.ShortName == m.failAt {
			run.Status = domain.RunStatusFailed
			return run, errors.New("sample " + sample.ShortName + ": catalog query failed")
		}
		m.processed = append(m.processed, sample.ShortName)
		run.Samples = append(run.Samples, domain.SampleResult{ShortName: sample.ShortName, Files: 1})
	}
	run.Status = domain.RunStatusSucceeded
	return run, nil
}

type testServices struct {
	settings *mockSettingsService
	history  *mockHistoryService
	registry *mockRegistryService
	dump     *mockDumpService
}

// setupTestServices installs mocks and returns them with a cleanup func.
func setupTestServices() (*testServices, func()) {
	ts := &testServices{
		settings: newMockSettingsService(),
		history: &mockHistoryService{runs: []domain.Run{
			{
				ID:         "run-1",
				CatalogURL: domain.DefaultCatalogURL,
				OutputDir:  "./NanoAODv7",
				Status:     domain.RunStatusSucceeded,
				StartedAt:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
				FinishedAt: time.Date(2024, 3, 1, 10, 1, 0, 0, time.UTC),
				Samples: []domain.SampleResult{
					{ShortName: "A", Dataset: "/Data/Set1", Files: 1, OutputPath: "NanoAODv7/A.txt"},
					{ShortName: "B", Dataset: "/MC/Set2", Files: 2, OutputPath: "NanoAODv7/B.txt"},
				},
			},
		}},
		registry: &mockRegistryService{samples: []domain.Sample{
			{ShortName: "A", Dataset: "/Data/Set1"},
			{ShortName: "B", Dataset: "/MC/Set2"},
		}},
		dump: &mockDumpService{},
	}

	oldSettings, oldHistory, oldRegistry, oldDump, oldClose, oldBootstrap :=
		settingsService, historyService, registryService, newDumpService, closeServices, bootstrap

	SetServices(&Services{
		Settings: ts.settings,
		History:  ts.history,
		Registry: ts.registry,
		NewDump: func(output domain.OutputSettings) (driving.DumpService, error) {
			ts.dump.output = output
			return ts.dump, nil
		},
	})
	bootstrap = nil

	return ts, func() {
		settingsService, historyService, registryService, newDumpService, closeServices, bootstrap =
			oldSettings, oldHistory, oldRegistry, oldDump, oldClose, oldBootstrap
	}
}

// executeCommand runs the root command with args and fresh flag values.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	configDir = ""
	verbose = false
	dumpRegistry = ""
	dumpOutput = ""
	dumpCreateDir = false
	dumpOnly = nil
	samplesRegistry = ""
	historyLimit = 20
}

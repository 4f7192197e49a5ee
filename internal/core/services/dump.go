package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
	"github.com/custodia-labs/samplelist/internal/core/ports/driving"
	"github.com/custodia-labs/samplelist/internal/logger"
)

// Ensure DumpService implements the interface.
var _ driving.DumpService = (*DumpService)(nil)

// DumpService is the fetch-and-dump driver. For each sample it queries the
// catalog once, prefixes every logical file name and writes the list file.
type DumpService struct {
	catalog  driven.Catalog
	writer   driven.FileListWriter
	runStore driven.RunStore

	now func() time.Time
}

// NewDumpService creates a new dump service.
// runStore is optional - if nil, runs are not recorded.
func NewDumpService(
	catalog driven.Catalog,
	writer driven.FileListWriter,
	runStore driven.RunStore,
) *DumpService {
	return &DumpService{
		catalog:  catalog,
		writer:   writer,
		runStore: runStore,
		now:      time.Now,
	}
}

// Dump processes the registry sequentially and stops at the first error.
func (s *DumpService) Dump(
	ctx context.Context,
	registry *domain.Registry,
	opts driving.DumpOptions,
) (*domain.Run, error) {
	if s.catalog == nil || s.writer == nil {
		return nil, domain.ErrNotImplemented
	}

	run := &domain.Run{
		ID:         uuid.New().String(),
		CatalogURL: s.catalog.Endpoint(),
		OutputDir:  s.writer.Dir(),
		Status:     domain.RunStatusRunning,
		StartedAt:  s.now(),
	}
	s.record("create run", func() error {
		return s.runStore.Create(ctx, *run)
	})

	logger.Section("Dump")
	logger.Info("Run %s: %d samples from %s into %s",
		run.ID, registry.Len(), run.CatalogURL, run.OutputDir)

	for _, sample := range registry.Entries() {
		result, err := s.dumpSample(ctx, sample, opts.Progress)
		if err != nil {
			s.finish(ctx, run, domain.RunStatusFailed, err)
			return run, err
		}

		run.Samples = append(run.Samples, *result)
		s.record("add result", func() error {
			return s.runStore.AddResult(ctx, run.ID, *result)
		})
	}

	s.finish(ctx, run, domain.RunStatusSucceeded, nil)
	logger.Info("Run %s complete: %d samples, %d files", run.ID, len(run.Samples), run.TotalFiles())
	return run, nil
}

// dumpSample queries before opening the output, so a failed query leaves
// no list file behind.
func (s *DumpService) dumpSample(
	ctx context.Context,
	sample domain.Sample,
	progress driving.ProgressFunc,
) (*domain.SampleResult, error) {
	if progress != nil {
		progress(sample)
	}

	if sample.Dataset == "" {
		return nil, fmt.Errorf("sample %s: %w: empty dataset identifier", sample.ShortName, domain.ErrInvalidInput)
	}

	logger.Debug("Listing files for %s (%s)", sample.ShortName, sample.Dataset)
	records, err := s.catalog.ListFiles(ctx, sample.Dataset)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w: %w", sample.ShortName, domain.ErrCatalogQuery, err)
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, domain.AccessURL(rec.LogicalFileName))
	}

	path, err := s.writer.WriteList(ctx, sample.ShortName, lines)
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w: %w", sample.ShortName, domain.ErrOutputWrite, err)
	}
	logger.Debug("Wrote %d files to %s", len(lines), path)

	return &domain.SampleResult{
		ShortName:  sample.ShortName,
		Dataset:    sample.Dataset,
		Files:      len(lines),
		OutputPath: path,
		WrittenAt:  s.now(),
	}, nil
}

func (s *DumpService) finish(ctx context.Context, run *domain.Run, status domain.RunStatus, cause error) {
	run.Status = status
	run.FinishedAt = s.now()
	if cause != nil {
		run.Error = cause.Error()
	}
	s.record("finish run", func() error {
		return s.runStore.Finish(ctx, run.ID, run.Status, run.Error, run.FinishedAt)
	})
}

// record writes to run history. History is auxiliary, so failures are
// logged and never abort a dump.
func (s *DumpService) record(op string, fn func() error) {
	if s.runStore == nil {
		return
	}
	if err := fn(); err != nil {
		logger.Warn("run history: %s: %v", op, err)
	}
}

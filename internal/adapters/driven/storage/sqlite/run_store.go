package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/samplelist/internal/core/domain"
	"github.com/custodia-labs/samplelist/internal/core/ports/driven"
)

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// Create stores a new run.
func (s *runStore) Create(ctx context.Context, run domain.Run) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO runs (id, catalog_url, output_dir, status, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID,
		run.CatalogURL,
		run.OutputDir,
		run.Status.String(),
		nullString(run.Error),
		formatTime(run.StartedAt),
		nullTime(run.FinishedAt))
	if err != nil {
		return fmt.Errorf("creating run: %w", err)
	}
	return nil
}

// AddResult appends a sample result at the next position.
func (s *runStore) AddResult(ctx context.Context, runID string, result domain.SampleResult) error {
	res, err := s.store.db.ExecContext(ctx, `
		INSERT INTO run_samples (run_id, position, short_name, dataset, files, output_path, written_at)
		SELECT id,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM run_samples WHERE run_id = ?),
			?, ?, ?, ?, ?
		FROM runs WHERE id = ?
	`, runID,
		result.ShortName,
		result.Dataset,
		result.Files,
		result.OutputPath,
		formatTime(result.WrittenAt),
		runID)
	if err != nil {
		return fmt.Errorf("adding run result: %w", err)
	}
	return requireAffected(res)
}

// Finish marks a run as completed.
func (s *runStore) Finish(
	ctx context.Context, runID string, status domain.RunStatus, errMsg string, finishedAt time.Time,
) error {
	if !status.IsValid() {
		return domain.ErrInvalidInput
	}

	res, err := s.store.db.ExecContext(ctx, `
		UPDATE runs SET status = ?, error = ?, finished_at = ?
		WHERE id = ?
	`, status.String(), nullString(errMsg), formatTime(finishedAt), runID)
	if err != nil {
		return fmt.Errorf("finishing run: %w", err)
	}
	return requireAffected(res)
}

// Get retrieves a run with its sample results.
func (s *runStore) Get(ctx context.Context, runID string) (*domain.Run, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, catalog_url, output_dir, status, error, started_at, finished_at
		FROM runs WHERE id = ?
	`, runID)

	run, err := scanRun(row)
	if err != nil {
		return nil, err
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT short_name, dataset, files, output_path, written_at
		FROM run_samples WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run samples: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var result domain.SampleResult
		var writtenAt string
		if err := rows.Scan(&result.ShortName, &result.Dataset, &result.Files, &result.OutputPath, &writtenAt); err != nil {
			return nil, fmt.Errorf("scanning run sample: %w", err)
		}
		result.WrittenAt = parseTime(writtenAt)
		run.Samples = append(run.Samples, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating run samples: %w", err)
	}

	return run, nil
}

// List returns runs, most recent first, without sample results.
func (s *runStore) List(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, catalog_url, output_dir, status, error, started_at, finished_at
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.Run //nolint:prealloc // size unknown from query
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	return runs, nil
}

// ==================== Helper Functions ====================

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*domain.Run, error) {
	var run domain.Run
	var status, startedAt string
	var errMsg, finishedAt sql.NullString

	err := row.Scan(&run.ID, &run.CatalogURL, &run.OutputDir, &status, &errMsg, &startedAt, &finishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning run: %w", err)
	}

	run.Status = domain.RunStatus(status)
	run.Error = errMsg.String
	run.StartedAt = parseTime(startedAt)
	if finishedAt.Valid {
		run.FinishedAt = parseTime(finishedAt.String)
	}
	return &run, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// timeLayout has a fixed-width fraction so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func nullTime(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(t), Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

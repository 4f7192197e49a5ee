package domain

import "time"

// RunStatus is the lifecycle state of a dump run.
type RunStatus string

// Run states.
const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// String returns the string representation.
func (s RunStatus) String() string {
	return string(s)
}

// IsValid returns true if the status is recognised.
func (s RunStatus) IsValid() bool {
	switch s {
	case RunStatusRunning, RunStatusSucceeded, RunStatusFailed:
		return true
	default:
		return false
	}
}

// Run records one invocation of the fetch-and-dump driver.
type Run struct {
	// ID is a random UUID.
	ID string

	// CatalogURL is the catalog endpoint queried.
	CatalogURL string

	// OutputDir is where list files were written.
	OutputDir string

	// Status is the current lifecycle state.
	Status RunStatus

	// Error holds the failure message for failed runs.
	Error string

	// Samples holds one result per processed sample, in processing order.
	Samples []SampleResult

	// StartedAt is when the run began.
	StartedAt time.Time

	// FinishedAt is zero while the run is in progress.
	FinishedAt time.Time
}

// TotalFiles returns the number of files written across all samples.
func (r *Run) TotalFiles() int {
	total := 0
	for _, s := range r.Samples {
		total += s.Files
	}
	return total
}

// Duration returns how long the run took, or zero if it has not finished.
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// SampleResult is the outcome of dumping one sample.
type SampleResult struct {
	ShortName  string
	Dataset    string
	Files      int
	OutputPath string
	WrittenAt  time.Time
}

package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCmd_HasLimitFlag(t *testing.T) {
	flag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, flag, "limit flag should exist")
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "20", flag.DefValue)
}

func TestHistoryCmd_ListsRuns(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "history", "--limit", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "succeeded")
	assert.Contains(t, out, "./NanoAODv7")
	assert.Equal(t, 5, ts.history.lastLimit)
}

func TestHistoryCmd_Empty(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.history.runs = nil

	out, err := executeCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
	assert.Equal(t, 20, ts.history.lastLimit)
}

func TestHistoryCmd_Error(t *testing.T) {
	ts, cleanup := setupTestServices()
	defer cleanup()
	ts.history.err = errors.New("database locked")

	_, err := executeCommand(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list runs")
}

func TestHistoryShowCmd_ShowsSamples(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	out, err := executeCommand(t, "history", "show", "run-1")
	require.NoError(t, err)

	assert.Contains(t, out, "Run:      run-1")
	assert.Contains(t, out, "Status:   succeeded")
	assert.Contains(t, out, "(1m0s)")
	assert.Contains(t, out, "Samples (2, 3 files):")
	assert.Contains(t, out, "NanoAODv7/B.txt")
}

func TestHistoryShowCmd_NotFound(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "history", "show", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run not found: missing")
}

func TestHistoryShowCmd_RequiresExactlyOneArg(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := executeCommand(t, "history", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestHistoryCmd_ServiceNotConfigured(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()
	historyService = nil

	_, err := executeCommand(t, "history")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history service not configured")

	_, err = executeCommand(t, "history", "show", "run-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history service not configured")
}

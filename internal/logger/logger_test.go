package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// capture redirects log output for the duration of a test.
func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)

	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("listing files for %s", "A")

	if got := buf.String(); got != "[DEBUG] listing files for A\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestVerboseOnly_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("debug")
	Info("info")
	Section("Dump")

	if buf.Len() != 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestInfo_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Info("run %s complete", "abc")

	if got := buf.String(); got != "[INFO] run abc complete\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestSection_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Section("Dump")

	if got := buf.String(); got != "\n=== Dump ===\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Warn("run history: %s: %v", "create run", "disk full")

	if got := buf.String(); got != "[WARN] run history: create run: disk full\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Error("open history: %v", "permission denied")

	if !strings.HasPrefix(buf.String(), "[ERROR] ") {
		t.Errorf("expected error prefix, got %q", buf.String())
	}
}

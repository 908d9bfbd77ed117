package verbose

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnableDisable tests toggling the verbose flag.
//
// It verifies:
//   - Enable turns verbose logging on
//   - Disable turns verbose logging off
//   - IsEnabled reflects the current state
func TestEnableDisable(t *testing.T) {
	defer Disable()

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestPrintfDisabled tests that nothing is written while disabled.
//
// It verifies:
//   - Printf produces no output when verbose logging is off
func TestPrintfDisabled(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	defer SetWriter(nil)

	Disable()
	Printf("hidden %s", "message")
	assert.Empty(t, buf.String())
}

// TestPrintfEnabled tests debug output formatting.
//
// It verifies:
//   - Messages carry the [DEBUG] prefix
//   - Format arguments are interpolated
func TestPrintfEnabled(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()
	defer Disable()

	Printf("checking %s", "requests")
	assert.Equal(t, "[DEBUG] checking requests\n", buf.String())

	buf.Reset()
	Info("plain message")
	assert.Equal(t, "[DEBUG] plain message\n", buf.String())

	buf.Reset()
	Infof("count=%d", 3)
	assert.Equal(t, "[DEBUG] count=3\n", buf.String())
}

// TestCommandResult tests command result logging.
//
// It verifies:
//   - Success and failure are reported with exit codes
//   - Long output is truncated to a preview with a remainder count
func TestCommandResult(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()
	defer Disable()

	CommandResult("pip freeze", 0, "requests==2.25.1")
	out := buf.String()
	assert.Contains(t, out, "Command succeeded: pip freeze")
	assert.Contains(t, out, "| requests==2.25.1")

	buf.Reset()
	CommandResult("pip install foo", 1, strings.Repeat("line\n", 10))
	out = buf.String()
	assert.Contains(t, out, "Command failed (exit 1)")
	assert.Contains(t, out, "... (7 more lines)")
}

// TestPackageEvaluated tests policy verdict logging.
//
// It verifies:
//   - The name, version, and status appear in the debug line
func TestPackageEvaluated(t *testing.T) {
	var buf bytes.Buffer
	SetWriter(&buf)
	Enable()
	defer Disable()

	PackageEvaluated("flask", "1.0.0", "DEPRECATED")
	assert.Equal(t, "[DEBUG] Evaluated 'flask==1.0.0': DEPRECATED\n", buf.String())
}

// TestTruncate tests string truncation for log readability.
//
// It verifies:
//   - Short strings are returned unchanged
//   - Long strings are cut with a "..." suffix
func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "lengthy...", truncate("lengthy string here", 10))
}

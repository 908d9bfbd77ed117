package cmd

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/pipguard/pipguard/pkg/cmdexec"
)

// captureStdout is a test helper that captures stdout during function execution.
//
// Parameters:
//   - t: The testing instance
//   - fn: The function to execute while capturing stdout
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	_ = r.Close()

	return buf.String()
}

// pipCall records one command issued through the mocked executor.
type pipCall struct {
	command      string
	replacements map[string]string
}

// pipMock replaces cmdexec.ExecuteWithContext with a scripted responder
// and records every call.
//
// Fields:
//   - freezeOutput: Bytes returned for freeze commands
//   - freezeErr: Error returned for freeze commands
//   - failPackages: Package names whose mutating commands fail
//   - failErr: Error returned for failing packages
type pipMock struct {
	mu           sync.Mutex
	calls        []pipCall
	freezeOutput string
	freezeErr    error
	failPackages map[string]bool
	failErr      error
}

// install installs the mock as the package executor and returns a restore
// function for defer.
func (m *pipMock) install(t *testing.T) func() {
	t.Helper()

	old := cmdexec.ExecuteWithContext
	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int, replacements map[string]string) ([]byte, error) {
		m.mu.Lock()
		m.calls = append(m.calls, pipCall{command: command, replacements: replacements})
		m.mu.Unlock()

		if strings.Contains(command, "freeze") {
			return []byte(m.freezeOutput), m.freezeErr
		}
		if m.failPackages != nil {
			if m.failPackages[replacements["package"]] || m.failPackages[replacements["spec"]] {
				return nil, m.failErr
			}
		}
		return []byte("ok"), nil
	}
	return func() { cmdexec.ExecuteWithContext = old }
}

// commands returns the raw command templates issued so far.
func (m *pipMock) commands() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, 0, len(m.calls))
	for _, call := range m.calls {
		out = append(out, call.command)
	}
	return out
}

// packagesSeen returns the {{package}} replacement of every mutating call,
// in call order.
func (m *pipMock) packagesSeen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, call := range m.calls {
		if name, ok := call.replacements["package"]; ok {
			out = append(out, name)
		}
	}
	return out
}

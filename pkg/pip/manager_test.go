package pip

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipguard/pipguard/pkg/cmdexec"
	"github.com/pipguard/pipguard/pkg/config"
	"github.com/pipguard/pipguard/pkg/errors"
)

// mockExec installs a fake command executor and returns a restore function.
// The recorder captures each fully templated command string.
func mockExec(t *testing.T, fn func(command string, replacements map[string]string) ([]byte, error)) *[]string {
	t.Helper()

	var commands []string
	old := cmdexec.ExecuteWithContext
	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int, replacements map[string]string) ([]byte, error) {
		rendered := command
		for key, value := range replacements {
			rendered = strings.ReplaceAll(rendered, "{{"+key+"}}", value)
		}
		commands = append(commands, rendered)
		return fn(command, replacements)
	}
	t.Cleanup(func() { cmdexec.ExecuteWithContext = old })

	return &commands
}

// TestFreeze tests listing retrieval via pip freeze.
//
// It verifies:
//   - The configured pip command is used
//   - Raw output is split into lines
func TestFreeze(t *testing.T) {
	commands := mockExec(t, func(command string, _ map[string]string) ([]byte, error) {
		return []byte("requests==2.25.1\nflask==1.1.2\n"), nil
	})

	cfg := config.DefaultConfig()
	cfg.Pip.Command = "pip3"
	m := NewManager(cfg)

	lines, err := m.Freeze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"requests==2.25.1", "flask==1.1.2"}, lines)
	assert.Equal(t, []string{"pip3 freeze"}, *commands)
}

// TestFreezeFailure tests fatal handling of a failed listing retrieval.
//
// It verifies:
//   - The failure surfaces as an ExecError for the freeze operation
func TestFreezeFailure(t *testing.T) {
	mockExec(t, func(string, map[string]string) ([]byte, error) {
		return nil, stderrors.New("exit status 1")
	})

	_, err := NewManager(nil).Freeze(context.Background())
	require.Error(t, err)

	ee, ok := errors.IsExecError(err)
	require.True(t, ok)
	assert.Equal(t, "freeze", ee.Operation)
}

// TestListInstalled tests parsing of the freeze listing.
//
// It verifies:
//   - Valid lines become records, malformed lines are dropped
//   - Listing order is preserved
func TestListInstalled(t *testing.T) {
	mockExec(t, func(string, map[string]string) ([]byte, error) {
		return []byte("requests==2.25.1\nnot a line\nflask==1.1.2"), nil
	})

	packages, err := NewManager(nil).ListInstalled(context.Background())
	require.NoError(t, err)
	require.Len(t, packages, 2)
	assert.Equal(t, "requests", packages[0].Name)
	assert.Equal(t, "flask", packages[1].Name)
}

// TestInstall tests the install operation.
//
// It verifies:
//   - The spec is validated before pip runs
//   - The templated install command is issued
//   - Failures surface as ExecError for that spec only
func TestInstall(t *testing.T) {
	commands := mockExec(t, func(string, map[string]string) ([]byte, error) {
		return nil, nil
	})

	m := NewManager(nil)
	require.NoError(t, m.Install(context.Background(), "requests==2.25.1"))
	assert.Equal(t, []string{"pip install requests==2.25.1"}, *commands)

	err := m.Install(context.Background(), "requests")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected name==version")
	// No pip invocation for an invalid spec
	assert.Len(t, *commands, 1)
}

// TestUninstall tests the uninstall operation.
//
// It verifies:
//   - The -y flag is passed so pip does not prompt
//   - Empty names are rejected without invoking pip
func TestUninstall(t *testing.T) {
	commands := mockExec(t, func(string, map[string]string) ([]byte, error) {
		return nil, nil
	})

	m := NewManager(nil)
	require.NoError(t, m.Uninstall(context.Background(), "requests"))
	assert.Equal(t, []string{"pip uninstall -y requests"}, *commands)

	assert.Error(t, m.Uninstall(context.Background(), "  "))
}

// TestUpgrade tests the single-package upgrade operation.
//
// It verifies:
//   - The --upgrade form of pip install is used
//   - Failures carry the package name
func TestUpgrade(t *testing.T) {
	commands := mockExec(t, func(string, map[string]string) ([]byte, error) {
		return nil, stderrors.New("exit status 1")
	})

	err := NewManager(nil).Upgrade(context.Background(), "flask")
	require.Error(t, err)
	assert.Equal(t, []string{"pip install --upgrade flask"}, *commands)

	ee, ok := errors.IsExecError(err)
	require.True(t, ok)
	assert.Equal(t, "flask", ee.Package)
}

// TestUpgradeAllContinuesPastFailures tests bulk upgrade semantics.
//
// It verifies:
//   - With packages [A (succeeds), B (fails), C (succeeds)], C is still
//     attempted after B fails
//   - The outcomes report exactly which package failed
//   - Order follows the listing
func TestUpgradeAllContinuesPastFailures(t *testing.T) {
	commands := mockExec(t, func(command string, replacements map[string]string) ([]byte, error) {
		if strings.Contains(command, "freeze") {
			return []byte("a==1.0\nb==2.0\nc==3.0"), nil
		}
		if replacements["package"] == "b" {
			return nil, stderrors.New("exit status 1")
		}
		return nil, nil
	})

	outcomes, err := NewManager(nil).UpgradeAll(context.Background())
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
	assert.NoError(t, outcomes[2].Err)
	assert.Equal(t, "c", outcomes[2].Package.Name)

	// freeze + three upgrade attempts
	assert.Len(t, *commands, 4)
}

// TestUpgradeAllListingFailure tests fail-fast on listing retrieval.
//
// It verifies:
//   - A freeze failure aborts the batch before any upgrade runs
func TestUpgradeAllListingFailure(t *testing.T) {
	commands := mockExec(t, func(string, map[string]string) ([]byte, error) {
		return nil, stderrors.New("exit status 1")
	})

	_, err := NewManager(nil).UpgradeAll(context.Background())
	require.Error(t, err)
	assert.Len(t, *commands, 1)
}

// TestUpgradeAllCancellation tests context cancellation mid-batch.
//
// It verifies:
//   - Cancellation between packages stops the batch with the context error
func TestUpgradeAllCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	mockExec(t, func(command string, _ map[string]string) ([]byte, error) {
		if strings.Contains(command, "freeze") {
			return []byte("a==1.0\nb==2.0"), nil
		}
		cancel() // cancel after the first upgrade
		return nil, nil
	})

	outcomes, err := NewManager(nil).UpgradeAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, outcomes, 1)
}

// TestValidateSpec tests install spec validation.
//
// It verifies:
//   - Valid "name==version" specs pass
//   - Missing separators or halves fail
func TestValidateSpec(t *testing.T) {
	assert.NoError(t, ValidateSpec("requests==2.25.1"))
	assert.NoError(t, ValidateSpec("a==1==2"))

	assert.Error(t, ValidateSpec("requests"))
	assert.Error(t, ValidateSpec("requests=="))
	assert.Error(t, ValidateSpec("==1.0"))
	assert.Error(t, ValidateSpec(""))
}

// TestDisableTimeout tests removal of the invocation timeout.
//
// It verifies:
//   - DisableTimeout zeroes the timeout passed to the executor
func TestDisableTimeout(t *testing.T) {
	var gotTimeout int
	old := cmdexec.ExecuteWithContext
	cmdexec.ExecuteWithContext = func(ctx context.Context, command string, timeoutSeconds int, replacements map[string]string) ([]byte, error) {
		gotTimeout = timeoutSeconds
		return nil, nil
	}
	t.Cleanup(func() { cmdexec.ExecuteWithContext = old })

	m := NewManager(nil)
	m.DisableTimeout()
	_, err := m.Freeze(context.Background())
	require.NoError(t, err)
	assert.Zero(t, gotTimeout)
}

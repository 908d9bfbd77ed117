package cmd

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipguard/pipguard/pkg/errors"
)

// saveInstallFlags saves the install flag globals and returns a restore function.
func saveInstallFlags() func() {
	oldDir := installDirFlag
	oldConfig := installConfigFlag
	oldNoTimeout := installNoTimeoutFlag
	return func() {
		installDirFlag = oldDir
		installConfigFlag = oldConfig
		installNoTimeoutFlag = oldNoTimeout
	}
}

// TestRunInstallSuccess tests a successful install.
//
// It verifies:
//   - The install command is issued with the validated spec
//   - A confirmation line is printed
func TestRunInstallSuccess(t *testing.T) {
	defer saveInstallFlags()()
	installDirFlag = t.TempDir()
	installConfigFlag = ""

	mock := &pipMock{}
	defer mock.install(t)()

	out := captureStdout(t, func() {
		assert.NoError(t, runInstall(nil, []string{"requests==2.31.0"}))
	})

	commands := mock.commands()
	require.Len(t, commands, 1)
	assert.Contains(t, commands[0], "install {{spec}}")
	assert.Equal(t, "requests==2.31.0", mock.calls[0].replacements["spec"])
	assert.Contains(t, out, "Installed requests==2.31.0")
}

// TestRunInstallInvalidSpec tests rejection of a malformed spec.
//
// It verifies:
//   - Validation fails before any pip command runs
//   - The error carries the config-error exit code
func TestRunInstallInvalidSpec(t *testing.T) {
	defer saveInstallFlags()()
	installDirFlag = t.TempDir()
	installConfigFlag = ""

	mock := &pipMock{}
	defer mock.install(t)()

	err := runInstall(nil, []string{"requests"})
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	assert.Empty(t, mock.commands())
}

// TestRunInstallExecFailure tests install behavior when pip fails.
//
// It verifies:
//   - The failure propagates with the failure exit code
//   - A hint is appended for recognizable pip errors
func TestRunInstallExecFailure(t *testing.T) {
	defer saveInstallFlags()()
	installDirFlag = t.TempDir()
	installConfigFlag = ""

	mock := &pipMock{
		failPackages: map[string]bool{"ghost==1.0.0": true},
		failErr:      stderrors.New("no matching distribution found for ghost==1.0.0"),
	}
	defer mock.install(t)()

	err := runInstall(nil, []string{"ghost==1.0.0"})
	require.Error(t, err)
	assert.Equal(t, errors.ExitFailure, errors.GetExitCode(err))
	assert.Contains(t, err.Error(), "no matching distribution")
	assert.Contains(t, err.Error(), "Package or version not found on the index")
}

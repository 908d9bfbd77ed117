// Package pip wraps pip invocations behind a small lifecycle façade.
// It retrieves the installed-package listing and performs install,
// uninstall, and upgrade operations through the external pip process.
package pip

import (
	"context"
	"fmt"
	"strings"

	"github.com/pipguard/pipguard/pkg/cmdexec"
	"github.com/pipguard/pipguard/pkg/config"
	"github.com/pipguard/pipguard/pkg/errors"
	"github.com/pipguard/pipguard/pkg/listing"
	"github.com/pipguard/pipguard/pkg/verbose"
)

// Manager executes pip operations for a single environment.
//
// All operations are blocking calls into the external pip process; the
// configured timeout is the only guard against a hung invocation.
//
// Fields: This type has no exported fields.
type Manager struct {
	pipCmd         string
	timeoutSeconds int
}

// NewManager creates a Manager from the given configuration.
//
// A nil config falls back to the built-in defaults.
//
// Parameters:
//   - cfg: Configuration carrying the pip command and timeout
//
// Returns:
//   - *Manager: A manager ready to invoke pip
func NewManager(cfg *config.Config) *Manager {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Manager{
		pipCmd:         cfg.Pip.Command,
		timeoutSeconds: cfg.Pip.TimeoutSeconds,
	}
}

// DisableTimeout removes the per-invocation timeout.
//
// Used by the --no-timeout flag for slow indexes or large environments.
func (m *Manager) DisableTimeout() {
	m.timeoutSeconds = 0
}

// Freeze runs "pip freeze" and returns the raw listing lines.
//
// A failure here is fatal for the caller: without the listing nothing
// downstream can proceed, so the error is an ExecError rather than a
// per-package condition.
//
// Parameters:
//   - ctx: Context for cancelling the blocking invocation
//
// Returns:
//   - []string: Raw freeze output lines, possibly empty
//   - error: ExecError when the pip invocation fails
func (m *Manager) Freeze(ctx context.Context) ([]string, error) {
	out, err := cmdexec.ExecuteWithContext(ctx, m.pipCmd+" freeze", m.timeoutSeconds, nil)
	if err != nil {
		return nil, errors.NewExecError("freeze", "", err)
	}
	return listing.SplitOutput(out), nil
}

// ListInstalled returns the parsed installed-package records.
//
// Malformed freeze lines are dropped by the parser; only the pip
// invocation itself can fail.
//
// Parameters:
//   - ctx: Context for cancelling the blocking invocation
//
// Returns:
//   - []listing.Package: Parsed records in listing order
//   - error: ExecError when the listing cannot be retrieved
func (m *Manager) ListInstalled(ctx context.Context) ([]listing.Package, error) {
	lines, err := m.Freeze(ctx)
	if err != nil {
		return nil, err
	}
	packages := listing.Parse(lines)
	verbose.Infof("Parsed %d packages from %d listing lines", len(packages), len(lines))
	return packages, nil
}

// Install installs a package at a pinned version.
//
// The spec must be in "name==version" form; anything else is rejected
// before pip is invoked.
//
// Parameters:
//   - ctx: Context for cancelling the blocking invocation
//   - spec: Install specification, e.g. "requests==2.25.1"
//
// Returns:
//   - error: Validation error for a malformed spec, ExecError when pip fails
func (m *Manager) Install(ctx context.Context, spec string) error {
	if err := ValidateSpec(spec); err != nil {
		return err
	}
	_, err := cmdexec.ExecuteWithContext(ctx, m.pipCmd+" install {{spec}}", m.timeoutSeconds,
		map[string]string{"spec": spec})
	if err != nil {
		return errors.NewExecError("install", spec, err)
	}
	return nil
}

// Uninstall removes a package from the environment.
//
// Parameters:
//   - ctx: Context for cancelling the blocking invocation
//   - name: Name of the package to uninstall
//
// Returns:
//   - error: ExecError when pip fails
func (m *Manager) Uninstall(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("package name is required")
	}
	_, err := cmdexec.ExecuteWithContext(ctx, m.pipCmd+" uninstall -y {{package}}", m.timeoutSeconds,
		map[string]string{"package": name})
	if err != nil {
		return errors.NewExecError("uninstall", name, err)
	}
	return nil
}

// Upgrade updates a package to the latest available version.
//
// Parameters:
//   - ctx: Context for cancelling the blocking invocation
//   - name: Name of the package to upgrade
//
// Returns:
//   - error: ExecError when pip fails
func (m *Manager) Upgrade(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("package name is required")
	}
	_, err := cmdexec.ExecuteWithContext(ctx, m.pipCmd+" install --upgrade {{package}}", m.timeoutSeconds,
		map[string]string{"package": name})
	if err != nil {
		return errors.NewExecError("upgrade", name, err)
	}
	return nil
}

// UpgradeOutcome records the result of upgrading one package during a
// bulk upgrade.
//
// Fields:
//   - Package: The package that was upgraded
//   - Err: The per-package failure, nil on success
type UpgradeOutcome struct {
	Package listing.Package
	Err     error
}

// UpgradeAll upgrades every installed package, strictly sequentially.
//
// The listing is retrieved once up front; a failure there aborts the whole
// call. Per-package upgrade failures do not stop the batch: every package
// is attempted in listing order and the outcomes report which failed.
// Overall success is the conjunction of all per-package results, which the
// caller derives from the outcomes.
//
// Parameters:
//   - ctx: Context for cancelling the batch between invocations
//
// Returns:
//   - []UpgradeOutcome: One outcome per installed package, in listing order
//   - error: ExecError when the listing itself cannot be retrieved, or the
//     context error when cancelled mid-batch
func (m *Manager) UpgradeAll(ctx context.Context) ([]UpgradeOutcome, error) {
	packages, err := m.ListInstalled(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]UpgradeOutcome, 0, len(packages))
	for _, pkg := range packages {
		if ctx.Err() != nil {
			return outcomes, ctx.Err()
		}
		upgradeErr := m.Upgrade(ctx, pkg.Name)
		if upgradeErr != nil {
			verbose.Infof("Upgrade failed for %s: %v", pkg.Name, upgradeErr)
		}
		outcomes = append(outcomes, UpgradeOutcome{Package: pkg, Err: upgradeErr})
	}

	return outcomes, nil
}

// ValidateSpec checks that an install specification is in "name==version" form.
//
// The same parser that handles freeze output decides validity, so a spec is
// valid exactly when the listing parser would accept it as a line.
//
// Parameters:
//   - spec: The install specification to check
//
// Returns:
//   - error: Descriptive error for a malformed spec, nil when valid
func ValidateSpec(spec string) error {
	if len(listing.Parse([]string{spec})) != 1 {
		return fmt.Errorf("invalid package spec %q: expected name==version", spec)
	}
	return nil
}

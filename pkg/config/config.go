// Package config handles configuration loading and validation for pipguard.
// It supports a YAML-based config file (.pipguard.yml) with pip invocation
// settings and additional policy table entries.
package config

import (
	"fmt"
	"strings"
)

// DefaultTimeoutSeconds is the timeout applied to pip invocations when the
// config does not override it.
const DefaultTimeoutSeconds = 300

// DefaultPipCommand is the pip executable used when the config does not
// override it.
const DefaultPipCommand = "pip"

// PipCfg configures how pip is invoked.
//
// Fields:
//   - Command: The pip executable or wrapper to run (e.g., "pip3", "python -m pip")
//   - TimeoutSeconds: Maximum seconds per pip invocation; 0 disables the timeout
type PipCfg struct {
	Command        string `yaml:"command"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// PolicyCfg configures additions to the built-in policy table.
//
// Fields:
//   - MinimumVersions: Extra package name -> minimum supported version entries,
//     merged into the policy table at evaluator construction
type PolicyCfg struct {
	MinimumVersions map[string]string `yaml:"minimum_versions"`
}

// Config is the root configuration for pipguard.
//
// Fields:
//   - Pip: pip invocation settings
//   - Policy: policy table additions
type Config struct {
	Pip    PipCfg    `yaml:"pip"`
	Policy PolicyCfg `yaml:"policy"`
}

// DefaultConfig returns the built-in configuration used when no config
// file is present.
//
// Returns:
//   - *Config: Configuration with default pip command and timeout
func DefaultConfig() *Config {
	return &Config{
		Pip: PipCfg{
			Command:        DefaultPipCommand,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// Validate checks the configuration for unusable values and normalizes
// policy entries.
//
// It performs the following operations:
//   - Rejects negative timeouts
//   - Fills in the default pip command when empty
//   - Lowercases policy package names (lookups are lowercase) and rejects
//     empty names or empty minimum versions
//
// Returns:
//   - error: The first problem found, or nil when the config is usable
func (c *Config) Validate() error {
	if c.Pip.TimeoutSeconds < 0 {
		return fmt.Errorf("pip.timeout_seconds must not be negative, got %d", c.Pip.TimeoutSeconds)
	}

	if strings.TrimSpace(c.Pip.Command) == "" {
		c.Pip.Command = DefaultPipCommand
	}

	if len(c.Policy.MinimumVersions) > 0 {
		normalized := make(map[string]string, len(c.Policy.MinimumVersions))
		for name, minimum := range c.Policy.MinimumVersions {
			trimmedName := strings.ToLower(strings.TrimSpace(name))
			trimmedMinimum := strings.TrimSpace(minimum)
			if trimmedName == "" {
				return fmt.Errorf("policy.minimum_versions contains an empty package name")
			}
			if trimmedMinimum == "" {
				return fmt.Errorf("policy.minimum_versions entry %q has an empty minimum version", name)
			}
			normalized[trimmedName] = trimmedMinimum
		}
		c.Policy.MinimumVersions = normalized
	}

	return nil
}

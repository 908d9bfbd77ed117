package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pipguard/pipguard/pkg/verbose"
)

// ConfigFileName is the config file looked up in the working directory
// when no explicit path is given.
const ConfigFileName = ".pipguard.yml"

// LoadConfig loads configuration from the specified path or defaults.
//
// If configPath is provided, that file must exist and parse. Otherwise
// LoadConfig looks for .pipguard.yml in the working directory and falls
// back to the built-in defaults when it is absent. The result is always
// validated before being returned.
//
// Parameters:
//   - configPath: Path to the config file, or empty to use discovery
//   - workDir: Working directory searched for .pipguard.yml
//
// Returns:
//   - *Config: The loaded and validated configuration
//   - error: Any error encountered during loading or validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	var cfg *Config

	if configPath != "" {
		verbose.Infof("Loading config from: %s", configPath)
		loaded, err := loadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	} else {
		localConfig := filepath.Join(workDir, ConfigFileName)
		if _, err := os.Stat(localConfig); err == nil {
			verbose.Infof("Found local config: %s", localConfig)
			loaded, err := loadConfigFile(localConfig)
			if err != nil {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
			cfg = loaded
		} else {
			verbose.Info("No config file found, using defaults")
			cfg = DefaultConfig()
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile reads and parses a single YAML config file.
//
// Fields not present in the file keep their zero values before defaults
// are applied by Validate.
//
// Parameters:
//   - path: Path to the YAML file
//
// Returns:
//   - *Config: The parsed configuration
//   - error: Read or parse error
func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Config loading for the bakebook CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ovenworks/bakebook/internal/sqlite"
	"github.com/ovenworks/bakebook/internal/storage"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyBackend = "backend"
	cfgKeyDataDir = "data_dir"
	cfgKeyLogMode = "log_mode"

	backendJSON   = "json"
	backendSQLite = "sqlite"

	dataFileJSON   = "bakebook.json"
	dataFileSQLite = "bakebook.db"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Bakebook CLI configuration

# Storage backend: json or sqlite
backend: json

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Logging mode: dev or prod
log_mode: prod
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper. The directory and a default config.yaml are created on first
// run; a missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, backendJSON)
	v.SetDefault(cfgKeyLogMode, "prod")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file
// does not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

// openStore builds the configured storage backend rooted at dataDir.
func openStore(backend, dataDir string) (storage.Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	switch backend {
	case backendJSON, "":
		return storage.NewJSONStore(filepath.Join(dataDir, dataFileJSON)), nil
	case backendSQLite:
		return sqlite.Open(filepath.Join(dataDir, dataFileSQLite))
	default:
		return nil, fmt.Errorf("unknown backend %q", backend)
	}
}

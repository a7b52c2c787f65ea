package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Global settings
	Format  string `mapstructure:"format"`
	Quiet   bool   `mapstructure:"quiet"`
	Verbose bool   `mapstructure:"verbose"`

	// Default values for commands
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// DefaultsConfig holds default values for various commands
type DefaultsConfig struct {
	// Snapshot file to read cluster metadata from
	Snapshot string `mapstructure:"snapshot"`

	// Index pattern used when none is given on the command line
	Pattern string `mapstructure:"pattern"`

	// How many indices to resolve concurrently
	Parallelism int `mapstructure:"parallelism"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		Format:  "ndjson",
		Quiet:   false,
		Verbose: false,
		Defaults: DefaultsConfig{
			Pattern:     "_all",
			Parallelism: 4,
		},
	}
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.rollcaps.yaml or ./.rollcaps.yml
// 2. ~/.rollcaps.yaml or ~/.rollcaps.yml
// 3. $XDG_CONFIG_HOME/rollcaps/config.yaml (or ~/.config/rollcaps/config.yaml)
// 4. /etc/rollcaps/config.yaml
func Load() (*Config, error) {
	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		v := viper.New()
		v.SetConfigFile(configFile)

		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}

		if err := v.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	applyEnvOverrides(cfg)

	return cfg, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".rollcaps.yaml", ".rollcaps.yml", "rollcaps.yaml", "rollcaps.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	// Search locations in order of precedence (highest first)
	var searchPaths []string

	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, cwd)
	}

	if homeErr == nil {
		searchPaths = append(searchPaths, home)
	}

	if configDirErr == nil {
		searchPaths = append(searchPaths, filepath.Join(configDir, "rollcaps"))
	}

	searchPaths = append(searchPaths, "/etc/rollcaps")

	for _, dir := range searchPaths {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		// Also check for config.yaml in subdirs
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ROLLCAPS_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("ROLLCAPS_QUIET"); v == "true" || v == "1" {
		cfg.Quiet = true
	}
	if v := os.Getenv("ROLLCAPS_VERBOSE"); v == "true" || v == "1" {
		cfg.Verbose = true
	}
	if v := os.Getenv("ROLLCAPS_SNAPSHOT"); v != "" {
		cfg.Defaults.Snapshot = v
	}
	if v := os.Getenv("ROLLCAPS_PATTERN"); v != "" {
		cfg.Defaults.Pattern = v
	}
	if v := os.Getenv("ROLLCAPS_PARALLELISM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Defaults.Parallelism = n
		}
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}

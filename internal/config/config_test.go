package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg)
	assert.Equal(t, "ndjson", cfg.Format)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "_all", cfg.Defaults.Pattern)
	assert.Equal(t, 4, cfg.Defaults.Parallelism)
	assert.Empty(t, cfg.Defaults.Snapshot)
}

func TestLoad(t *testing.T) {
	t.Run("returns defaults when no config file exists", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(tmpDir))
		t.Cleanup(func() {
			require.NoError(t, os.Chdir(origDir))
		})

		cfg, err := Load()
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "ndjson", cfg.Format)
	})

	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()

		configContent := `
format: text
quiet: true
defaults:
  snapshot: /var/dumps/cluster-state.json
  pattern: "logs-*"
  parallelism: 8
`
		configPath := filepath.Join(tmpDir, "rollcaps.yaml")
		err := os.WriteFile(configPath, []byte(configContent), 0644)
		require.NoError(t, err)

		cfg, err := LoadFromFile(configPath)
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.Equal(t, "text", cfg.Format)
		assert.True(t, cfg.Quiet)
		assert.Equal(t, "/var/dumps/cluster-state.json", cfg.Defaults.Snapshot)
		assert.Equal(t, "logs-*", cfg.Defaults.Pattern)
		assert.Equal(t, 8, cfg.Defaults.Parallelism)
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("returns error for non-existent file", func(t *testing.T) {
		cfg, err := LoadFromFile("/nonexistent/path/config.yaml")
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "bad.yaml")
		err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		cfg, err := LoadFromFile(configPath)
		assert.Error(t, err)
		assert.Nil(t, cfg)
	})
}

func TestConfigEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(origDir))
	})

	t.Run("format overrides from env", func(t *testing.T) {
		t.Setenv("ROLLCAPS_FORMAT", "text")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Format)
	})

	t.Run("quiet overrides from env", func(t *testing.T) {
		t.Setenv("ROLLCAPS_QUIET", "true")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.Quiet)
	})

	t.Run("snapshot and pattern override from env", func(t *testing.T) {
		t.Setenv("ROLLCAPS_SNAPSHOT", "/tmp/state.json")
		t.Setenv("ROLLCAPS_PATTERN", "metrics-*")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/state.json", cfg.Defaults.Snapshot)
		assert.Equal(t, "metrics-*", cfg.Defaults.Pattern)
	})

	t.Run("parallelism ignores invalid values", func(t *testing.T) {
		t.Setenv("ROLLCAPS_PARALLELISM", "not-a-number")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 4, cfg.Defaults.Parallelism)
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("finds .rollcaps.yaml in current directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(tmpDir))
		t.Cleanup(func() {
			require.NoError(t, os.Chdir(origDir))
		})

		configPath := filepath.Join(tmpDir, ".rollcaps.yaml")
		err = os.WriteFile(configPath, []byte("format: text"), 0644)
		require.NoError(t, err)

		found := findConfigFile()
		// Resolve symlinks for comparison (macOS /var -> /private/var)
		expectedPath, err := filepath.EvalSymlinks(configPath)
		require.NoError(t, err)
		foundPath, err := filepath.EvalSymlinks(found)
		require.NoError(t, err)
		assert.Equal(t, expectedPath, foundPath)
	})

	t.Run("prefers .rollcaps.yaml over .rollcaps.yml", func(t *testing.T) {
		tmpDir := t.TempDir()
		origDir, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(tmpDir))
		t.Cleanup(func() {
			require.NoError(t, os.Chdir(origDir))
		})

		yamlPath := filepath.Join(tmpDir, ".rollcaps.yaml")
		ymlPath := filepath.Join(tmpDir, ".rollcaps.yml")
		err = os.WriteFile(yamlPath, []byte("format: yaml"), 0644)
		require.NoError(t, err)
		err = os.WriteFile(ymlPath, []byte("format: yml"), 0644)
		require.NoError(t, err)

		found := findConfigFile()
		expectedPath, err := filepath.EvalSymlinks(yamlPath)
		require.NoError(t, err)
		foundPath, err := filepath.EvalSymlinks(found)
		require.NoError(t, err)
		assert.Equal(t, expectedPath, foundPath)
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
		assert.Equal(t, 0, cfg.API.Page)
		assert.Equal(t, DefaultPerPage, cfg.API.PerPage)
		assert.Equal(t, JSONBackend, cfg.Store.Backend)
		assert.Equal(t, "vacancies.json", cfg.Store.FileName)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
api:
  per_page: 50
  page: 2
store:
  data_dir: /tmp/vacancies
  file_name: go.json
output:
  results_file: res.json
log:
  level: debug
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.API.PerPage)
		assert.Equal(t, 2, cfg.API.Page)
		assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
		assert.Equal(t, "/tmp/vacancies", cfg.Store.DataDir)
		assert.Equal(t, "go.json", cfg.Store.FileName)
		assert.Equal(t, "res.json", cfg.Output.ResultsFile)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("non-integer page", func(t *testing.T) {
		path := writeConfig(t, "api:\n  page: abc\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("per_page out of range", func(t *testing.T) {
		path := writeConfig(t, "api:\n  per_page: 0\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		path := writeConfig(t, "store:\n  backend: mongo\n")
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("redis backend needs address", func(t *testing.T) {
		t.Setenv("REDIS_ADDRESS", "")
		path := writeConfig(t, "store:\n  backend: redis\n")
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "redis_address")
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("REDIS_ADDRESS", "localhost:6379")
		t.Setenv("HH_USER_AGENT", "my-app/1.0 (me@example.com)")
		path := writeConfig(t, "store:\n  backend: redis\n")
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", cfg.Store.RedisAddress)
		assert.Equal(t, "my-app/1.0 (me@example.com)", cfg.API.UserAgent)
	})
}

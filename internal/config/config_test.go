package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Pure-Company/fundamentals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	s, err := cfg.Settings()
	require.NoError(t, err)

	want := fundamentals.DefaultSettings()
	assert.Equal(t, want.MissingFile, s.MissingFile)
	assert.Equal(t, want.Concurrency.Iterations, s.Concurrency.Iterations)
	assert.Equal(t, want.Concurrency.SpawnedDelay, s.Concurrency.SpawnedDelay)
	assert.Equal(t, want.Concurrency.MainDelay, s.Concurrency.MainDelay)
	assert.NotNil(t, s.FS)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
concurrency:
  iterations: 3
  main_delay: 10ms
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, fundamentals.DefaultMissingFile, cfg.MissingFile)
	assert.Equal(t, 3, cfg.Concurrency.Iterations)
	assert.Equal(t, "1ms", cfg.Concurrency.SpawnedDelay)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Encoding)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, s.Concurrency.MainDelay)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "bad yaml", body: "concurrency: [", wantErr: "failed to parse config"},
		{name: "zero iterations", body: "concurrency:\n  iterations: 0\n", wantErr: "iterations must be positive"},
		{name: "bad delay", body: "concurrency:\n  spawned_delay: soon\n", wantErr: "concurrency.spawned_delay"},
		{name: "negative delay", body: "concurrency:\n  main_delay: -1ms\n", wantErr: "must not be negative"},
		{name: "bad level", body: "logging:\n  level: loud\n", wantErr: "logging.level"},
		{name: "bad encoding", body: "logging:\n  encoding: xml\n", wantErr: "logging.encoding"},
		{name: "empty path", body: "missing_file: \"\"\n", wantErr: "missing_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSettings_InvalidDelay(t *testing.T) {
	cfg := Default()
	cfg.Concurrency.MainDelay = "later"

	_, err := cfg.Settings()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "concurrency.main_delay")

	cfg = Default()
	cfg.MissingFile = ""
	_, err = cfg.Settings()
	assert.EqualError(t, err, "missing_file must not be empty")
}

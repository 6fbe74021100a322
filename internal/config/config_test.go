package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWithDir(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
	assert.Equal(t, 0, cfg.RequestTimeout)
	assert.Equal(t, 350, cfg.RevealIntervalMS)
	assert.NoError(t, cfg.Validate())
	assert.Contains(t, cfg.Sources(), "embedded")
}

func TestLoadInstallsDefaultFile(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadWithDir(dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "config.yaml"))
	assert.NoError(t, err, "default config should be installed on first load")
}

func TestLoadGlobalFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "base_url: https://notes.example\nreveal_interval_ms: 200\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadWithDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://notes.example", cfg.BaseURL)
	assert.Equal(t, 200, cfg.RevealIntervalMS)
	assert.Equal(t, 0, cfg.RequestTimeout, "unset fields keep defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "base_url: https://notes.example\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	t.Setenv("LNG_BASE_URL", "https://env.example")
	t.Setenv("LNG_REQUEST_TIMEOUT", "30")

	cfg, err := LoadWithDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.BaseURL)
	assert.Equal(t, 30, cfg.RequestTimeout)
	assert.Contains(t, cfg.Sources(), "env:LNG_BASE_URL")
}

func TestDurationHelpers(t *testing.T) {
	cfg := Config{RequestTimeout: 30, RevealIntervalMS: 350}

	assert.Equal(t, 30*time.Second, cfg.RequestTimeoutDuration())
	assert.Equal(t, 350*time.Millisecond, cfg.RevealInterval())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{BaseURL: "http://localhost:3000", RevealIntervalMS: 350}},
		{name: "empty base url", cfg: Config{RevealIntervalMS: 350}, wantErr: true},
		{name: "negative timeout", cfg: Config{BaseURL: "x", RequestTimeout: -1, RevealIntervalMS: 350}, wantErr: true},
		{name: "zero reveal interval", cfg: Config{BaseURL: "x"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

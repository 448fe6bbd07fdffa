package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pebbe/projection"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, projection.DefaultProjectedDefinition, cfg.Projected)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	path := writeEnv(t, `
PROJCONV_PROJECTED="+proj=utm +zone=34 +ellps=WGS84 +units=m +no_defs"
PROJCONV_LOG_LEVEL=debug
PROJCONV_PRECISION=1
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, projection.DefaultGeographicDefinition, cfg.Geographic)
	assert.Equal(t, "+proj=utm +zone=34 +ellps=WGS84 +units=m +no_defs", cfg.Projected)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)
	assert.Equal(t, 1, cfg.Precision)
}

func TestEnvironmentWins(t *testing.T) {
	path := writeEnv(t, "PROJCONV_PRECISION=1\n")
	t.Setenv(EnvPrecision, "5")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Precision)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"precision not a number", "PROJCONV_PRECISION=abc\n"},
		{"precision negative", "PROJCONV_PRECISION=-1\n"},
		{"precision too large", "PROJCONV_PRECISION=16\n"},
		{"bad log level", "PROJCONV_LOG_LEVEL=loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeEnv(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Lvl
	}{
		{"debug", log.DEBUG},
		{"INFO", log.INFO},
		{" warn ", log.WARN},
		{"warning", log.WARN},
		{"error", log.ERROR},
		{"off", log.OFF},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

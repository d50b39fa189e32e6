package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, defaultInputDir, cfg.InputDir)
	assert.Equal(t, 2020, cfg.SumTarget)
	assert.Equal(t, defaultMaxTerms, cfg.MaxTerms)
	assert.Equal(t, slope{DX: 3, DY: 1}, cfg.Slope)
	assert.Equal(t, defaultSlopes, cfg.Slopes)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.json", `{
  "input_dir": " puzzles ",
  "sum_target": 100,
  "max_terms": 2,
  "slope": {"dx": 1, "dy": 2},
  "slopes": [{"dx": 2, "dy": 1}, {"dx": 1, "dy": 3}],
  "log_level": "DEBUG"
}`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "puzzles", cfg.InputDir)
	assert.Equal(t, 100, cfg.SumTarget)
	assert.Equal(t, 2, cfg.MaxTerms)
	assert.Equal(t, slope{DX: 1, DY: 2}, cfg.Slope)
	assert.Equal(t, []slope{{2, 1}, {1, 3}}, cfg.Slopes)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"zero target":  `{"sum_target": 0}`,
		"zero terms":   `{"max_terms": 0}`,
		"flat slope":   `{"slope": {"dx": 3, "dy": 0}}`,
		"upward slope": `{"slopes": [{"dx": 1, "dy": 1}, {"dx": 1, "dy": -1}]}`,
		"bad json":     `{"sum_target": `,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(writeFile(t, t.TempDir(), "config.json", body))
			require.Error(t, err)
		})
	}

	_, err := loadConfig(writeFile(t, t.TempDir(), "config.json", `{"slope": {"dx": 3, "dy": 0}}`))
	assert.True(t, errors.Is(err, errInvalidSlope))
}

func TestConfigPath(t *testing.T) {
	t.Setenv(envHome, "")
	assert.Equal(t, "custom.json", configPath(" custom.json "))
	assert.Equal(t, configFileName, configPath(""))

	home := t.TempDir()
	t.Setenv(envHome, home)
	assert.Equal(t, filepath.Join(home, configFileName), configPath(""))
}

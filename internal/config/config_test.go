// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourorg/arc-ww/internal/config"
	"github.com/yourorg/arc-ww/internal/workweek"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ww.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `output: json
before_anchor: previous-year
logging:
  level: 3
  format: json
`)
	cfg, err := config.Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, 3, cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, workweek.PolicyPreviousYear, p)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "output: yaml\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, "zero", cfg.BeforeAnchor)
	assert.Equal(t, "text", cfg.Logging.Format)

	cfg, err = config.Load(writeConfig(t, ""), true)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := config.Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(missing, true)
	assert.Error(t, err)

	cfg, err = config.Load("", true)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadInvalid(t *testing.T) {
	for name, contents := range map[string]string{
		"unknown field":  "colour: red\n",
		"bad output":     "output: xml\n",
		"bad policy":     "before_anchor: wrap\n",
		"bad log format": "logging:\n  format: yaml\n",
		"not yaml":       "output: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, contents), true)
			assert.Error(t, err)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	t.Setenv("HOME", "/tmp/home")
	path, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "ww.yaml", filepath.Base(path))
	assert.Equal(t, "arc", filepath.Base(filepath.Dir(path)))
}

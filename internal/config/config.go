// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package config loads the optional arc-ww configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"cloudeng.io/cmdutil"
	"gopkg.in/yaml.v3"

	"github.com/yourorg/arc-ww/internal/output"
	"github.com/yourorg/arc-ww/internal/workweek"
)

// Config holds defaults that command line flags override.
//
//	output: json
//	before_anchor: previous-year
//	logging:
//	  level: 3
//	  format: text
type Config struct {
	Output       string                `yaml:"output"`
	BeforeAnchor string                `yaml:"before_anchor"`
	Logging      cmdutil.LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:       string(output.OutputText),
		BeforeAnchor: workweek.PolicyZero.String(),
		Logging:      cmdutil.LoggingConfig{Format: "text"},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/arc/ww.yaml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "arc", "ww.yaml"), nil
}

// Load reads the file at path over Default. A missing file is only an
// error when required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if _, err := output.ParseFormat(c.Output); err != nil {
		return err
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// Policy returns the configured pre-anchor policy.
func (c Config) Policy() (workweek.Policy, error) {
	if c.BeforeAnchor == "" {
		return workweek.PolicyZero, nil
	}
	return workweek.ParsePolicy(c.BeforeAnchor)
}

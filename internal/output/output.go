// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package output handles the --output flag and renders results.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// OutputFormat names a rendering of a command result.
type OutputFormat string

const (
	OutputText  OutputFormat = "text"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputQuiet OutputFormat = "quiet"
)

var formats = []OutputFormat{OutputText, OutputJSON, OutputYAML, OutputQuiet}

// OutputOptions holds the output flag value.
type OutputOptions struct {
	Format OutputFormat
	raw    string
	cmd    *cobra.Command
}

// AddOutputFlags registers --output/-o on cmd with the given default.
func (o *OutputOptions) AddOutputFlags(cmd *cobra.Command, def OutputFormat) {
	o.cmd = cmd
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	cmd.Flags().StringVarP(&o.raw, "output", "o", string(def),
		"Output format ("+strings.Join(names, "|")+")")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return names, cobra.ShellCompDirectiveNoFileComp
	})
}

// Changed reports whether --output was given on the command line.
func (o *OutputOptions) Changed() bool {
	return o.cmd != nil && o.cmd.Flags().Changed("output")
}

// SetDefault replaces the flag value unless it was set explicitly.
func (o *OutputOptions) SetDefault(f OutputFormat) {
	if f != "" && !o.Changed() {
		o.raw = string(f)
	}
}

// Resolve validates the flag value and sets Format.
func (o *OutputOptions) Resolve() error {
	f, err := ParseFormat(o.raw)
	if err != nil {
		return err
	}
	o.Format = f
	return nil
}

// Is reports whether the resolved format is f.
func (o *OutputOptions) Is(f OutputFormat) bool {
	return o.Format == f
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return OutputText, nil
	}
	for _, known := range formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// Result is the record rendered for a single work-week computation.
type Result struct {
	Date     string `json:"date" yaml:"date"`
	WorkWeek int    `json:"work_week" yaml:"work_week"`
	Label    string `json:"label" yaml:"label"`
}

// NewResult builds the Result for a date and work week.
func NewResult(date string, ww int) Result {
	return Result{Date: date, WorkWeek: ww, Label: fmt.Sprintf("WW%d", ww)}
}

// Write renders r to w in the resolved format.
func (o *OutputOptions) Write(w io.Writer, r Result) error {
	switch {
	case o.Is(OutputJSON):
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case o.Is(OutputYAML):
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	case o.Is(OutputQuiet):
		return nil
	default:
		_, err := fmt.Fprintln(w, r.Label)
		return err
	}
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yourorg/arc-ww/internal/output"
)

func render(t *testing.T, format string, r output.Result) string {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	var opts output.OutputOptions
	opts.AddOutputFlags(cmd, output.OutputText)
	require.NoError(t, cmd.Flags().Set("output", format))
	require.NoError(t, opts.Resolve())
	var buf bytes.Buffer
	require.NoError(t, opts.Write(&buf, r))
	return buf.String()
}

func TestWrite(t *testing.T) {
	r := output.NewResult("2024-01-14", 2)
	assert.Equal(t, "WW2", r.Label)

	assert.Equal(t, "WW2\n", render(t, "text", r))
	assert.Empty(t, render(t, "quiet", r))

	var fromJSON output.Result
	require.NoError(t, json.Unmarshal([]byte(render(t, "JSON", r)), &fromJSON))
	assert.Equal(t, r, fromJSON)

	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(render(t, "yaml", r)), &fromYAML))
	assert.Equal(t, map[string]any{"date": "2024-01-14", "work_week": 2, "label": "WW2"}, fromYAML)
}

func TestParseFormat(t *testing.T) {
	f, err := output.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, output.OutputText, f)

	f, err = output.ParseFormat(" Yaml ")
	require.NoError(t, err)
	assert.Equal(t, output.OutputYAML, f)

	_, err = output.ParseFormat("xml")
	assert.Error(t, err)
}

func TestSetDefault(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	var opts output.OutputOptions
	opts.AddOutputFlags(cmd, output.OutputText)

	opts.SetDefault(output.OutputJSON)
	require.NoError(t, opts.Resolve())
	assert.True(t, opts.Is(output.OutputJSON))

	require.NoError(t, cmd.Flags().Set("output", "yaml"))
	assert.True(t, opts.Changed())
	opts.SetDefault(output.OutputJSON)
	require.NoError(t, opts.Resolve())
	assert.True(t, opts.Is(output.OutputYAML))
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"time"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for arc-ww. now is consulted once
// per run when no date argument is given.
func NewRootCmd(now func() time.Time) *cobra.Command {
	root := newWorkWeekCmd(now)
	return root
}

// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/yourorg/arc-ww/internal/cmd"
	"github.com/yourorg/arc-ww/internal/errors"
)

// Set via -ldflags "-X main.version=..." in release builds.
var version = "dev"

func main() {
	root := cmd.NewRootCmd(time.Now)
	root.Version = version
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "arc-ww: %v\n", err)
		var ce *errors.CLIError
		if errors.As(err, &ce) {
			fmt.Fprint(os.Stderr, ce.Details())
		}
		os.Exit(1)
	}
}

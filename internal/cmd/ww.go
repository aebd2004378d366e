// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourorg/arc-ww/internal/config"
	"github.com/yourorg/arc-ww/internal/errors"
	"github.com/yourorg/arc-ww/internal/output"
	"github.com/yourorg/arc-ww/internal/workweek"
)

const dateHint = "Dates use the YYYY-MM-DD format (e.g., 2024-01-07)"

// newWorkWeekCmd creates the work week command.
func newWorkWeekCmd(now func() time.Time) *cobra.Command {
	var (
		configPath   string
		beforeAnchor string
		logLevel     int
		logFormat    string
		outputOpts   output.OutputOptions
	)

	cmd := &cobra.Command{
		Use:   "arc-ww [YYYY-MM-DD]",
		Short: "Print the work week for a date",
		Long: `Print the work week number for a date, or for today if no date is given.

Work week 1 starts on the first Sunday on or after January 1 and every
following Sunday starts a new work week. Dates before the first Sunday
are reported as WW0 unless --before-anchor=previous-year is used, in
which case they belong to the last work week of the previous year.

Defaults for the flags may be set in ~/.config/arc/ww.yaml.`,
		Example: `  # Work week for today
  arc-ww

  # Work week for a specific date
  arc-ww 2024-01-14

  # Roll early January dates into the previous year
  arc-ww 2024-01-01 --before-anchor previous-year

  # Emit JSON for scripting
  arc-ww 2024-03-01 --output json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeDate(now),
		RunE: func(cmd *cobra.Command, args []string) error {
			// 1. Resolve configuration with flag overrides
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("before-anchor") {
				cfg.BeforeAnchor = beforeAnchor
			}
			if flags.Changed("log-level") {
				cfg.Logging.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Logging.Format = logFormat
			}
			policy, err := cfg.Policy()
			if err != nil {
				return errors.NewCLIError("invalid --before-anchor value").
					WithKind(errors.KindUsage).
					WithCause(err).
					WithSuggestions(workweek.PolicyNames()...)
			}
			outputOpts.SetDefault(output.OutputFormat(cfg.Output))
			if err := outputOpts.Resolve(); err != nil {
				return errors.NewCLIError("invalid --output value").
					WithKind(errors.KindUsage).
					WithCause(err)
			}

			logger, err := cfg.Logging.NewLogger()
			if err != nil {
				return errors.NewCLIError("failed to configure logging").
					WithKind(errors.KindConfig).
					WithCause(err)
			}
			defer logger.Close()

			// 2. Resolve the date, defaulting to today
			text := workweek.FormatDate(workweek.DateOf(now()))
			if len(args) == 1 {
				text = args[0]
			}
			date, err := workweek.ParseDate(text)
			if err != nil {
				return errors.NewCLIError(fmt.Sprintf("Could not parse the date: %s", text)).
					WithKind(errors.KindDateParse).
					WithCause(err).
					WithHint(dateHint)
			}

			// 3. Calculate
			ww, err := workweek.CalculateWithPolicy(date, policy)
			if err != nil {
				return errors.NewCLIError("Failed to calculate the work week").
					WithKind(errors.KindInvalidDate).
					WithCause(err)
			}
			if anchor, err := workweek.FirstSunday(date.Year); err == nil {
				logger.Debug("work week",
					"date", workweek.FormatDate(date),
					"anchor", workweek.FormatDate(anchor),
					"policy", policy.String(),
					"work_week", ww)
			}

			// 4. Output result
			return outputOpts.Write(cmd.OutOrStdout(), output.NewResult(workweek.FormatDate(date), ww))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Config file (default: ~/.config/arc/ww.yaml)")
	cmd.Flags().StringVar(&beforeAnchor, "before-anchor", workweek.PolicyZero.String(),
		"Numbering for dates before the first Sunday (zero|previous-year)")
	cmd.Flags().IntVar(&logLevel, "log-level", 0, "Logging level: 0=error, 1=warn, 2=info, 3=debug")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
	outputOpts.AddOutputFlags(cmd, output.OutputText)

	// Shell completion
	_ = cmd.RegisterFlagCompletionFunc("before-anchor", completePolicies)
	_ = cmd.RegisterFlagCompletionFunc("log-format", cobra.FixedCompletions([]string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// loadConfig reads an explicit --config file or the default file if present.
func loadConfig(path string) (config.Config, error) {
	required := path != ""
	if !required {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = p
	}
	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, errors.NewCLIError("failed to load configuration").
			WithKind(errors.KindConfig).
			WithCause(err).
			WithHint("Fix or remove " + path)
	}
	return cfg, nil
}

// completeDate offers today's date for the positional argument.
func completeDate(now func() time.Time) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		today := workweek.FormatDate(workweek.DateOf(now()))
		return []string{today + "\ttoday"}, cobra.ShellCompDirectiveNoFileComp
	}
}

// completePolicies provides shell completion for --before-anchor.
func completePolicies(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"zero\tReport dates before the first Sunday as WW0",
		"previous-year\tReport them in the last work week of the previous year",
	}, cobra.ShellCompDirectiveNoFileComp
}

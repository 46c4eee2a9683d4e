// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/genmath/bench"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time Sum, Average, Range and Sigma for each case",
		Long: `Run builds the bucketed sequence for every selected case and times the
aggregates over it. Available cases: ` + strings.Join(bench.Names(), ", ") + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(v)
			if err != nil {
				return err
			}

			runner := bench.NewRunner(
				bench.WithSize(s.size),
				bench.WithRounds(s.rounds),
				bench.WithProgress(s.progress),
				bench.WithLogger(s.logger),
			)
			report, err := runner.Run(cmd.Context(), s.cases...)
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), s.format)
		},
	}

	cmd.Flags().Int(cfgKeyRounds, defaultRounds, "repetitions per case")
	cmd.Flags().StringSlice(cfgKeyCases, nil, "cases to run (default: every case that is not opt-in)")
	cmd.Flags().Bool(cfgKeyProgress, false, "draw a progress bar on stderr")

	return cmd
}

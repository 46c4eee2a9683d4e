// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/genmath/bench"
)

func newVerifyCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Cross-check the aggregates against gonum and native integer loops",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(v)
			if err != nil {
				return err
			}

			s.logger.Debug("verifying", "size", s.size)
			res, err := bench.Verify(s.size)
			if res != nil {
				if werr := res.Write(cmd.OutOrStdout(), s.format); werr != nil {
					return errors.Join(err, werr)
				}
			}
			if err != nil {
				s.logger.Error("verification failed", "err", err)
			}

			return err
		},
	}
}

// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/genmath"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
)

// newRootCmd builds the command tree. Each call returns a fresh tree with its
// own viper instance so tests can run commands independently.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:           "genbench",
		Short:         "Benchmark and verify generic arithmetic aggregates",
		Version:       genmath.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return loadConfig(v, configFile, cmd)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./genbench.yaml if present)")
	root.PersistentFlags().Int(cfgKeySize, defaultSize, "number of elements in the sequence")
	root.PersistentFlags().String(cfgKeyFormat, defaultFormat, "output format: text or yaml")
	root.PersistentFlags().String(cfgKeyLogFormat, defaultLogFormat, "log format: text, json or silent")

	root.AddCommand(newRunCmd(v))
	root.AddCommand(newVerifyCmd(v))
	root.AddCommand(newVersionCmd())

	return root
}

// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/genmath/bench"
)

const (
	configFileName = "genbench"
	configFileType = "yaml"
	envPrefix      = "GENBENCH"

	cfgKeySize      = "size"
	cfgKeyRounds    = "rounds"
	cfgKeyCases     = "cases"
	cfgKeyFormat    = "format"
	cfgKeyLogFormat = "log-format"
	cfgKeyProgress  = "progress"

	defaultSize      = bench.DefaultSize
	defaultRounds    = bench.DefaultRounds
	defaultFormat    = "text"
	defaultLogFormat = "silent"
)

// loadConfig layers defaults, the YAML config file, GENBENCH_* environment
// variables and the command's flags into v. A missing default config file is
// not an error; a missing explicit --config file is.
func loadConfig(v *viper.Viper, configFile string, cmd *cobra.Command) error {
	v.SetDefault(cfgKeySize, defaultSize)
	v.SetDefault(cfgKeyRounds, defaultRounds)
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	return nil
}

// settings is the resolved configuration for one command invocation.
type settings struct {
	size     int
	rounds   int
	cases    []string
	progress bool
	format   bench.Format
	logger   *slog.Logger
}

func resolveSettings(v *viper.Viper) (settings, error) {
	s := settings{
		size:     v.GetInt(cfgKeySize),
		rounds:   v.GetInt(cfgKeyRounds),
		cases:    splitCases(v.GetStringSlice(cfgKeyCases)),
		progress: v.GetBool(cfgKeyProgress),
	}
	if s.size <= 0 {
		return s, fmt.Errorf("%s must be positive, got %d", cfgKeySize, s.size)
	}
	if s.rounds <= 0 {
		return s, fmt.Errorf("%s must be positive, got %d", cfgKeyRounds, s.rounds)
	}

	format, err := bench.ParseFormat(v.GetString(cfgKeyFormat))
	if err != nil {
		return s, err
	}
	s.format = format

	mode, err := bench.ParseLogMode(v.GetString(cfgKeyLogFormat))
	if err != nil {
		return s, err
	}
	s.logger = bench.NewLogger(mode)

	return s, nil
}

// splitCases accepts both repeated values and comma-separated lists, the
// latter being what GENBENCH_CASES and YAML strings produce.
func splitCases(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, name := range strings.Split(r, ",") {
			if name = strings.TrimSpace(name); name != "" {
				out = append(out, name)
			}
		}
	}

	return out
}

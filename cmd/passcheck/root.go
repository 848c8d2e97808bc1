// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the passcheck program: instruction and control-flow statistics of the
// functions of a directory of LLVM IR modules.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"passcheck/analysis"
	"passcheck/config"
	"passcheck/logger"
	"passcheck/module"
	"passcheck/stats"
	"passcheck/tools"
)

var rootCmd = cobra.Command{
	Use:           "passcheck",
	Short:         "Statistics of the functions of LLVM IR modules",
	Long:          "",
	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "run 'passcheck -h' for help")
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetOutput(os.Stderr)
		logger.SetLevel(logger.ParseLevel(rootFlags.log))
		if rootFlags.debug {
			logger.SetLevel(logger.DEBUG)
		}
		if rootFlags.quiet {
			logger.SetOutput(nil)
		}

		cfg, err := config.Load(rootFlags.config)
		if err != nil {
			return verror(usageError, err)
		}
		appConfig = cfg
		return nil
	},
}

var rootFlags struct {
	log      string
	debug    bool
	quiet    bool
	target   string
	json     bool
	format   formatValue
	outputFn string
	config   string
}

var appConfig *config.Config

func init() {
	helpMessage :=
		`passcheck -- instruction and control-flow statistics of LLVM IR functions`

	helpMessage += "\n\nEnvironment Variables:"
	for _, ev := range tools.GetEnvvars() {
		helpMessage += "\n  " + ev.Name + " " +
			"(default: \"" + ev.Defv + "\")\n\t" + ev.Desc
	}
	rootCmd.Long = helpMessage

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootFlags.log, "log", "ERROR", "log level (ERROR|WARN|INFO|DEBUG)")
	flags.BoolVarP(&rootFlags.debug, "debug", "d", false, "set debug mode")
	flags.BoolVarP(&rootFlags.quiet, "quiet", "q", false, "do not log, not even loaded modules")
	flags.StringVarP(&rootFlags.target, "target", "t", "", "directory containing the LLVM IR modules")
	addOutputFlags(flags)
	flags.StringVar(&rootFlags.config, "config", "", "configuration file (.toml, .yaml)")

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

// newQuery loads the modules of the target directory.
func newQuery() (*analysis.Query, error) {
	if rootFlags.target == "" {
		return nil, verror(usageError, fmt.Errorf("no target directory specified (--target)"))
	}
	cfg := module.DefaultConfig()
	if appConfig != nil {
		cfg = appConfig.Loader
	}
	mods, err := module.Load(rootFlags.target, cfg)
	if err != nil {
		return nil, verror(loadError, err)
	}
	return analysis.NewQuery(analysis.NewContext(mods, stats.Engine{})), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if msg := getErrorMessage(err); msg != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", name, msg)
		}
		os.Exit(getErrorCode(err))
	}
}

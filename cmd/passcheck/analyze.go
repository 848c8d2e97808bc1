// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"passcheck/analysis"
	"passcheck/logger"
)

var foundColor = color.New(color.FgHiGreen, color.Bold).SprintFunc()

func init() {
	var analyzeCmd = cobra.Command{
		Use:   "analyze",
		Short: "Computes statistics of functions and modules",
	}

	var functionCmd = cobra.Command{
		Use:   "function <name>",
		Short: "Statistics of one function, given its demangled name or its symbol",
		Args:  isArgs1,

		DisableFlagsInUseLine: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQuery()
			if err != nil {
				return err
			}
			return AnalyzeFunction(q, args[0])
		},
	}

	var moduleCmd = cobra.Command{
		Use:   "module <name>",
		Short: "Statistics of every function of one module",
		Args:  isArgs1,

		DisableFlagsInUseLine: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQuery()
			if err != nil {
				return err
			}
			return AnalyzeModule(q, args[0])
		},
	}

	var everythingCmd = cobra.Command{
		Use:   "everything",
		Short: "Statistics of every function of every module",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQuery()
			if err != nil {
				return err
			}
			return AnalyzeEverything(q)
		},
	}

	analyzeCmd.AddCommand(&functionCmd, &moduleCmd, &everythingCmd)
	rootCmd.AddCommand(&analyzeCmd)
}

// AnalyzeFunction prints the statistics of the function called name.
func AnalyzeFunction(q *analysis.Query, name string) error {
	s, err := q.AnalyzeFunction(name)
	if err != nil {
		logger.Warnf("Could not map given function '%s'", name)
		return qerror(err)
	}
	logger.Printf("%s %s\n", foundColor("Demangled and found Function:"), s.Name)

	mod := ""
	ctx := q.Context()
	symbol, ok := ctx.LookupByDisplayName(name)
	if !ok {
		symbol = name
	}
	if _, m, ok := ctx.LookupBySymbol(symbol); ok {
		mod = m.DisplayName
	}

	rows, err := functionRows(mod, s)
	if err != nil {
		return verror(internalError, err)
	}
	return emit(report{title: "Function " + s.Name, value: s, rows: rows})
}

// AnalyzeModule prints the statistics of every function of the module called name.
func AnalyzeModule(q *analysis.Query, name string) error {
	s, err := q.AnalyzeModule(name)
	if err != nil {
		return qerror(err)
	}
	logger.Infof("Module %s has %d functions", s.Name, len(s.Functions))

	rows, err := functionRows(s.Name, s.Functions...)
	if err != nil {
		return verror(internalError, err)
	}
	return emit(report{title: "Module " + s.Name, value: s, rows: rows})
}

// AnalyzeEverything prints the statistics of every function of every loaded module.
func AnalyzeEverything(q *analysis.Query) error {
	s := q.AnalyzeEverything()
	logger.Debugf("Computed %d functions", q.Context().Computed())

	rows, err := everythingRows(s)
	if err != nil {
		return verror(internalError, err)
	}
	return emit(report{title: "Everything", value: s, rows: rows})
}

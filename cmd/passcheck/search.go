// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"passcheck/analysis"
)

// demangled is the result of "search demangle".
type demangled struct {
	Symbol    string `json:"symbol" yaml:"symbol"`
	Demangled string `json:"demangled" yaml:"demangled"`
}

func init() {
	var searchCmd = cobra.Command{
		Use:   "search",
		Short: "Looks up symbols, functions and modules",
	}

	var demangleCmd = cobra.Command{
		Use:   "demangle <symbol>",
		Short: "Prints the demangled form of a symbol",
		Args:  isArgs1,

		DisableFlagsInUseLine: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return SearchDemangle(args[0])
		},
	}

	var functionCmd = cobra.Command{
		Use:   "function <regex>",
		Short: "Lists the demangled function names matching a regular expression",
		Args:  isArgs1,

		DisableFlagsInUseLine: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQuery()
			if err != nil {
				return err
			}
			return SearchFunctions(q, args[0])
		},
	}

	var moduleCmd = cobra.Command{
		Use:   "module <regex>",
		Short: "Lists the module names matching a regular expression",
		Args:  isArgs1,

		DisableFlagsInUseLine: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := newQuery()
			if err != nil {
				return err
			}
			return SearchModules(q, args[0])
		},
	}

	searchCmd.AddCommand(&demangleCmd, &functionCmd, &moduleCmd)
	rootCmd.AddCommand(&searchCmd)
}

// SearchDemangle prints the demangled form of symbol.
func SearchDemangle(symbol string) error {
	d := demangled{Symbol: symbol, Demangled: analysis.Demangle(symbol)}
	return emit(report{
		value: d,
		rows:  [][]string{{"symbol", "demangled"}, {d.Symbol, d.Demangled}},
	})
}

// SearchFunctions prints the display names of the functions matching pattern.
func SearchFunctions(q *analysis.Query, pattern string) error {
	names, err := q.SearchFunctions(pattern)
	if err != nil {
		return qerror(err)
	}
	return emit(report{title: "Functions", value: names, rows: listRows("name", names)})
}

// SearchModules prints the display names of the modules matching pattern.
func SearchModules(q *analysis.Query, pattern string) error {
	names, err := q.SearchModules(pattern)
	if err != nil {
		return qerror(err)
	}
	return emit(report{title: "Modules", value: names, rows: listRows("name", names)})
}

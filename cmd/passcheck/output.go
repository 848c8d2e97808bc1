// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/jinzhu/copier"
	"github.com/kr/pretty"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"passcheck/logger"
	"passcheck/stats"
	"passcheck/tools"
)

const (
	formatDebug = "debug"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatCSV   = "csv"
)

// formatValue is a --format flag value restricted to the known formats.
type formatValue string

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(s string) error {
	switch s {
	case formatDebug, formatJSON, formatYAML, formatCSV:
		*f = formatValue(s)
		return nil
	default:
		return fmt.Errorf("unknown output format '%s'", s)
	}
}

func (f *formatValue) Type() string {
	return "format"
}

func addOutputFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&rootFlags.json, "json", false, "render results as JSON (same as --format json)")
	flags.VarP(&rootFlags.format, "format", "f", "render results as debug|json|yaml|csv (default from config)")
	flags.StringVarP(&rootFlags.outputFn, "output", "o", "", "write results to a file instead of the standard output")
}

// report is a rendered command result. value is used by the debug, json and yaml formats,
// rows (header first) by the csv format.
type report struct {
	title string
	value any
	rows  [][]string
}

var csvStatsHeader = []string{
	"module", "name",
	"loads", "stores", "allocas", "calls", "atomic_ops", "instrs",
	"blocks", "depth", "branches",
}

// csvRow is a flattened FunctionStats.
type csvRow struct {
	Module    string
	Name      string
	Loads     int
	Stores    int
	Allocas   int
	Calls     int
	AtomicOps int
	Instrs    int
	Blocks    int
	Depth     int
	Branches  int
}

func (r csvRow) strings() []string {
	ints := []int{r.Loads, r.Stores, r.Allocas, r.Calls, r.AtomicOps, r.Instrs, r.Blocks, r.Depth, r.Branches}
	row := []string{r.Module, r.Name}
	for _, i := range ints {
		row = append(row, strconv.Itoa(i))
	}
	return row
}

func newCSVRow(mod string, fs stats.FunctionStats) (csvRow, error) {
	row := csvRow{Module: mod, Name: fs.Name}
	if err := copier.Copy(&row, &fs.Instrs); err != nil {
		return row, err
	}
	if err := copier.Copy(&row, &fs.CFG); err != nil {
		return row, err
	}
	return row, nil
}

func functionRows(mod string, fss ...stats.FunctionStats) ([][]string, error) {
	rows := [][]string{csvStatsHeader}
	for _, fs := range fss {
		row, err := newCSVRow(mod, fs)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row.strings())
	}
	return rows, nil
}

func everythingRows(es stats.EverythingStats) ([][]string, error) {
	rows := [][]string{csvStatsHeader}
	for _, ms := range es.Modules {
		mrows, err := functionRows(ms.Name, ms.Functions...)
		if err != nil {
			return nil, err
		}
		rows = append(rows, mrows[1:]...)
	}
	return rows, nil
}

func listRows(header string, items []string) [][]string {
	rows := [][]string{{header}}
	for _, it := range items {
		rows = append(rows, []string{it})
	}
	return rows
}

// outputFormat resolves the format from the command line and the configuration.
func outputFormat() string {
	switch {
	case rootFlags.json:
		return formatJSON
	case rootFlags.format != "":
		return string(rootFlags.format)
	case appConfig != nil && appConfig.Output.Format != "":
		return appConfig.Output.Format
	default:
		return formatDebug
	}
}

// emit renders r to the output selected on the command line.
func emit(r report) error {
	out, err := tools.CreateOutput(rootFlags.outputFn)
	if err != nil {
		return verror(internalError, err)
	}
	defer func() {
		if err := out.Close(); err != nil {
			logger.Warnf("error closing file: %v", err)
		}
	}()

	title := color.New(color.FgHiGreen, color.Bold)
	if !term.IsTerminal(int(out.Fd())) {
		title.DisableColor()
	}
	if err := render(out, outputFormat(), r, title.SprintFunc()); err != nil {
		return verror(internalError, err)
	}
	return nil
}

func render(w io.Writer, format string, r report, title func(a ...any) string) error {
	switch format {
	case formatDebug:
		if r.title != "" {
			if _, err := fmt.Fprintln(w, title(r.title)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%# v\n", pretty.Formatter(r.value))
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.value)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r.value); err != nil {
			return err
		}
		return enc.Close()
	case formatCSV:
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(r.rows); err != nil {
			return err
		}
		return cw.Error()
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}

// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package analysis

import (
	"regexp"
	"sort"

	"github.com/pkg/errors"

	"passcheck/module"
	"passcheck/stats"
)

// Query answers the search and analysis requests of the command line.
type Query struct {
	ctx *Context
}

// NewQuery returns a query over ctx.
func NewQuery(ctx *Context) *Query {
	return &Query{ctx: ctx}
}

// Context returns the context the query reads from.
func (q *Query) Context() *Context {
	return q.ctx
}

// SearchFunctions returns the sorted display names matching the regular expression pattern.
func (q *Query) SearchFunctions(pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern '%s'", pattern)
	}
	q.ctx.EnsureNameMap()
	matches := []string{}
	for _, name := range q.ctx.names.Names() {
		if re.MatchString(name) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// SearchModules returns the sorted module display names matching the regular expression pattern.
func (q *Query) SearchModules(pattern string) ([]string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid pattern '%s'", pattern)
	}
	seen := make(map[string]bool)
	matches := []string{}
	for _, m := range q.ctx.modules {
		if seen[m.DisplayName] || !re.MatchString(m.DisplayName) {
			continue
		}
		seen[m.DisplayName] = true
		matches = append(matches, m.DisplayName)
	}
	sort.Strings(matches)
	return matches, nil
}

// AnalyzeFunction returns the statistics of a function given its display name or symbol.
func (q *Query) AnalyzeFunction(name string) (stats.FunctionStats, error) {
	s, ok := q.ctx.AnalyzeByName(name)
	if !ok {
		return s, &NotFoundError{Kind: KindFunction, Name: name}
	}
	return s, nil
}

// AnalyzeModule returns the statistics of every function of a module given its display name
// (or, failing that, its full name). Functions sharing a display name are reported once.
func (q *Query) AnalyzeModule(name string) (stats.ModuleStats, error) {
	m := q.findModule(name)
	if m == nil {
		return stats.ModuleStats{}, &NotFoundError{Kind: KindModule, Name: name}
	}

	byName := make(map[string]stats.FunctionStats)
	for _, f := range m.Functions() {
		s := q.ctx.AnalyzeFunction(f)
		byName[s.Name] = s
	}
	funcs := make([]stats.FunctionStats, 0, len(byName))
	for _, s := range byName {
		funcs = append(funcs, s)
	}
	stats.SortFunctions(funcs)
	return stats.ModuleStats{Name: m.DisplayName, Functions: funcs}, nil
}

// AnalyzeEverything returns the statistics of every function of every module. Identical
// statistics are reported once per module; the same function in two modules is reported
// under both.
func (q *Query) AnalyzeEverything() stats.EverythingStats {
	mods := make([]stats.ModuleStats, 0, len(q.ctx.modules))
	for _, m := range q.ctx.modules {
		set := make(map[stats.FunctionStats]bool)
		for _, f := range m.Functions() {
			set[q.ctx.AnalyzeFunction(f)] = true
		}
		funcs := make([]stats.FunctionStats, 0, len(set))
		for s := range set {
			funcs = append(funcs, s)
		}
		stats.SortFunctions(funcs)
		mods = append(mods, stats.ModuleStats{Name: m.DisplayName, Functions: funcs})
	}
	stats.SortModules(mods)
	return stats.EverythingStats{Modules: mods}
}

func (q *Query) findModule(name string) *module.Module {
	for _, m := range q.ctx.modules {
		if m.DisplayName == name {
			return m
		}
	}
	for _, m := range q.ctx.modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package analysis

import (
	"github.com/llir/llvm/ir"

	"passcheck/logger"
	"passcheck/module"
	"passcheck/stats"
)

// Engine computes the statistics of a function.
type Engine interface {
	Compute(f *ir.Func) stats.FunctionStats
}

type location struct {
	f   *ir.Func
	mod *module.Module
}

// Context owns the name map and the statistics cache of a set of modules.
type Context struct {
	modules []*module.Module
	engine  Engine
	names   *NameResolver
	symbols map[string]location
	cache   map[string]stats.FunctionStats
}

// NewContext returns a context over mods computing statistics with engine.
// If a symbol is defined by several modules, the first module defining it is used.
func NewContext(mods []*module.Module, engine Engine) *Context {
	symbols := make(map[string]location)
	for _, m := range mods {
		for _, f := range m.Functions() {
			if _, has := symbols[f.Name()]; !has {
				symbols[f.Name()] = location{f: f, mod: m}
			}
		}
	}
	return &Context{
		modules: mods,
		engine:  engine,
		names:   NewNameResolver(mods),
		symbols: symbols,
		cache:   make(map[string]stats.FunctionStats),
	}
}

// Modules returns the modules of the context in load order.
func (c *Context) Modules() []*module.Module {
	return c.modules
}

// EnsureNameMap builds the name map on first use.
func (c *Context) EnsureNameMap() {
	c.names.Build()
}

// LookupBySymbol returns the function defined under symbol and its module.
func (c *Context) LookupBySymbol(symbol string) (*ir.Func, *module.Module, bool) {
	loc, has := c.symbols[symbol]
	return loc.f, loc.mod, has
}

// LookupByDisplayName returns the symbol of the function displayed as name.
func (c *Context) LookupByDisplayName(name string) (string, bool) {
	c.EnsureNameMap()
	return c.names.Resolve(name)
}

// AnalyzeByName returns the statistics of the function displayed as name. If no function is
// displayed as name, name is tried as a symbol.
func (c *Context) AnalyzeByName(name string) (stats.FunctionStats, bool) {
	symbol, has := c.LookupByDisplayName(name)
	if !has {
		logger.Debugf("'%s' is not a display name, trying it as a symbol", name)
		symbol = name
	}
	f, _, has := c.LookupBySymbol(symbol)
	if !has {
		return stats.FunctionStats{}, false
	}
	return c.AnalyzeFunction(f), true
}

// AnalyzeFunction returns the statistics of f, computing them on the first request for its
// symbol. The statistics are named by the display name of f.
func (c *Context) AnalyzeFunction(f *ir.Func) stats.FunctionStats {
	symbol := f.Name()
	if s, has := c.cache[symbol]; has {
		return s
	}
	s := c.engine.Compute(f)
	s.Name = Demangle(symbol)
	c.cache[symbol] = s
	return s
}

// Computed returns the number of cached statistics.
func (c *Context) Computed() int {
	return len(c.cache)
}

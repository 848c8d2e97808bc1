// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package analysis

import (
	"sort"

	"passcheck/logger"
	"passcheck/module"
)

// NameResolver maps display names to the symbols of the functions defined in a set of modules.
//
// Several symbols can share a display name. The function visited last (module order, then
// function order) wins; earlier ones are only reachable by symbol.
type NameResolver struct {
	modules []*module.Module
	names   map[string]string
}

// NewNameResolver returns an empty resolver over mods. Call Build before resolving.
func NewNameResolver(mods []*module.Module) *NameResolver {
	return &NameResolver{modules: mods}
}

// Build fills the name map. It does nothing if the map is already filled.
func (r *NameResolver) Build() {
	if len(r.names) > 0 {
		return
	}
	var (
		names      = make(map[string]string)
		collisions int
	)
	for _, m := range r.modules {
		for _, f := range m.Functions() {
			symbol := f.Name()
			display := Demangle(symbol)
			if prev, has := names[display]; has && prev != symbol {
				logger.Debugf("name '%s': '%s' replaces '%s'", display, symbol, prev)
				collisions++
			}
			names[display] = symbol
		}
	}
	r.names = names
	logger.Debugf("Name map: %d names, %d collisions", len(names), collisions)
}

// Resolve returns the symbol of a display name.
func (r *NameResolver) Resolve(display string) (string, bool) {
	symbol, has := r.names[display]
	return symbol, has
}

// Names returns the sorted display names.
func (r *NameResolver) Names() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of display names.
func (r *NameResolver) Len() int {
	return len(r.names)
}

// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"path/filepath"
	"strings"

	"github.com/llir/llvm/ir"
)

// Module is a loaded LLVM IR module. It must not be modified after loading.
type Module struct {
	*ir.Module
	Name        string // file name without extension
	DisplayName string // Name up to the first '-', eg the crate name of rustc outputs
	Path        string
}

// New wraps an LLVM IR module loaded from path.
func New(path string, mod *ir.Module) *Module {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Module{
		Module:      mod,
		Name:        name,
		DisplayName: DisplayName(name),
		Path:        path,
	}
}

// DisplayName strips the disambiguating suffix of a module name.
func DisplayName(name string) string {
	if i := strings.IndexByte(name, '-'); i > 0 {
		return name[:i]
	}
	return name
}

// Functions returns the functions defined in the module in declaration order.
// Function declarations (without a body) are skipped.
func (m *Module) Functions() []*ir.Func {
	var funcs []*ir.Func
	for _, f := range m.Funcs {
		if len(f.Blocks) > 0 {
			funcs = append(funcs, f)
		}
	}
	return funcs
}

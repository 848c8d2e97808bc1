// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/fatih/color"
	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"passcheck/logger"
	"passcheck/tools"
)

const bitcodeExt = ".bc"

var (
	addColor  = color.New(color.FgHiGreen, color.Bold).SprintFunc()
	pathColor = color.New(color.Faint).SprintFunc()
)

func init() {
	tools.RegEnv("PASSCHECK_LLVM_DIS", "llvm-dis", "Command used to disassemble .bc files into LLVM IR")
}

type loadResult struct {
	mod *ir.Module
	err error
}

// Load parses every LLVM IR file of directory dir whose extension is accepted by cfg.
// An unreadable directory is an error. A file that cannot be parsed is reported and
// skipped. Modules are returned in file name order.
func Load(dir string, cfg Config) ([]*Module, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read directory '%s'", dir)
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !cfg.accepts(filepath.Ext(e.Name())) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]loadResult, len(files))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, fn := range files {
		i, fn := i, fn
		g.Go(func() error {
			mod, err := parseFile(fn)
			results[i] = loadResult{mod: mod, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var mods []*Module
	for i, fn := range files {
		r := results[i]
		if r.err != nil {
			logger.Errorf("could not load '%s': %v", fn, r.err)
			continue
		}
		m := New(fn, r.mod)
		logger.Printf("    %s %s %s\n", addColor("Adding Module"), m.DisplayName, pathColor(fn))
		mods = append(mods, m)
	}
	logger.Infof("Loaded %d of %d modules from '%s'", len(mods), len(files), dir)
	return mods, nil
}

func parseFile(fn string) (*ir.Module, error) {
	if filepath.Ext(fn) != bitcodeExt {
		logger.Debugf("Parse '%s'", fn)
		return asm.ParseFile(fn)
	}

	ll, err := tools.Touch("passcheck-*.ll")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := tools.Remove(ll); err != nil {
			logger.Debug(err)
		}
	}()

	cmd := tools.FindCmd("PASSCHECK_LLVM_DIS", "llvm-dis")
	args := append(append([]string{}, cmd[1:]...), fn, "-o", ll)
	if _, err := tools.RunCmd(cmd[0], args, nil); err != nil {
		return nil, errors.Wrap(err, "could not disassemble bitcode")
	}
	logger.Debugf("Parse '%s' (from '%s')", ll, fn)
	return asm.ParseFile(ll)
}

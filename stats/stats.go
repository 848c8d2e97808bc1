// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package stats computes instruction and control-flow statistics of LLVM IR functions.
//
// All statistics types are totally ordered (see the Compare methods) and comparable, so they
// can be sorted and used as map keys.
package stats

import (
	"sort"
)

// InstructionStats counts the instructions of a function by category.
// Instrs counts every instruction plus one terminator per basic block.
type InstructionStats struct {
	Loads     int `json:"loads" yaml:"loads"`
	Stores    int `json:"stores" yaml:"stores"`
	Allocas   int `json:"allocas" yaml:"allocas"`
	Calls     int `json:"calls" yaml:"calls"`
	AtomicOps int `json:"atomic_ops" yaml:"atomic_ops"`
	Instrs    int `json:"instrs" yaml:"instrs"`
}

func (s *InstructionStats) add(c Category) {
	switch c {
	case Load:
		s.Loads++
	case Store:
		s.Stores++
	case Alloca:
		s.Allocas++
	case Call:
		s.Calls++
	case AtomicOp:
		s.AtomicOps++
	default:
	}
	s.Instrs++
}

// CFGStats describes the control-flow graph of a function.
type CFGStats struct {
	Blocks   int `json:"blocks" yaml:"blocks"`     // blocks reachable from the entry
	Depth    int `json:"depth" yaml:"depth"`       // see ComputeCFGStats
	Branches int `json:"branches" yaml:"branches"` // successor edges of reachable blocks
}

// FunctionStats holds the statistics of a single function.
type FunctionStats struct {
	Name   string           `json:"name" yaml:"name"`
	Instrs InstructionStats `json:"instrs" yaml:"instrs"`
	CFG    CFGStats         `json:"cfg" yaml:"cfg"`
}

// ModuleStats holds the statistics of every function of a module.
type ModuleStats struct {
	Name      string          `json:"name" yaml:"name"`
	Functions []FunctionStats `json:"functions" yaml:"functions"`
}

// EverythingStats holds the statistics of every module.
type EverythingStats struct {
	Modules []ModuleStats `json:"modules" yaml:"modules"`
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// firstNonZero returns the first non-zero comparison result.
func firstNonZero(cmps ...int) int {
	for _, c := range cmps {
		if c != 0 {
			return c
		}
	}
	return 0
}

// Compare returns -1, 0 or +1 comparing the counters in declaration order.
func (s InstructionStats) Compare(o InstructionStats) int {
	return firstNonZero(
		compareInts(s.Loads, o.Loads),
		compareInts(s.Stores, o.Stores),
		compareInts(s.Allocas, o.Allocas),
		compareInts(s.Calls, o.Calls),
		compareInts(s.AtomicOps, o.AtomicOps),
		compareInts(s.Instrs, o.Instrs),
	)
}

// Compare returns -1, 0 or +1 comparing blocks, then depth, then branches.
func (s CFGStats) Compare(o CFGStats) int {
	return firstNonZero(
		compareInts(s.Blocks, o.Blocks),
		compareInts(s.Depth, o.Depth),
		compareInts(s.Branches, o.Branches),
	)
}

// Compare returns -1, 0 or +1 comparing name, then instruction stats, then CFG stats.
func (s FunctionStats) Compare(o FunctionStats) int {
	if c := compareStrings(s.Name, o.Name); c != 0 {
		return c
	}
	if c := s.Instrs.Compare(o.Instrs); c != 0 {
		return c
	}
	return s.CFG.Compare(o.CFG)
}

// Compare returns -1, 0 or +1 comparing names, then the function lists lexicographically.
func (s ModuleStats) Compare(o ModuleStats) int {
	if c := compareStrings(s.Name, o.Name); c != 0 {
		return c
	}
	for i := 0; i < len(s.Functions) && i < len(o.Functions); i++ {
		if c := s.Functions[i].Compare(o.Functions[i]); c != 0 {
			return c
		}
	}
	return compareInts(len(s.Functions), len(o.Functions))
}

// SortFunctions sorts fs in ascending order.
func SortFunctions(fs []FunctionStats) {
	sort.Slice(fs, func(i, j int) bool { return fs[i].Compare(fs[j]) < 0 })
}

// SortModules sorts ms in ascending order.
func SortModules(ms []ModuleStats) {
	sort.Slice(ms, func(i, j int) bool { return ms[i].Compare(ms[j]) < 0 })
}

// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package stats

import (
	"github.com/llir/llvm/ir"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Category

// Category is the class an instruction is counted under.
type Category int

const (
	// Other is every instruction without a dedicated counter
	Other Category = iota
	// Load represents a load instruction
	Load
	// Store represents a store instruction
	Store
	// Alloca represents a stack allocation
	Alloca
	// Call represents a call instruction
	Call
	// AtomicOp represents an atomicrmw or cmpxchg instruction
	AtomicOp
)

// Classify returns the category of an instruction.
func Classify(inst ir.Instruction) Category {
	switch inst.(type) {
	case *ir.InstLoad:
		return Load
	case *ir.InstStore:
		return Store
	case *ir.InstAlloca:
		return Alloca
	case *ir.InstCall:
		return Call
	case *ir.InstAtomicRMW, *ir.InstCmpXchg:
		return AtomicOp
	default:
		return Other
	}
}

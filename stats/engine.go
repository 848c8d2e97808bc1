// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package stats

import (
	"github.com/llir/llvm/ir"

	"passcheck/module"
)

// Engine computes FunctionStats. It holds no state.
type Engine struct{}

// Compute returns the statistics of f, named by its internal symbol.
func (Engine) Compute(f *ir.Func) FunctionStats {
	return Compute(f)
}

// Compute returns the statistics of f, named by its internal symbol.
func Compute(f *ir.Func) FunctionStats {
	return FunctionStats{
		Name:   f.Name(),
		Instrs: ComputeInstructionStats(f),
		CFG:    ComputeCFGStats(module.NewCFG(f)),
	}
}

// ComputeInstructionStats counts the instructions of every block of f.
func ComputeInstructionStats(f *ir.Func) InstructionStats {
	var s InstructionStats
	for _, b := range f.Blocks {
		for _, inst := range b.Insts {
			s.add(Classify(inst))
		}
		// terminator
		s.Instrs++
	}
	return s
}

// ComputeCFGStats walks g breadth-first from the entry, counting reachable blocks and every
// successor edge, including edges to blocks already seen and to the return node.
//
// Depth is 1 for the return node and 1 + the maximum successor depth for a block. Blocks are
// marked in a single visited set shared by the whole walk, and a block reached again
// contributes 0. When several paths lead to the same block, only the first one explored
// (in successor order) continues through it, so Depth is not the longest path of g.
func ComputeCFGStats(g *module.CFG) CFGStats {
	var s CFGStats
	entry := g.Entry()
	if entry == nil {
		return s
	}

	seen := map[*ir.Block]bool{entry: true}
	queue := []*ir.Block{entry}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, n := range g.Succs(b) {
			s.Branches++
			if n.IsReturn() || seen[n.Block] {
				continue
			}
			seen[n.Block] = true
			queue = append(queue, n.Block)
		}
		s.Blocks++
	}

	s.Depth = depth(g, entry)
	return s
}

// depth evaluates the depth recurrence with an explicit stack of frames, one per block
// being expanded.
func depth(g *module.CFG, entry *ir.Block) int {
	type frame struct {
		succs []module.Node
		next  int
		max   int
	}

	var (
		seen  = make(map[*ir.Block]bool)
		stack []frame
	)

	// enter returns the depth of n if it is known without expanding n.
	enter := func(n module.Node) (int, bool) {
		switch {
		case n.IsReturn():
			return 1, true
		case seen[n.Block]:
			return 0, true
		}
		seen[n.Block] = true
		stack = append(stack, frame{succs: g.Succs(n.Block)})
		return 0, false
	}

	if d, ok := enter(module.Node{Block: entry}); ok {
		return d
	}
	for {
		top := &stack[len(stack)-1]
		if top.next < len(top.succs) {
			n := top.succs[top.next]
			top.next++
			if d, ok := enter(n); ok && d > top.max {
				top.max = d
			}
			continue
		}

		d := top.max + 1
		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return d
		}
		if parent := &stack[len(stack)-1]; d > parent.max {
			parent.max = d
		}
	}
}

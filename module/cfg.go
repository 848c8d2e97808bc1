// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"github.com/llir/llvm/ir"
)

// Node is a vertex of a control-flow graph: either a basic block or the virtual return node.
type Node struct {
	Block *ir.Block
}

// Return is the virtual node every returning block flows into.
var Return = Node{}

// IsReturn reports whether n is the return node.
func (n Node) IsReturn() bool {
	return n.Block == nil
}

func (n Node) String() string {
	if n.IsReturn() {
		return "<return>"
	}
	return n.Block.Ident()
}

// CFG is a read-only view of the control flow of a function.
type CFG struct {
	entry *ir.Block
	succs map[*ir.Block][]Node
}

// NewCFG derives the control-flow graph of f from the terminators of its blocks.
// The entry of a function without blocks is nil.
func NewCFG(f *ir.Func) *CFG {
	g := &CFG{succs: make(map[*ir.Block][]Node, len(f.Blocks))}
	if len(f.Blocks) > 0 {
		g.entry = f.Blocks[0]
	}
	for _, b := range f.Blocks {
		g.succs[b] = successors(b.Term)
	}
	return g
}

// Entry returns the first block of the function.
func (g *CFG) Entry() *ir.Block {
	return g.entry
}

// Succs returns the successors of b in terminator order. A block reaches each successor once,
// even when its terminator names the same target several times.
func (g *CFG) Succs(b *ir.Block) []Node {
	return g.succs[b]
}

func successors(term ir.Terminator) []Node {
	switch term := term.(type) {
	case nil:
		return nil
	case *ir.TermRet, *ir.TermResume:
		return []Node{Return}
	case *ir.TermCleanupRet:
		// unwinds to the caller
		if len(term.Succs()) == 0 {
			return []Node{Return}
		}
	}

	var (
		targets = term.Succs()
		nodes   = make([]Node, 0, len(targets))
		seen    = make(map[*ir.Block]bool, len(targets))
	)
	for _, t := range targets {
		if seen[t] {
			continue
		}
		seen[t] = true
		nodes = append(nodes, Node{Block: t})
	}
	return nodes
}

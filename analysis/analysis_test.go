// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package analysis

import (
	"testing"

	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passcheck/logger"
	"passcheck/module"
	"passcheck/stats"
)

const (
	sumSym   = "_ZN3sum3sum17h0123456789abcdefE"
	otherSum = "_ZN3sum3sum17hfedcba9876543210E"
)

var corpus = []struct {
	path string
	src  string
}{
	{"deps/sum-1.ll", `
define i64 @_ZN3sum3sum17h0123456789abcdefE(i64 %n) {
entry:
  ret i64 %n
}

define i32 @main() {
entry:
  %r = call i64 @_ZN3sum3sum17h0123456789abcdefE(i64 10)
  ret i32 0
}
`},
	{"deps/core-2.ll", `
declare i32 @rand()

define i32 @_Z3fooi(i32 %x) {
entry:
  ret i32 %x
}

define i64 @_ZN3sum3sum17hfedcba9876543210E(i64 %n) {
entry:
  ret i64 %n
}
`},
	{"deps/dup-3.ll", `
define void @_ZN3dup3dup17h1a2b3c4d5e6f7a8bE() {
entry:
  ret void
}

define void @_ZN3dup3dup17h8b7a6f5e4d3c2b1aE() {
entry:
  ret void
}
`},
}

func init() {
	logger.SetOutput(nil)
}

func loadCorpus(t *testing.T) []*module.Module {
	var mods []*module.Module
	for _, c := range corpus {
		m, err := asm.ParseString(c.path, c.src)
		require.NoError(t, err)
		mods = append(mods, module.New(c.path, m))
	}
	return mods
}

type countingEngine struct {
	calls map[string]int
}

func newCountingEngine() *countingEngine {
	return &countingEngine{calls: make(map[string]int)}
}

func (e *countingEngine) Compute(f *ir.Func) stats.FunctionStats {
	e.calls[f.Name()]++
	return stats.Compute(f)
}

func TestDemangle(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"_Z3fooi", "foo(int)"},
		{"_ZN3foo3barEv", "foo::bar()"},
		{sumSym, "sum::sum"},
		{"_ZN4core3fmt5write17h0123456789abcdefE", "core::fmt::write"},
		{"main", "main"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			assert.Equal(t, tt.want, Demangle(tt.symbol))
		})
	}
}

func TestNameResolverBuild(t *testing.T) {
	r := NewNameResolver(loadCorpus(t))
	r.Build()
	once := make(map[string]string)
	for k, v := range r.names {
		once[k] = v
	}
	r.Build()
	assert.Equal(t, once, r.names)

	assert.Equal(t, []string{"dup::dup", "foo(int)", "main", "sum::sum"}, r.Names())
	assert.Equal(t, 4, r.Len())

	symbol, ok := r.Resolve("foo(int)")
	assert.True(t, ok)
	assert.Equal(t, "_Z3fooi", symbol)

	// sum::sum is defined by two modules; the later one wins
	symbol, ok = r.Resolve("sum::sum")
	assert.True(t, ok)
	assert.Equal(t, otherSum, symbol)

	_, ok = r.Resolve("rand")
	assert.False(t, ok)
}

func TestNameResolverEmpty(t *testing.T) {
	r := NewNameResolver(nil)
	r.Build()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.Names())
}

func TestAnalyzeByNameCached(t *testing.T) {
	e := newCountingEngine()
	c := NewContext(loadCorpus(t), e)

	first, ok := c.AnalyzeByName("main")
	require.True(t, ok)
	second, ok := c.AnalyzeByName("main")
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, e.calls["main"])
	assert.Equal(t, 1, c.Computed())
	assert.Equal(t, stats.FunctionStats{
		Name:   "main",
		Instrs: stats.InstructionStats{Calls: 1, Instrs: 2},
		CFG:    stats.CFGStats{Blocks: 1, Depth: 2, Branches: 1},
	}, first)
}

func TestAnalyzeByDisplayName(t *testing.T) {
	c := NewContext(loadCorpus(t), stats.Engine{})
	s, ok := c.AnalyzeByName("foo(int)")
	require.True(t, ok)
	assert.Equal(t, "foo(int)", s.Name)
}

func TestAnalyzeBySymbol(t *testing.T) {
	e := newCountingEngine()
	c := NewContext(loadCorpus(t), e)

	// the display name resolves to the other module; the symbol still reaches this one
	s, ok := c.AnalyzeByName(sumSym)
	require.True(t, ok)
	assert.Equal(t, "sum::sum", s.Name)
	assert.Equal(t, 1, e.calls[sumSym])
	assert.Equal(t, 0, e.calls[otherSum])

	_, ok = c.AnalyzeByName("sum::sum")
	require.True(t, ok)
	assert.Equal(t, 1, e.calls[otherSum])
}

func TestAnalyzeByNameMissing(t *testing.T) {
	e := newCountingEngine()
	c := NewContext(loadCorpus(t), e)

	_, ok := c.AnalyzeByName("missing")
	assert.False(t, ok)
	// declarations are not analyzable
	_, ok = c.AnalyzeByName("rand")
	assert.False(t, ok)
	assert.Empty(t, e.calls)
}

func TestLookup(t *testing.T) {
	mods := loadCorpus(t)
	c := NewContext(mods, stats.Engine{})

	f, m, ok := c.LookupBySymbol("_Z3fooi")
	require.True(t, ok)
	assert.Equal(t, "_Z3fooi", f.Name())
	assert.Same(t, mods[1], m)

	_, _, ok = c.LookupBySymbol("foo(int)")
	assert.False(t, ok)

	symbol, ok := c.LookupByDisplayName("main")
	assert.True(t, ok)
	assert.Equal(t, "main", symbol)
	assert.Len(t, c.Modules(), 3)
}

func TestAnalyzeFunctionCache(t *testing.T) {
	e := newCountingEngine()
	mods := loadCorpus(t)
	c := NewContext(mods, e)

	for i := 0; i < 3; i++ {
		for _, m := range mods {
			for _, f := range m.Functions() {
				c.AnalyzeFunction(f)
			}
		}
	}
	for symbol, n := range e.calls {
		assert.Equal(t, 1, n, symbol)
	}
	assert.Equal(t, 6, c.Computed())
}

func TestIsNotFound(t *testing.T) {
	err := error(&NotFoundError{Kind: KindModule, Name: "x"})
	assert.True(t, IsNotFound(err))
	assert.EqualError(t, err, "could not find module 'x'")
	assert.False(t, IsNotFound(assert.AnError))
	assert.False(t, IsNotFound(nil))
}

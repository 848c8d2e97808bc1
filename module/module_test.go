// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llir/llvm/asm"
	"github.com/llir/llvm/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passcheck/logger"
)

const mainLL = `
declare i32 @rand()

define i32 @main() {
entry:
  ret i32 0
}
`

const branchesLL = `
define void @branches(i1 %c, i32 %x) {
entry:
  br i1 %c, label %sw, label %exit
sw:
  switch i32 %x, label %exit [
    i32 0, label %dead
    i32 1, label %dead
  ]
dead:
  unreachable
exit:
  ret void
}
`

func init() {
	logger.SetOutput(nil)
}

func parse(t *testing.T, src string) *ir.Module {
	m, err := asm.ParseString("test.ll", src)
	require.NoError(t, err)
	return m
}

func block(t *testing.T, f *ir.Func, name string) *ir.Block {
	for _, b := range f.Blocks {
		if b.Name() == name {
			return b
		}
	}
	t.Fatalf("no block %s in %s", name, f.Name())
	return nil
}

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}
	return dir
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "sum", DisplayName("sum-4f3b2c1d"))
	assert.Equal(t, "core", DisplayName("core"))
	assert.Equal(t, "-odd", DisplayName("-odd"))
}

func TestNew(t *testing.T) {
	m := New("/tmp/deps/sum-4f3b2c1d.ll", parse(t, mainLL))
	assert.Equal(t, "sum-4f3b2c1d", m.Name)
	assert.Equal(t, "sum", m.DisplayName)
	assert.Equal(t, "/tmp/deps/sum-4f3b2c1d.ll", m.Path)

	funcs := m.Functions()
	require.Len(t, funcs, 1)
	assert.Equal(t, "main", funcs[0].Name())
}

func TestLoad(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"b-2.ll":     mainLL,
		"a-1.ll":     branchesLL,
		"broken.ll":  "define i32 @broken( {",
		"notes.txt":  mainLL,
		"ignored.bc": mainLL,
	})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.ll"), 0700))

	mods, err := Load(dir, Config{Extensions: []string{".ll"}, Workers: 2})
	require.NoError(t, err)
	require.Len(t, mods, 2)
	assert.Equal(t, "a-1", mods[0].Name)
	assert.Equal(t, "a", mods[0].DisplayName)
	assert.Equal(t, "b-2", mods[1].Name)
}

func TestLoadBitcode(t *testing.T) {
	dis := writeFiles(t, map[string]string{"dis.sh": "#!/bin/sh\ncp \"$1\" \"$3\"\n"})
	script := filepath.Join(dis, "dis.sh")
	require.NoError(t, os.Chmod(script, 0700))
	t.Setenv("PASSCHECK_LLVM_DIS", script)

	dir := writeFiles(t, map[string]string{"main.bc": mainLL})
	mods, err := Load(dir, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, mods, 1)
	assert.Equal(t, "main", mods[0].Name)
	assert.Len(t, mods[0].Functions(), 1)

	t.Setenv("PASSCHECK_LLVM_DIS", "false")
	mods, err = Load(dir, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, mods)
}

func TestLoadUnreadable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"), DefaultConfig())
	assert.Error(t, err)
}

func TestCFG(t *testing.T) {
	f := parse(t, branchesLL).Funcs[0]
	g := NewCFG(f)

	var (
		entry = block(t, f, "entry")
		sw    = block(t, f, "sw")
		dead  = block(t, f, "dead")
		exit  = block(t, f, "exit")
	)
	assert.Equal(t, entry, g.Entry())
	assert.Equal(t, []Node{{Block: sw}, {Block: exit}}, g.Succs(entry))
	// the two cases targeting dead collapse into one edge
	assert.Equal(t, []Node{{Block: exit}, {Block: dead}}, g.Succs(sw))
	assert.Empty(t, g.Succs(dead))
	assert.Equal(t, []Node{Return}, g.Succs(exit))
}

func TestCFGEmpty(t *testing.T) {
	f := parse(t, mainLL).Funcs[0]
	assert.Empty(t, f.Blocks)
	assert.Nil(t, NewCFG(f).Entry())
}

func TestNode(t *testing.T) {
	assert.True(t, Return.IsReturn())
	assert.Equal(t, "<return>", Return.String())

	f := parse(t, mainLL).Funcs[1]
	n := Node{Block: f.Blocks[0]}
	assert.False(t, n.IsReturn())
	assert.Equal(t, "%entry", n.String())
}

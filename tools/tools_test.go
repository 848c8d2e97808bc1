// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegEnv(t *testing.T) {
	RegEnv("PASSCHECK_TEST_TOOL", "llvm-dis -o", "test tool")
	t.Cleanup(func() { delete(envvars, "PASSCHECK_TEST_TOOL") })

	assert.Equal(t, "llvm-dis -o", GetEnv("PASSCHECK_TEST_TOOL"))
	assert.Equal(t, []string{"llvm-dis", "-o"}, FindCmd("PASSCHECK_TEST_TOOL"))

	t.Setenv("PASSCHECK_TEST_TOOL", "my-dis")
	assert.Equal(t, []string{"my-dis"}, FindCmd("PASSCHECK_TEST_TOOL"))

	var found bool
	for _, ev := range GetEnvvars() {
		if ev.Name == "PASSCHECK_TEST_TOOL" {
			found = true
			assert.Equal(t, "test tool", ev.Desc)
		}
	}
	assert.True(t, found)
}

func TestFindCmdDefault(t *testing.T) {
	assert.Equal(t, []string{"fallback"}, FindCmd("PASSCHECK_UNREGISTERED", "fallback"))
}

func TestTouchRemove(t *testing.T) {
	fn, err := Touch("passcheck-*.ll")
	require.NoError(t, err)
	assert.NoError(t, FileExists(fn))
	assert.NoError(t, Remove(fn))
	assert.Error(t, FileExists(fn))
}

func TestCreateOutput(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.json")
	out, err := CreateOutput(fn)
	require.NoError(t, err)
	_, err = out.Write([]byte("{}"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))

	stdout, err := CreateOutput("")
	require.NoError(t, err)
	assert.NoError(t, stdout.Close())
	assert.Equal(t, os.Stdout.Fd(), stdout.Fd())
}

func TestRunCmd(t *testing.T) {
	out, err := RunCmd("sh", []string{"-c", "echo hello"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	out, err = RunCmd("sh", []string{"-c", "echo boom; exit 3"}, nil)
	assert.Equal(t, "boom", out)
	assert.EqualError(t, err, "sh: boom")

	_, err = RunCmd("passcheck-no-such-binary", nil, nil)
	assert.Error(t, err)
}

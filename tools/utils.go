// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package tools

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"

	"passcheck/logger"
)

const fileMode = 0600

// Touch creates a new empty temporary file with the given file pattern and returns its name.
func Touch(pattern string) (string, error) {
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", errors.Wrap(err, "could not create temporary file")
	}
	if err := tmp.Close(); err != nil {
		logger.Warnf("error closing file: %v", err)
	}
	return tmp.Name(), nil
}

// RunCmd runs a command line with arguments and environment variable assignments
func RunCmd(cmdl string, args, env []string) (string, error) {
	return RunCmdContext(context.Background(), cmdl, args, env)
}

// RunCmdContext runs a command line with arguments and environment variable assignments and a context
func RunCmdContext(ctx context.Context, cmdl string, args, env []string) (string, error) {
	logger.Debug(append(append(env, cmdl), args...))
	cmd := exec.CommandContext(ctx, cmdl, args...)
	cmd.Env = append(os.Environ(), env...)
	out, err := cmd.CombinedOutput()

	sout := strings.TrimSuffix(string(out), "\n")
	if err == nil {
		return sout, nil
	}
	if err, ok := err.(*exec.Error); ok {
		return sout, err
	}
	if err, ok := err.(*exec.ExitError); ok {
		if sout != "" {
			return sout, fmt.Errorf("%s: %s", cmdl, sout)
		}
		return sout, err
	}
	return sout, fmt.Errorf("unknown error: %v", err)
}

// FileExists returns nil if a file exists otherwise an error
func FileExists(fn string) error {
	if _, err := os.Stat(fn); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", fn)
	}
	return nil
}

// Remove deletes a file.
func Remove(fn string) error {
	logger.Debugf("Remove file '%s'", fn)
	return os.Remove(fn)
}

// nopCloser keeps the standard output open when the caller closes it.
type nopCloser struct{ *os.File }

func (nopCloser) Close() error { return nil }

// Output is a destination for rendered results.
type Output interface {
	io.WriteCloser
	Fd() uintptr
}

// CreateOutput opens fn for writing, truncating it. An empty fn selects the standard output,
// which is never closed.
func CreateOutput(fn string) (Output, error) {
	if fn == "" {
		return nopCloser{os.Stdout}, nil
	}
	logger.Debugf("Dump file '%s'", fn)
	out, err := os.OpenFile(fn, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, fileMode)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create '%s'", fn)
	}
	return out, nil
}

// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"passcheck/analysis"
)

type errorType int

const (
	notFound      errorType = 2
	internalError errorType = 1
	loadError     errorType = 1
	usageError    errorType = 1
	noError       errorType = 0
)

type cliError struct {
	typ errorType
	err error
}

func (e *cliError) Error() string {
	return e.err.Error()
}

func (e *cliError) Unwrap() error {
	return e.err
}

func (e *cliError) Code() int {
	return int(e.typ)
}

func verror(typ errorType, err error) *cliError {
	return &cliError{
		typ: typ,
		err: err,
	}
}

// qerror classifies an error returned by a query.
func qerror(err error) *cliError {
	if analysis.IsNotFound(err) {
		return verror(notFound, err)
	}
	return verror(usageError, err)
}

func getErrorCode(err error) int {
	if err == nil {
		return int(noError)
	}
	switch e := err.(type) {
	case *cliError:
		return e.Code()
	default:
		return int(internalError)
	}
}

func getErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

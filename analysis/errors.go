// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kinds of objects a query can fail to find.
const (
	KindFunction = "function"
	KindModule   = "module"
)

// NotFoundError is returned when a requested function or module does not exist.
type NotFoundError struct {
	Kind string
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not find %s '%s'", e.Kind, e.Name)
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

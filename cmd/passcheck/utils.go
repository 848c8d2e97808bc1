// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// isArgs1 ensures there is exactly one argument
func isArgs1(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return verror(usageError, fmt.Errorf("%s: missing argument", cmd.CommandPath()))
	case len(args) > 1:
		return verror(usageError, fmt.Errorf("%s: too many arguments", cmd.CommandPath()))
	default:
		return nil
	}
}

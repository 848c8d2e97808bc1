// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	name    = "passcheck"
	version = "latest"
)

var versionCmd = cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, version)
	},
}

func init() {
	versionCmd.SetHelpFunc(func(command *cobra.Command, strings []string) {})
	rootCmd.AddCommand(&versionCmd)
}

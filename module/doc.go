// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package module provides a wrapper for LLVM-IR modules (loaded with github.com/llir). It loads
// every module of a directory and exposes the control-flow graph of each defined function.
package module

// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package analysis resolves demangled function names to symbols across a set of loaded modules
// and memoizes the statistics of every function analyzed through a Context.
//
// A Context is meant to be used by a single goroutine. Modules must not change while a Context
// refers to them: cached statistics are never invalidated.
package analysis

// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package analysis

import (
	"regexp"

	"github.com/ianlancetaylor/demangle"
)

// rustc appends a hash to legacy mangled names
var reRustHash = regexp.MustCompile(`::h[0-9a-f]{16}$`)

// Demangle returns the display name of a symbol. C++ (Itanium) and Rust symbols are demangled
// and the hash suffix of legacy Rust symbols is dropped. Other symbols are returned unchanged.
func Demangle(symbol string) string {
	name, err := demangle.ToString(symbol)
	if err != nil {
		return symbol
	}
	return reRustHash.ReplaceAllString(name, "")
}

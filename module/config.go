// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

package module

// Config enables multiple options when loading LLVM IR modules.
type Config struct {
	Extensions []string `toml:"extensions" yaml:"extensions"` // file extensions recognized as modules
	Workers    int      `toml:"workers" yaml:"workers"`       // concurrent parsers, 0 for GOMAXPROCS
}

// DefaultConfig returns a default configuration for loading modules
func DefaultConfig() Config {
	return Config{
		Extensions: []string{".ll", ".bc"},
	}
}

func (c Config) accepts(ext string) bool {
	for _, e := range c.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

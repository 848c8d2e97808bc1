// Copyright (C) 2023 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tools contains helpers to run external commands, register environment
// variables and create, write and remove files.
package tools

import (
	"os"
	"sort"
	"strings"
)

// Envvar describes an environment variable understood by passcheck.
type Envvar struct {
	Name string
	Defv string
	Desc string
}

var envvars = make(map[string]Envvar)

// RegEnv registers an environment variable with its default value and description.
// Registering the same name twice replaces the earlier entry.
func RegEnv(name, defv, desc string) {
	envvars[name] = Envvar{Name: name, Defv: defv, Desc: desc}
}

// GetEnv returns the value of a registered environment variable or its default value
// if the variable is unset.
func GetEnv(name string) string {
	if val, has := os.LookupEnv(name); has { //permit:os.LookupEnv
		return val
	}
	return envvars[name].Defv
}

// GetEnvvars returns the registered environment variables sorted by name.
func GetEnvvars() []Envvar {
	var evs []Envvar
	for _, ev := range envvars {
		evs = append(evs, ev)
	}
	sort.Slice(evs, func(i, j int) bool { return evs[i].Name < evs[j].Name })
	return evs
}

// FindCmd looks for the value of an environment variable and splits it into a command line.
// If not set, the registered default is used; if there is none, defaultVal is returned.
func FindCmd(envVar string, defaultVal ...string) []string {
	if cmd := strings.TrimSpace(GetEnv(envVar)); cmd != "" {
		return strings.Fields(cmd)
	}
	return defaultVal
}

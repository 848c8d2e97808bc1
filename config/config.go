// Copyright (C) 2024 Huawei Technologies Co., Ltd. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the passcheck configuration: embedded defaults, optionally
// overridden by a TOML or YAML file.
package config

import (
	"bytes"
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"passcheck/module"
	"passcheck/tools"
)

//go:embed default_config.toml
var embeddedConfigData []byte

func init() {
	tools.RegEnv("PASSCHECK_CONFIG", "", "Configuration file (.toml, .yaml or .yml) applied on top of the defaults")
}

// Config holds the application configuration.
type Config struct {
	Loader module.Config `toml:"loader" yaml:"loader"`
	Output OutputConfig  `toml:"output" yaml:"output"`
}

// OutputConfig selects how results are rendered.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(bytes.NewReader(embeddedConfigData)).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse embedded config")
	}
	return &cfg, nil
}

// Load returns the default configuration overridden by the file fn. An empty fn falls back to
// PASSCHECK_CONFIG; if that is empty too, the defaults are returned unchanged. Only the keys
// present in the file replace default values.
func Load(fn string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}
	if fn == "" {
		fn = tools.GetEnv("PASSCHECK_CONFIG")
	}
	if fn == "" {
		return cfg, nil
	}

	switch strings.ToLower(filepath.Ext(fn)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(fn)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load config from %s", fn)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to parse config %s", fn)
		}
	case ".toml":
		if _, err := toml.DecodeFile(fn, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to load config from %s", fn)
		}
	default:
		return nil, errors.Errorf("unsupported config format: %s", fn)
	}
	return cfg, nil
}

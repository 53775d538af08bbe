// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional site configuration for the toolkit.
package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when no
// explicit --config flag is given.
const DefaultPath = "slurm-toolkit.yaml"

// Config holds site-wide defaults applied to every job script.
type Config struct {
	// SbatchPath and SacctPath override the scheduler tool binaries,
	// e.g. when they are not on PATH.
	SbatchPath string `yaml:"sbatch_path"`
	SacctPath  string `yaml:"sacct_path"`

	// DependencyMode is the default mode for job dependencies.
	DependencyMode string `yaml:"dependency_mode"`

	// Shebang overrides the interpreter line of generated scripts.
	Shebang string `yaml:"shebang"`

	// Directives and Modules are prepended to every submitted script.
	Directives []string `yaml:"directives"`
	Modules    []string `yaml:"modules"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{
		SbatchPath:     "sbatch",
		SacctPath:      "sacct",
		DependencyMode: "afterany",
		Shebang:        "#!/bin/bash",
	}
}

// Load reads a YAML config file from fs, filling unset fields with defaults.
// A missing file at the default path is not an error; a missing file at an
// explicitly requested path is.
func Load(fs afero.Fs, path string, explicit bool) (Config, error) {
	cfg := Default()

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to stat config file %q", path)
	}
	if !exists {
		if explicit {
			return cfg, errors.Errorf("config file %q does not exist", path)
		}
		return cfg, nil
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config file %q", path)
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config file %q", path)
	}

	if cfg.SbatchPath == "" {
		cfg.SbatchPath = "sbatch"
	}
	if cfg.SacctPath == "" {
		cfg.SacctPath = "sacct"
	}
	if cfg.DependencyMode == "" {
		cfg.DependencyMode = "afterany"
	}
	if cfg.Shebang == "" {
		cfg.Shebang = "#!/bin/bash"
	}
	return cfg, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"maps"
	"path/filepath"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

// Defaults applied after all sources are merged.
const (
	DefaultProjectDir      = "."
	DefaultSourceDirectory = "src"
)

// StructuredConfig is the top-level configuration container for
// supervisor-dump. It is populated by merging environment variables, an
// optional YAML file and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env); the
//     whole tree is additionally prefixed with SUPERVISOR_.
//   - env:       environment variable name for scalar fields.
//   - yaml:      key in the YAML configuration file.
type StructuredConfig struct {
	// ProjectDir is the directory source directories are resolved against.
	// Env: SUPERVISOR_PROJECT_DIR
	ProjectDir string `env:"PROJECT_DIR" yaml:"project_dir"`

	// SourceDirectories lists directories (relative to ProjectDir) scanned
	// for declarations. Defaults to ["src"].
	// Env: SUPERVISOR_SOURCE_DIRECTORIES (comma-separated)
	SourceDirectories []string `env:"SOURCE_DIRECTORIES" envSeparator:"," yaml:"source_directories"`

	// Exporter holds the defaults applied to every generated program.
	Exporter Exporter `envPrefix:"EXPORTER_" yaml:"exporter"`

	// Log controls diagnostics written to stderr.
	Log Log `envPrefix:"LOG_" yaml:"log"`

	// YAMLFilePath is the optional path to a YAML configuration file.
	// Env: SUPERVISOR_CONFIG
	YAMLFilePath string `env:"CONFIG" yaml:"-"`
}

// Exporter groups the values used while compiling program entries.
type Exporter struct {
	// Executor is the default interpreter, e.g. "php".
	// Env: SUPERVISOR_EXPORTER_EXECUTOR
	Executor string `env:"EXECUTOR" yaml:"executor"`

	// Console is the default entry point, e.g. "bin/console".
	// Env: SUPERVISOR_EXPORTER_CONSOLE
	Console string `env:"CONSOLE" yaml:"console"`

	// Server is used when no server is requested on the command line.
	// Env: SUPERVISOR_EXPORTER_SERVER
	Server string `env:"SERVER" yaml:"server"`

	// Environment is appended to every command as --env=<value>.
	// Env: SUPERVISOR_EXPORTER_ENVIRONMENT
	Environment string `env:"ENVIRONMENT" yaml:"environment"`

	// User sets the supervisord "user" key of every program.
	// Env: SUPERVISOR_EXPORTER_USER
	User string `env:"USER" yaml:"user"`

	// StrictServer rejects declarations without server affiliation.
	// Env: SUPERVISOR_EXPORTER_STRICT_SERVER
	StrictServer bool `env:"STRICT_SERVER" yaml:"strict_server"`

	// Precedence is "entry" or "defaults"; see [models.Precedence].
	// Env: SUPERVISOR_EXPORTER_PRECEDENCE
	Precedence string `env:"PRECEDENCE" yaml:"precedence"`

	// Program holds default supervisord options for every program.
	// Only configurable from the YAML file.
	Program map[string]any `yaml:"program"`
}

// Log holds diagnostic output settings.
type Log struct {
	// Verbose enables debug level.
	// Env: SUPERVISOR_LOG_VERBOSE
	Verbose bool `env:"VERBOSE" yaml:"verbose"`
}

// GetStructuredConfig loads, merges, and validates the configuration in the
// following priority order (later sources override non-zero fields):
//  1. Environment variables
//  2. YAML file (path from flags or SUPERVISOR_CONFIG)
//  3. Command-line flags
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withYAML(flags.yamlPath()).
		withFlags(flags).
		build()
}

// GlobalConfig returns the immutable exporter defaults.
func (cfg *StructuredConfig) GlobalConfig() models.GlobalConfig {
	// validate has already accepted the value
	precedence, _ := models.ParsePrecedence(cfg.Exporter.Precedence)

	return models.GlobalConfig{
		Executor:     cfg.Exporter.Executor,
		Console:      cfg.Exporter.Console,
		Server:       cfg.Exporter.Server,
		Program:      maps.Clone(cfg.Exporter.Program),
		StrictServer: cfg.Exporter.StrictServer,
		Precedence:   precedence,
	}
}

// SourcePaths returns the source directories resolved against ProjectDir.
func (cfg *StructuredConfig) SourcePaths() []string {
	paths := make([]string, 0, len(cfg.SourceDirectories))
	for _, dir := range cfg.SourceDirectories {
		if filepath.IsAbs(dir) {
			paths = append(paths, filepath.Clean(dir))
			continue
		}
		paths = append(paths, filepath.Join(cfg.ProjectDir, dir))
	}
	return paths
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.ProjectDir == "" {
		cfg.ProjectDir = DefaultProjectDir
	}
	if len(cfg.SourceDirectories) == 0 {
		cfg.SourceDirectories = []string{DefaultSourceDirectory}
	}
}

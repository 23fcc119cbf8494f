package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// parseYAML reads a configuration file shaped like:
//
//	project_dir: /srv/app
//	source_directories: [src, lib]
//	exporter:
//	  executor: php
//	  console: bin/console
//	  program:
//	    autostart: true
//	    environment: {APP_DEBUG: "0"}
//
// Unknown keys are rejected so typos surface early.
func parseYAML(path string) (*StructuredConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}
	defer file.Close()

	var cfg StructuredConfig
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return &cfg, nil
}

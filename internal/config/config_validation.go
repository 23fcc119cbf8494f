// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

// validate checks the merged [StructuredConfig] before any export runs:
// every source directory must exist and the precedence must be known.
func (cfg *StructuredConfig) validate() error {
	if _, err := models.ParsePrecedence(cfg.Exporter.Precedence); err != nil {
		return err
	}

	for i, path := range cfg.SourcePaths() {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("%w: received directory %q under \"source_directories\"",
				ErrSourceDirectoryNotFound, cfg.SourceDirectories[i])
		}
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package discovery finds supervisor declarations in application sources
// and collects them into a registry.
//
// Two kinds of sources are understood:
//   - Go files: //supervisor:program directives on type declarations;
//   - *.supervisor.hcl files: program "<Type>" { ... } blocks.
//
// Discovery is fresh on every call; nothing is cached between exports.
package discovery

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-supervisor-dump/internal/logger"
	"github.com/MKhiriev/go-supervisor-dump/internal/registry"
	"github.com/MKhiriev/go-supervisor-dump/models"
)

// Discovery walks source directories and dispatches every file to the first
// scanner that accepts it.
type Discovery struct {
	scanners []Scanner
	logger   *logger.Logger
}

// New returns a Discovery reading Go directives and HCL declaration files.
// Skipped files and classes are reported through log, or through the logger
// attached to the context passed to [Discovery.Discover].
func New(log *logger.Logger) *Discovery {
	scannerLog := log.WithComponent(component)
	return NewWithScanners(log, NewGoScanner(scannerLog), NewHCLScanner(scannerLog))
}

func NewWithScanners(log *logger.Logger, scanners ...Scanner) *Discovery {
	return &Discovery{scanners: scanners, logger: log}
}

const component = "discovery"

// Discover scans dirs in order and returns the declared classes. Files that
// cannot be parsed and classes with invalid declarations are logged and
// skipped; a directory that cannot be walked fails the discovery.
func (d *Discovery) Discover(ctx context.Context, dirs []string) ([]models.Class, error) {
	log := logger.FromContext(ctx, d.logger).WithComponent(component)
	ctx = log.WithContext(ctx)

	reg := registry.New()

	for _, dir := range dirs {
		files, err := findFiles(dir, d.accepts)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrWalkSources, dir, err)
		}

		log.Debug().Str("dir", dir).Int("files", len(files)).Msg("scanning source directory")

		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("discovery interrupted: %w", err)
			}

			classes, err := d.scannerFor(path).Scan(ctx, path)
			if err != nil {
				log.Warn().Err(err).Str("file", path).Msg("skipping unreadable source file")
				continue
			}

			for _, class := range classes {
				if err := reg.Register(class.Name, class.Source, class.Builders...); err != nil {
					log.Warn().
						Err(err).
						Str("class", class.Name).
						Str("file", path).
						Msg("skipping class with invalid declaration")
				}
			}
		}
	}

	classes := reg.Classes()
	log.Debug().Int("classes", len(classes)).Int("declarations", reg.Len()).Msg("discovery finished")

	return classes, nil
}

func (d *Discovery) accepts(path string) bool {
	return d.scannerFor(path) != nil
}

func (d *Discovery) scannerFor(path string) Scanner {
	for _, s := range d.scanners {
		if s.Accepts(path) {
			return s
		}
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-supervisor-dump/internal/logger"
	"github.com/MKhiriev/go-supervisor-dump/models"
)

// ExportRequest carries the per-invocation inputs of an export.
type ExportRequest struct {
	// Server is the target server. Falls back to the configured default
	// server; an export without any server fails.
	Server string

	// Environment is appended to every command as --env=<Environment>.
	Environment string

	// User sets the supervisord "user" key of every program.
	User string

	// Options override the configured default program options.
	Options map[string]any
}

type exportService struct {
	global models.GlobalConfig

	filter   ServerFilter
	names    NameResolver
	commands CommandCompiler
	emitter  ConfigurationEmitter

	logger *logger.Logger
}

// NewExportService wires the export pipeline for the given defaults.
func NewExportService(global models.GlobalConfig, logger *logger.Logger) ExportService {
	return &exportService{
		global:   global,
		filter:   NewServerFilter(global.StrictServer),
		names:    NewNameResolver(),
		commands: NewCommandCompiler(),
		emitter:  NewConfigurationEmitter(),
		logger:   logger,
	}
}

// Export compiles the program entries of every class eligible for the
// requested server and renders them. Any error aborts the export before
// output is produced.
func (s *exportService) Export(ctx context.Context, classes []models.Class, req ExportRequest) (string, error) {
	entries, err := s.ProgramEntries(ctx, classes, req)
	if err != nil {
		return "", err
	}

	s.log(ctx).Debug().Int("programs", len(entries)).Msg("emitting configuration")

	return s.emitter.Emit(entries)
}

// log returns the logger attached to ctx, or the service logger, tagged with
// the export component.
func (s *exportService) log(ctx context.Context) *logger.Logger {
	return logger.FromContext(ctx, s.logger).WithComponent("export")
}

// ProgramEntries runs filtering, naming, command compilation and option
// merging without rendering.
func (s *exportService) ProgramEntries(ctx context.Context, classes []models.Class, req ExportRequest) ([]models.ProgramEntry, error) {
	server := req.Server
	if strings.TrimSpace(server) == "" {
		server = s.global.Server
	}
	if strings.TrimSpace(server) == "" {
		return nil, ErrServerNotSpecified
	}

	log := s.log(ctx)

	base, err := s.baseOptions(req)
	if err != nil {
		return nil, err
	}

	var entries []models.ProgramEntry
	seen := make(map[string]string)

	for _, class := range classes {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("export interrupted: %w", err)
		}

		for i, decl := range class.Declarations {
			ok, err := s.filter.Matches(decl, server)
			if err != nil {
				return nil, fmt.Errorf("error filtering declaration #%d of %s: %w", i+1, class.Name, err)
			}
			if !ok {
				log.Debug().
					Str("class", class.Name).
					Str("command", decl.CommandName).
					Str("server", server).
					Msg("declaration skipped for server")
				continue
			}

			entry, err := s.programEntry(log, decl, i+1, base, req)
			if err != nil {
				return nil, fmt.Errorf("error compiling declaration #%d of %s: %w", i+1, class.Name, err)
			}

			if owner, dup := seen[entry.Name]; dup {
				log.Warn().
					Str("program", entry.Name).
					Str("class", class.Name).
					Str("first_class", owner).
					Msg("duplicate program name")
			} else {
				seen[entry.Name] = class.Name
			}

			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// baseOptions merges the configured defaults with the request overrides.
func (s *exportService) baseOptions(req ExportRequest) (map[string]any, error) {
	return mergeOptions(s.global.Program, req.Options)
}

func (s *exportService) programEntry(log *logger.Logger, decl models.Declaration, instance int, base map[string]any, req ExportRequest) (models.ProgramEntry, error) {
	options, err := mergeOptions(base, decl.Options)
	if err != nil {
		return models.ProgramEntry{}, err
	}
	// --user wins over every option layer
	if req.User != "" {
		options[models.KeyUser] = req.User
	}

	entry := models.ProgramEntry{
		Name:     s.names.ResolveName(decl, instance),
		Command:  s.commands.CompileCommand(decl, s.global, req.Environment),
		NumProcs: decl.Processes,
		Options:  options,
	}

	shadowed, err := applyPrecedence(&entry, s.global.Precedence)
	if err != nil {
		return models.ProgramEntry{}, err
	}
	if len(shadowed) > 0 {
		log.Debug().
			Str("program", entry.Name).
			Strs("keys", shadowed).
			Msg("options shadowed by declaration fields")
	}

	return entry, nil
}

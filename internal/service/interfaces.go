package service

import (
	"context"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

// ServerFilter decides whether a declaration applies to the requested server.
type ServerFilter interface {
	Matches(decl models.Declaration, server string) (bool, error)
}

// NameResolver derives the supervisord program name of a declaration.
// instance is the 1-based position of the declaration on its type.
type NameResolver interface {
	ResolveName(decl models.Declaration, instance int) string
}

// CommandCompiler assembles the shell command of a declaration.
type CommandCompiler interface {
	CompileCommand(decl models.Declaration, global models.GlobalConfig, environment string) string
}

// ConfigurationEmitter serializes program entries into supervisord format.
type ConfigurationEmitter interface {
	Emit(entries []models.ProgramEntry) (string, error)
}

// ExportService turns discovered classes into a supervisord configuration
// for one server.
type ExportService interface {
	Export(ctx context.Context, classes []models.Class, req ExportRequest) (string, error)
	ProgramEntries(ctx context.Context, classes []models.Class, req ExportRequest) ([]models.ProgramEntry, error)
}

package models

import "fmt"

// Precedence selects who wins when a derived program field (name, command,
// numprocs) and a default option share a key.
type Precedence string

const (
	// PrecedenceEntry keeps the fields derived from the declaration.
	PrecedenceEntry Precedence = "entry"
	// PrecedenceDefaults lets option values replace derived fields.
	PrecedenceDefaults Precedence = "defaults"
)

// ParsePrecedence converts a configuration string into a [Precedence].
// An empty string yields [PrecedenceEntry].
func ParsePrecedence(s string) (Precedence, error) {
	switch Precedence(s) {
	case "", PrecedenceEntry:
		return PrecedenceEntry, nil
	case PrecedenceDefaults:
		return PrecedenceDefaults, nil
	default:
		return "", fmt.Errorf("%w: unknown precedence %q (want %q or %q)",
			ErrConfiguration, s, PrecedenceEntry, PrecedenceDefaults)
	}
}

// GlobalConfig carries the exporter defaults applied to every declaration.
// It is built once at startup and must not be modified afterwards.
type GlobalConfig struct {
	Executor string
	Console  string

	// Server is used when an export request does not name one.
	Server string

	// Program holds default supervisord options for every program.
	Program map[string]any

	// StrictServer turns a declaration without server affiliation into an
	// error instead of matching every server.
	StrictServer bool

	Precedence Precedence
}

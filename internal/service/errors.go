package service

import (
	"fmt"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

var (
	// ErrServerNotSpecified is returned when an export has no target server.
	ErrServerNotSpecified = fmt.Errorf("%w: option \"--server\" not found", models.ErrConfiguration)

	// ErrServerNotDeclared is returned by the strict filter for declarations
	// without server affiliation.
	ErrServerNotDeclared = fmt.Errorf("%w: server not declared", models.ErrFilter)

	// ErrInvalidOptionValue is returned when an option overriding a derived
	// field cannot be converted, e.g. a non-numeric numprocs.
	ErrInvalidOptionValue = fmt.Errorf("%w: invalid option value", models.ErrConfiguration)

	// ErrLineBreak is returned by the emitter for a program name, option key
	// or value that would span more than one configuration line.
	ErrLineBreak = fmt.Errorf("%w: line break", models.ErrConfiguration)
)

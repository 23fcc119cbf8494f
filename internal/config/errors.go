package config

import (
	"fmt"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

// Validation errors. All of them are configuration errors in the sense of
// [models.ErrConfiguration].
var (
	// ErrSourceDirectoryNotFound indicates a configured source directory
	// that does not exist or is not a directory.
	ErrSourceDirectoryNotFound = fmt.Errorf("%w: source directory does not exist", models.ErrConfiguration)
	// ErrInvalidOption indicates a --options value not in key=value form.
	ErrInvalidOption = fmt.Errorf("%w: invalid program option", models.ErrConfiguration)
)

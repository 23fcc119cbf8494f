package models

import "errors"

// Error kinds. Package-level errors wrap one of them so callers can classify
// a failure with errors.Is.
var (
	// ErrConfiguration marks invalid setup: missing target server, missing
	// source directory, unknown option values. Fatal before any output.
	ErrConfiguration = errors.New("configuration error")

	// ErrDiscovery marks a type whose declarations could not be read.
	// Discovery skips the type and continues.
	ErrDiscovery = errors.New("discovery error")

	// ErrFilter marks a declaration that cannot be matched against a server
	// under strict filtering.
	ErrFilter = errors.New("filter error")
)

// ErrInvalidDeclaration is returned by [DeclarationBuilder.Build].
var ErrInvalidDeclaration = errors.New("invalid declaration")

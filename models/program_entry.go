// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Keys of a supervisord program section that are derived from a declaration
// rather than taken from options.
const (
	KeyName        = "name"
	KeyCommand     = "command"
	KeyNumProcs    = "numprocs"
	KeyProcessName = "process_name"
	KeyUser        = "user"
)

// DefaultProcessName is the supervisord process_name pattern used when no
// option overrides it.
const DefaultProcessName = "%(program_name)s_%(process_num)02d"

// ProgramEntry is one compiled supervisord program section.
//
// Options hold every other key of the section, already merged with global
// defaults; the derived fields are kept apart so the emitter can order them
// first.
type ProgramEntry struct {
	Name     string
	Command  string
	NumProcs int
	Options  map[string]any
}

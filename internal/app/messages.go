// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app runs one export: it discovers declarations in the configured
// source directories, compiles them for the target server and writes the
// supervisord configuration.
//
// All Msg* constants are the log messages written by the run so the wording
// stays consistent between the CLI and the application layer.
package app

const (
	// MsgConfigLoaded is logged at debug level once configuration sources
	// are merged and validated.
	MsgConfigLoaded = "configuration loaded"

	// MsgDiscoveryFinished is logged after all source directories are
	// scanned.
	MsgDiscoveryFinished = "declarations discovered"

	// MsgNothingToExport is logged when no program matched the target
	// server and nothing is written.
	MsgNothingToExport = "no programs for server, nothing to export"

	// MsgExportFinished is logged after the configuration is written.
	MsgExportFinished = "configuration exported"

	// MsgExportFailed is logged by the CLI when a run ends with an error.
	MsgExportFailed = "export failed"

	// MsgInvalidUsage is logged by the CLI for unknown flags, malformed flag
	// values and unexpected arguments.
	MsgInvalidUsage = "invalid command line"
)

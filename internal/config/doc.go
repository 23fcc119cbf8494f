// Package config provides configuration loading, merging, and validation
// for supervisor-dump.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (SUPERVISOR_ prefix)
//  2. YAML config file
//  3. Command-line flags
//
// The main entry point is [GetStructuredConfig]; [Flags] binds the
// command-line side onto a cobra/pflag flag set.
package config

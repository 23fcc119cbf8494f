// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Declaration describes how one recurring command attached to a type should
// be supervised. Pointer fields distinguish "not set" from an explicit empty
// value so that global defaults can fill the gaps.
//
// A Declaration is built through [DeclarationBuilder]; the zero value is not
// a usable declaration because CommandName is required.
type Declaration struct {
	// Executor is the interpreter/binary that runs Console (e.g. "php").
	Executor *string

	// Console is the entry point passed to Executor (e.g. "bin/console").
	Console *string

	// CommandName is the command executed by Console. Required.
	CommandName string

	// Processes is the number of processes supervisord keeps running.
	// Always >= 1.
	Processes int

	// Params is appended after CommandName verbatim.
	Params *string

	// Server is a comma-separated, case-insensitive list of servers the
	// declaration is eligible for. Empty means "not declared".
	Server string

	// ProgramName overrides the name derived from CommandName.
	ProgramName *string

	// DelayBefore and DelayAfter are sleeps in seconds wrapped around the
	// command.
	DelayBefore int
	DelayAfter  int

	// Options are extra supervisord program keys for this declaration only.
	Options map[string]any
}

// HasServer reports whether the declaration names its eligible servers.
func (d Declaration) HasServer() bool {
	return strings.TrimSpace(d.Server) != ""
}

// DeclarationBuilder assembles a [Declaration] and validates it once in
// [DeclarationBuilder.Build].
type DeclarationBuilder struct {
	decl Declaration
	errs []string
}

// NewDeclarationBuilder starts a declaration for the given command name.
func NewDeclarationBuilder(commandName string) *DeclarationBuilder {
	return &DeclarationBuilder{
		decl: Declaration{
			CommandName: strings.TrimSpace(commandName),
			Processes:   1,
		},
	}
}

func (b *DeclarationBuilder) WithExecutor(executor string) *DeclarationBuilder {
	b.decl.Executor = &executor
	return b
}

func (b *DeclarationBuilder) WithConsole(console string) *DeclarationBuilder {
	b.decl.Console = &console
	return b
}

// WithProcesses sets the process count. Values below 1 fall back to 1.
func (b *DeclarationBuilder) WithProcesses(processes int) *DeclarationBuilder {
	if processes < 1 {
		processes = 1
	}
	b.decl.Processes = processes
	return b
}

func (b *DeclarationBuilder) WithParams(params string) *DeclarationBuilder {
	b.decl.Params = &params
	return b
}

func (b *DeclarationBuilder) WithServer(server string) *DeclarationBuilder {
	b.decl.Server = server
	return b
}

func (b *DeclarationBuilder) WithProgramName(name string) *DeclarationBuilder {
	if name == "" {
		return b
	}
	b.decl.ProgramName = &name
	return b
}

func (b *DeclarationBuilder) WithDelayBefore(seconds int) *DeclarationBuilder {
	if seconds < 0 {
		b.errs = append(b.errs, fmt.Sprintf("delay before must not be negative, got %d", seconds))
	}
	b.decl.DelayBefore = seconds
	return b
}

func (b *DeclarationBuilder) WithDelayAfter(seconds int) *DeclarationBuilder {
	if seconds < 0 {
		b.errs = append(b.errs, fmt.Sprintf("delay after must not be negative, got %d", seconds))
	}
	b.decl.DelayAfter = seconds
	return b
}

// WithOption sets a single program option, overriding a previous value.
func (b *DeclarationBuilder) WithOption(key string, value any) *DeclarationBuilder {
	if b.decl.Options == nil {
		b.decl.Options = make(map[string]any)
	}
	b.decl.Options[key] = value
	return b
}

// WithOptions copies all options into the declaration.
func (b *DeclarationBuilder) WithOptions(options map[string]any) *DeclarationBuilder {
	for k, v := range options {
		b.WithOption(k, v)
	}
	return b
}

// Build validates the collected fields and returns the declaration.
func (b *DeclarationBuilder) Build() (Declaration, error) {
	errs := slices.Clone(b.errs)
	if b.decl.CommandName == "" {
		errs = append([]string{"command name is required"}, errs...)
	}
	for key := range b.decl.Options {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, "option key must not be empty")
			break
		}
	}
	errs = append(errs, b.lineBreakErrors()...)

	if len(errs) > 0 {
		return Declaration{}, fmt.Errorf("%w: %s", ErrInvalidDeclaration, strings.Join(errs, "; "))
	}

	decl := b.decl
	decl.Options = maps.Clone(b.decl.Options)

	return decl, nil
}

// lineBreakErrors reports fields that would split a configuration line.
func (b *DeclarationBuilder) lineBreakErrors() []string {
	fields := []struct {
		name  string
		value *string
	}{
		{"command name", &b.decl.CommandName},
		{"executor", b.decl.Executor},
		{"console", b.decl.Console},
		{"params", b.decl.Params},
		{"server", &b.decl.Server},
		{"program name", b.decl.ProgramName},
	}

	var errs []string
	for _, f := range fields {
		if f.value != nil && HasLineBreak(*f.value) {
			errs = append(errs, f.name+" must not contain line breaks")
		}
	}
	for _, key := range slices.Sorted(maps.Keys(b.decl.Options)) {
		if HasLineBreak(key) {
			errs = append(errs, fmt.Sprintf("option key %q must not contain line breaks", key))
		}
	}

	return errs
}

// HasLineBreak reports whether s contains a carriage return or line feed.
func HasLineBreak(s string) bool {
	return strings.ContainsAny(s, "\r\n")
}

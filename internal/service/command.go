package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

type commandCompiler struct{}

func NewCommandCompiler() CommandCompiler {
	return commandCompiler{}
}

// CompileCommand joins executor, console, command name, params and the
// environment flag with single spaces. Declaration values win over global
// ones; empty parts are left out. A non-zero delay wraps the command into
// bash -c '...' with the sleeps chained around it.
//
// The process count never influences the command.
func (commandCompiler) CompileCommand(decl models.Declaration, global models.GlobalConfig, environment string) string {
	parts := []string{
		valueOr(decl.Executor, global.Executor),
		valueOr(decl.Console, global.Console),
		decl.CommandName,
		valueOr(decl.Params, ""),
		envFlag(environment),
	}

	command := joinNonEmpty(parts)

	if decl.DelayBefore == 0 && decl.DelayAfter == 0 {
		return command
	}

	if decl.DelayBefore > 0 {
		command = fmt.Sprintf("sleep %d && %s", decl.DelayBefore, command)
	}
	if decl.DelayAfter > 0 {
		command = fmt.Sprintf("%s && sleep %d", command, decl.DelayAfter)
	}

	return fmt.Sprintf("bash -c '%s'", escapeSingleQuotes(command))
}

func valueOr(v *string, fallback string) string {
	if v != nil {
		return *v
	}
	return fallback
}

func envFlag(environment string) string {
	if environment == "" {
		return ""
	}
	return "--env=" + environment
}

func joinNonEmpty(parts []string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

// escapeSingleQuotes makes s safe inside a single-quoted shell word.
func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, `'`, `'\''`)
}

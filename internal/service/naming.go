package service

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

type nameResolver struct{}

func NewNameResolver() NameResolver {
	return nameResolver{}
}

// ResolveName returns the program name override verbatim, or the command
// name with every character outside [0-9A-Za-z] replaced by '_'. Instances
// after the first get a "_<instance>" suffix.
func (nameResolver) ResolveName(decl models.Declaration, instance int) string {
	if decl.ProgramName != nil && *decl.ProgramName != "" {
		return *decl.ProgramName
	}

	name := strings.Map(func(r rune) rune {
		if isASCIIAlnum(r) {
			return r
		}
		return '_'
	}, decl.CommandName)

	if instance > 1 {
		name += "_" + strconv.Itoa(instance)
	}

	return name
}

func isASCIIAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

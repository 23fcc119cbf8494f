package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

type serverFilter struct {
	strict bool
}

// NewServerFilter returns the server filter. A declaration without server
// affiliation matches every server, unless strict is set, in which case it is
// rejected with [ErrServerNotDeclared].
func NewServerFilter(strict bool) ServerFilter {
	return &serverFilter{strict: strict}
}

func (f *serverFilter) Matches(decl models.Declaration, server string) (bool, error) {
	server = normalizeServer(server)
	if server == "" {
		return false, ErrServerNotSpecified
	}

	if !decl.HasServer() {
		if f.strict {
			return false, fmt.Errorf("%w for command %q", ErrServerNotDeclared, decl.CommandName)
		}
		return true, nil
	}

	for _, declared := range strings.Split(decl.Server, ",") {
		if normalizeServer(declared) == server {
			return true, nil
		}
	}

	return false, nil
}

func normalizeServer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

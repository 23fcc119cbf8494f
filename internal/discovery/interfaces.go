package discovery

import (
	"context"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/discovery_mock.go -package=mock

// Discoverer finds the declared classes under a set of source directories.
type Discoverer interface {
	Discover(ctx context.Context, dirs []string) ([]models.Class, error)
}

// Scanner reads the classes declared in one source file.
//
// Declarations are returned as builders and validated when the class is
// registered. A returned error means the whole file was unusable. Types
// whose declarations cannot even be read are reported through the logger
// and left out of the result.
type Scanner interface {
	Accepts(path string) bool
	Scan(ctx context.Context, path string) ([]models.DeclaredClass, error)
}

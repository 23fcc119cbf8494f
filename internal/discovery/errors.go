package discovery

import (
	"fmt"

	"github.com/MKhiriev/go-supervisor-dump/models"
)

var (
	ErrWalkSources      = fmt.Errorf("%w: cannot walk source directory", models.ErrDiscovery)
	ErrParseFile        = fmt.Errorf("%w: cannot parse file", models.ErrDiscovery)
	ErrInvalidDirective = fmt.Errorf("%w: invalid supervisor directive", models.ErrDiscovery)
	ErrInvalidBlock     = fmt.Errorf("%w: invalid program block", models.ErrDiscovery)
)

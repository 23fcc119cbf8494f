package service

import (
	"testing"

	"github.com/MKhiriev/go-supervisor-dump/models"
	"github.com/stretchr/testify/require"
)

func mustBuild(t *testing.T, b *models.DeclarationBuilder) models.Declaration {
	t.Helper()
	decl, err := b.Build()
	require.NoError(t, err)
	return decl
}

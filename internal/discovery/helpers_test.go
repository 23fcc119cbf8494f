package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-supervisor-dump/models"
	"github.com/stretchr/testify/require"
)

// writeFile creates dir/name with content, creating parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// parseAndBuild reads a directive and builds its declaration.
func parseAndBuild(comment string) (models.Declaration, error) {
	b, err := parseDirective(comment)
	if err != nil {
		return models.Declaration{}, err
	}
	return b.Build()
}

// buildAll builds every declaration of class and fails the test on the
// first invalid one.
func buildAll(t *testing.T, class models.DeclaredClass) []models.Declaration {
	t.Helper()
	decls := make([]models.Declaration, 0, len(class.Builders))
	for _, b := range class.Builders {
		decl, err := b.Build()
		require.NoError(t, err)
		decls = append(decls, decl)
	}
	return decls
}

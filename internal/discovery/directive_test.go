package discovery

import (
	"testing"

	"github.com/MKhiriev/go-supervisor-dump/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDirective(t *testing.T) {
	assert.True(t, isDirective(`//supervisor:program commandName:"x"`))
	assert.True(t, isDirective(`//supervisor:program`))
	assert.False(t, isDirective(`// supervisor:program commandName:"x"`))
	assert.False(t, isDirective(`//supervisor:programs commandName:"x"`))
	assert.False(t, isDirective(`//go:generate mockgen`))
}

func TestParseDirective_AllKeys(t *testing.T) {
	decl, err := parseAndBuild(`//supervisor:program commandName:"app:queue" executor:"php8.3" console:"bin/console" ` +
		`processes:"3" params:"--limit=10 --verbose" server:"alpha, beta" programName:"queue" ` +
		`delayBefore:"5" delayAfter:"2" options:"{autorestart: true, environment: {APP_DEBUG: '0'}, stopsignal: [TERM]}"`)

	require.NoError(t, err)
	assert.Equal(t, "app:queue", decl.CommandName)
	assert.Equal(t, "php8.3", *decl.Executor)
	assert.Equal(t, "bin/console", *decl.Console)
	assert.Equal(t, 3, decl.Processes)
	assert.Equal(t, "--limit=10 --verbose", *decl.Params)
	assert.Equal(t, "alpha, beta", decl.Server)
	assert.Equal(t, "queue", *decl.ProgramName)
	assert.Equal(t, 5, decl.DelayBefore)
	assert.Equal(t, 2, decl.DelayAfter)
	assert.Equal(t, map[string]any{
		"autorestart": true,
		"environment": map[string]any{"APP_DEBUG": "0"},
		"stopsignal":  []any{"TERM"},
	}, decl.Options)
}

func TestParseDirective_EscapedQuotes(t *testing.T) {
	decl, err := parseAndBuild(`//supervisor:program commandName:"app:say" params:"\"hello world\""`)

	require.NoError(t, err)
	assert.Equal(t, `"hello world"`, *decl.Params)
}

func TestParseDirective_Errors(t *testing.T) {
	tests := map[string]string{
		"missing command":   `//supervisor:program processes:"2"`,
		"bad processes":     `//supervisor:program commandName:"x" processes:"two"`,
		"negative delay":    `//supervisor:program commandName:"x" delayBefore:"-1"`,
		"unknown key":       `//supervisor:program commandName:"x" proceses:"2"`,
		"unquoted value":    `//supervisor:program commandName:x`,
		"unterminated":      `//supervisor:program commandName:"x`,
		"duplicate key":     `//supervisor:program commandName:"x" commandName:"y"`,
		"options not a map": `//supervisor:program commandName:"x" options:"[1, 2]"`,
		"empty":             `//supervisor:program`,
	}

	for name, comment := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseAndBuild(comment)
			assert.Error(t, err)
		})
	}
}

func TestParseDirective_ProcessesZeroFallsBackToOne(t *testing.T) {
	decl, err := parseAndBuild(`//supervisor:program commandName:"x" processes:"0"`)

	require.NoError(t, err)
	assert.Equal(t, 1, decl.Processes)
}

func TestParseTags(t *testing.T) {
	tags, err := parseTags("  a:\"1\"\tb:\"two words\"  ")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "1", "b": "two words"}, tags)

	empty, err := parseTags("")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestParseDirective_MissingCommandIsInvalidDeclaration(t *testing.T) {
	_, err := parseAndBuild(`//supervisor:program server:"alpha"`)

	assert.ErrorIs(t, err, models.ErrInvalidDeclaration)
}

func TestParseDirective_ValidationDeferredToBuild(t *testing.T) {
	b, err := parseDirective(`//supervisor:program commandName:"x" delayAfter:"-3"`)
	require.NoError(t, err)

	_, err = b.Build()
	assert.ErrorIs(t, err, models.ErrInvalidDeclaration)
}

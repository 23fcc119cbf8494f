package app

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-supervisor-dump/internal/config"
	"github.com/MKhiriev/go-supervisor-dump/internal/logger"
	"github.com/MKhiriev/go-supervisor-dump/internal/mock"
	"github.com/MKhiriev/go-supervisor-dump/internal/service"
	"github.com/MKhiriev/go-supervisor-dump/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

func testConfig(server string) *config.StructuredConfig {
	return &config.StructuredConfig{
		ProjectDir:        "/srv/app",
		SourceDirectories: []string{"src", "/opt/shared"},
		Exporter: config.Exporter{
			Executor:    "php",
			Console:     "bin/console",
			Server:      server,
			Environment: "prod",
		},
	}
}

func queueClass(t *testing.T, server string) models.Class {
	t.Helper()
	decl, err := models.NewDeclarationBuilder("app:queue:consume").WithProcesses(2).WithServer(server).Build()
	require.NoError(t, err)
	return models.Class{Name: "worker.QueueConsumer", Declarations: []models.Declaration{decl}}
}

func newTestApp(t *testing.T, cfg *config.StructuredConfig, discoverer *mock.MockDiscoverer, out *bytes.Buffer, logs *bytes.Buffer) *App {
	t.Helper()
	log := logger.NewLogger(logs, "test", true)
	a, err := NewApp(cfg, discoverer, service.NewServices(cfg.GlobalConfig(), log), out, log)
	require.NoError(t, err)
	return a
}

// ─────────────────────────────────────────────
// Run
// ─────────────────────────────────────────────

func TestRun_WritesConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	discoverer := mock.NewMockDiscoverer(ctrl)
	ctx := context.Background()

	discoverer.EXPECT().
		Discover(ctx, []string{filepath.Join("/srv/app", "src"), "/opt/shared"}).
		Return([]models.Class{queueClass(t, "alpha")}, nil)

	var out, logs bytes.Buffer
	a := newTestApp(t, testConfig("alpha"), discoverer, &out, &logs)

	require.NoError(t, a.Run(ctx, map[string]any{"autostart": "true"}))

	assert.Equal(t, `[program:app_queue_consume]
command = php bin/console app:queue:consume --env=prod
process_name = %(program_name)s_%(process_num)02d
numprocs = 2
autostart = true
`, out.String())
	assert.Contains(t, logs.String(), MsgExportFinished)
}

func TestRun_NothingToExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	discoverer := mock.NewMockDiscoverer(ctrl)

	discoverer.EXPECT().
		Discover(gomock.Any(), gomock.Any()).
		Return([]models.Class{queueClass(t, "alpha")}, nil)

	var out, logs bytes.Buffer
	a := newTestApp(t, testConfig("beta"), discoverer, &out, &logs)

	require.NoError(t, a.Run(context.Background(), nil))

	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), MsgNothingToExport)
}

func TestRun_DiscoveryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	discoverer := mock.NewMockDiscoverer(ctrl)
	discoverErr := errors.New("walk failed")

	discoverer.EXPECT().
		Discover(gomock.Any(), gomock.Any()).
		Return(nil, discoverErr)

	var out, logs bytes.Buffer
	a := newTestApp(t, testConfig("alpha"), discoverer, &out, &logs)

	err := a.Run(context.Background(), nil)

	assert.ErrorIs(t, err, discoverErr)
	assert.Empty(t, out.String())
}

func TestRun_MissingServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	discoverer := mock.NewMockDiscoverer(ctrl)

	discoverer.EXPECT().
		Discover(gomock.Any(), gomock.Any()).
		Return([]models.Class{queueClass(t, "alpha")}, nil)

	var out, logs bytes.Buffer
	a := newTestApp(t, testConfig(""), discoverer, &out, &logs)

	err := a.Run(context.Background(), nil)

	assert.ErrorIs(t, err, service.ErrServerNotSpecified)
	assert.ErrorIs(t, err, models.ErrConfiguration)
	assert.Empty(t, out.String())
}

// ─────────────────────────────────────────────
// NewApp
// ─────────────────────────────────────────────

func TestNewApp_RequiresDependencies(t *testing.T) {
	cfg := testConfig("alpha")
	services := service.NewServices(cfg.GlobalConfig(), logger.Nop())

	_, err := NewApp(cfg, nil, services, &bytes.Buffer{}, logger.Nop())

	assert.ErrorIs(t, err, ErrIncompleteApp)
}
